package main

import (
	"testing"

	"github.com/automoto/duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMatchIsDeterministic(t *testing.T) {
	opts := runOptions{
		difficulty: config.DifficultyHard,
		seed:       11,
		maxFrames:  (config.Match.Countdown + 1) * config.Match.TickRate,
		swingEvery: 12,
	}

	a := runMatch(opts)
	b := runMatch(opts)

	require.NotEqual(t, config.OutcomeOngoing, a.outcome)
	assert.Equal(t, a.outcome, b.outcome)
	assert.Equal(t, a.frames, b.frames)
	assert.Equal(t, a.report, b.report)
}

func TestRunMatchIdlePlayerNeverHits(t *testing.T) {
	stats := runMatch(runOptions{
		difficulty: config.DifficultyEasy,
		seed:       3,
		maxFrames:  (config.Match.Countdown + 1) * config.Match.TickRate,
		idle:       true,
	})

	assert.Equal(t, 0, stats.playerHits)
	assert.Equal(t, config.Fighter.Health, stats.report.BotHealth)
	assert.NotEqual(t, config.OutcomePlayer, stats.outcome)
}
