package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDifficulty is returned for a preset name that is not in the table.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// BotDifficulty names a preset of bot tunables
type BotDifficulty int

const (
	DifficultyEasy BotDifficulty = iota
	DifficultyNormal
	DifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	Speed          float64       // strafe speed
	AttackCooldown time.Duration // minimum time between triggered attacks
	AttackDamage   int           // damage dealt when a bot swing connects after its window
}

var difficultyNames = map[BotDifficulty]string{
	DifficultyEasy:   "easy",
	DifficultyNormal: "normal",
	DifficultyHard:   "hard",
}

// presets is the difficulty table. It is never written after init; read it through Preset.
var presets = map[BotDifficulty]BotDifficultyConfig{
	DifficultyEasy: {
		Speed:          5,
		AttackCooldown: 3000 * time.Millisecond,
		AttackDamage:   5,
	},
	DifficultyNormal: {
		Speed:          10,
		AttackCooldown: 2000 * time.Millisecond,
		AttackDamage:   10,
	},
	DifficultyHard: {
		Speed:          15,
		AttackCooldown: 1000 * time.Millisecond,
		AttackDamage:   30,
	},
}

// String returns the preset name.
func (d BotDifficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("BotDifficulty(%d)", int(d))
}

// Preset returns the tunables for d.
func Preset(d BotDifficulty) (BotDifficultyConfig, bool) {
	p, ok := presets[d]
	return p, ok
}

// Difficulties lists the presets from easiest to hardest.
func Difficulties() []BotDifficulty {
	return []BotDifficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty maps a preset name to its BotDifficulty. Names are exact
// ("easy", "normal", "hard") apart from surrounding whitespace.
func ParseDifficulty(name string) (BotDifficulty, error) {
	trimmed := strings.TrimSpace(name)
	for d, n := range difficultyNames {
		if n == trimmed {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, name)
}
