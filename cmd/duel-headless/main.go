package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/automoto/duel/timers"
	"github.com/yohamta/donburi"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome      config.Outcome
	frames       int
	timer        int
	playerHealth int
	botHealth    int
	playerHits   int // times the bot's health dropped
	botHits      int // times the player's health dropped
	report       systems.MatchReport
}

type runOptions struct {
	difficulty config.BotDifficulty
	seed       int64
	maxFrames  int
	idle       bool
	swingEvery int
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var difficulty string
	var configPath string
	var maxFrames int
	var idle bool
	var swingEvery int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of matches to play")
	flag.Int64Var(&seedBase, "seed-base", 42, "bot RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&difficulty, "difficulty", "", "bot difficulty: easy, normal or hard")
	flag.StringVar(&configPath, "config", "", "YAML file with config overrides")
	flag.IntVar(&maxFrames, "max-frames", 0, "frame cap per match (0 = countdown length plus one second)")
	flag.BoolVar(&idle, "idle", false, "leave the player standing still")
	flag.IntVar(&swingEvery, "swing-every", 12, "frames between autopilot attacks")
	flag.BoolVar(&verbose, "v", false, "keep match logs")
	flag.Parse()

	if configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	d := config.StartDifficulty
	if difficulty != "" {
		var err error
		if d, err = config.ParseDifficulty(difficulty); err != nil {
			log.Fatal(err)
		}
	}
	if runs <= 0 {
		log.Fatal("-runs must be > 0")
	}
	if maxFrames <= 0 {
		maxFrames = (config.Match.Countdown + 1) * config.Match.TickRate
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("difficulty=%s runs=%d seed_base=%d seed_step=%d idle=%v\n\n", d, runs, seedBase, seedStep, idle)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats := runMatch(runOptions{
			difficulty: d,
			seed:       seedBase + int64(i)*seedStep,
			maxFrames:  maxFrames,
			idle:       idle,
			swingEvery: swingEvery,
		})
		stats.runIndex = i + 1
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runMatch plays one match on a manual clock, one tick per frame.
func runMatch(opts runOptions) runStats {
	clock := timers.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	stats := runStats{seed: opts.seed, playerHealth: config.Fighter.Health, botHealth: config.Fighter.Health}

	difficulty := opts.difficulty
	seed := opts.seed
	match := systems.NewMatch(donburi.NewWorld(), systems.MatchOptions{
		Clock:      clock,
		Difficulty: &difficulty,
		Seed:       &seed,
		Observers: systems.Observers{
			PlayerHealth: func(p int) {
				if p < stats.playerHealth {
					stats.botHits++
				}
				stats.playerHealth = p
			},
			BotHealth: func(p int) {
				if p < stats.botHealth {
					stats.playerHits++
				}
				stats.botHealth = p
			},
		},
	})

	pilot := systems.NewAutopilot(match)
	pilot.Idle = opts.idle
	pilot.SwingEvery = opts.swingEvery

	frame := time.Second / time.Duration(config.Match.TickRate)
	for i := 0; i < opts.maxFrames && !match.Finished(); i++ {
		clock.Advance(frame)
		pilot.Plan()
		match.Update(pilot)
	}

	stats.report = systems.Report(match)
	stats.outcome = match.Outcome()
	stats.frames = stats.report.Frames
	stats.timer = stats.report.Timer
	return stats
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s frames=%d timer_left=%d\n", rs.outcome, rs.frames, rs.timer)
	fmt.Printf("health: player=%d bot=%d hits: player=%d bot=%d\n\n",
		rs.report.PlayerHealth, rs.report.BotHealth, rs.playerHits, rs.botHits)
}

func printAggregate(all []runStats) {
	counts := map[config.Outcome]int{}
	totalFrames := 0
	totalPlayerHits := 0
	totalBotHits := 0
	for _, rs := range all {
		counts[rs.outcome]++
		totalFrames += rs.frames
		totalPlayerHits += rs.playerHits
		totalBotHits += rs.botHits
	}

	n := float64(len(all))
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("player_wins=%d bot_wins=%d ties=%d unfinished=%d\n",
		counts[config.OutcomePlayer], counts[config.OutcomeBot], counts[config.OutcomeTie], counts[config.OutcomeOngoing])
	fmt.Printf("avg_frames=%.1f avg_player_hits=%.1f avg_bot_hits=%.1f\n",
		float64(totalFrames)/n, float64(totalPlayerHits)/n, float64(totalBotHits)/n)
}
