package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the duel scene uses.
const Default ecs.LayerID = 0

// Config holds the viewport size. The viewport is also the arena: its width
// bounds horizontal movement and its height is the floor.
type Config struct {
	Width  int
	Height int
}

// ArenaConfig contains world physics values
type ArenaConfig struct {
	Gravity   float64 // added to vertical speed every tick while airborne
	CellSize  int     // resolv space cell size
	WallWidth float64 // thickness of the solid floor strip below the viewport
}

// FighterConfig contains values shared by both fighters
type FighterConfig struct {
	Width        float64
	Height       float64
	Health       int
	HitboxWidth  float64
	HitboxHeight float64
	AttackWindow time.Duration // how long IsAttacking stays true per swing
	WalkSpeed    float64       // player horizontal speed while a direction is held
	JumpSpeed    float64       // vertical speed applied on jump (negative is up)
	FlatDamage   int           // damage applied by the per-frame combat check
}

// SpawnPoint is where a fighter starts a match
type SpawnPoint struct {
	X, Y          float64
	HitboxOffsetX float64
	Color         color.RGBA
}

// SpawnConfig holds both spawn points
type SpawnConfig struct {
	Player SpawnPoint
	Bot    SpawnPoint
}

// BotConfig holds bot values that do not change with difficulty
type BotConfig struct {
	AttackRange  float64
	StrafeChance float64 // per-tick probability of picking a new strafe direction
	Seed         int64
}

// MatchConfig contains match timer configuration
type MatchConfig struct {
	Countdown    int           // starting value of the countdown
	TickInterval time.Duration // time between countdown ticks
	TickRate     int           // simulation ticks per second for headless hosts
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the duel
	Overlay  bool // Draw body outlines and contact tint
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Spawn SpawnConfig
var Bot BotConfig
var Match MatchConfig
var Debug DebugConfig

// StartDifficulty is the preset a new match starts with.
var StartDifficulty = DifficultyNormal

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BarRed       = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	BarBlue      = color.RGBA{R: 30, G: 90, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
	}

	Arena = ArenaConfig{
		Gravity:   0.7,
		CellSize:  32,
		WallWidth: 16,
	}

	Fighter = FighterConfig{
		Width:        50,
		Height:       150,
		Health:       100,
		HitboxWidth:  100,
		HitboxHeight: 50,
		AttackWindow: 100 * time.Millisecond,
		WalkSpeed:    5,
		JumpSpeed:    -10,
		FlatDamage:   10,
	}

	Spawn = SpawnConfig{
		Player: SpawnPoint{X: 0, Y: 0, HitboxOffsetX: 0, Color: Red},
		Bot:    SpawnPoint{X: 400, Y: 100, HitboxOffsetX: -50, Color: Blue},
	}

	Bot = BotConfig{
		AttackRange:  100,
		StrafeChance: 0.05,
		Seed:         42, // fixed seed for deterministic replays
	}

	Match = MatchConfig{
		Countdown:    60,
		TickInterval: time.Second,
		TickRate:     60,
	}
}
