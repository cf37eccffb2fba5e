package components

import (
	"image/color"
	"time"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/shared/gamemath"
	"github.com/automoto/duel/timers"
	"github.com/yohamta/donburi"
)

// FighterData holds the attack state shared by the player and the bot.
type FighterData struct {
	HitboxOffset gamemath.Vector2     // only X is used; the hitbox tracks the body's Y
	Hitbox       gamemath.BoundingBox // recomputed at the start of every update

	IsAttacking  bool
	AttackWindow timers.Token // pending event that closes the current swing

	LastHorizontalKey cfg.HorizontalKey

	Spawn gamemath.Vector2
	Color color.RGBA
}

var Fighter = donburi.NewComponentType[FighterData]()

// BotData holds the bot's tunables. Its presence on a fighter entry selects the
// bot update and attack behavior.
type BotData struct {
	AttackRange    float64
	AttackCooldown time.Duration
	LastAttack     time.Time // zero until the first attack
	Speed          float64
	AttackDamage   int
	Difficulty     cfg.BotDifficulty
}

var Bot = donburi.NewComponentType[BotData]()
