package factory

import (
	"github.com/automoto/duel/archetypes"
	"github.com/automoto/duel/components"
	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateBot spawns the bot-controlled fighter with the tunables of the given
// difficulty preset.
func CreateBot(w donburi.World, space *resolv.Space, difficulty cfg.BotDifficulty) *donburi.Entry {
	bot := archetypes.Bot.Spawn(w)
	initFighter(bot, space, cfg.Spawn.Bot, tags.ResolvBot)

	preset, ok := cfg.Preset(difficulty)
	if !ok {
		difficulty = cfg.DifficultyNormal
		preset, _ = cfg.Preset(difficulty)
	}
	components.Bot.SetValue(bot, components.BotData{
		AttackRange:    cfg.Bot.AttackRange,
		AttackCooldown: preset.AttackCooldown,
		Speed:          preset.Speed,
		AttackDamage:   preset.AttackDamage,
		Difficulty:     difficulty,
	})
	return bot
}
