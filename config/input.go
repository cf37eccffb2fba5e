package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionBotLeft
	ActionBotRight
	ActionBotJump
	ActionBotAttack
	ActionDifficultyEasy
	ActionDifficultyNormal
	ActionDifficultyHard
	ActionReset
	ActionCopyReport
	ActionToggleDebug
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:         {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:        {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionJump:             {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionAttack:           {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionBotLeft:          {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionBotRight:         {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionBotJump:          {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionBotAttack:        {Keys: []ebiten.Key{ebiten.Key0, ebiten.KeyNumpad0}},
			ActionDifficultyEasy:   {Keys: []ebiten.Key{ebiten.Key1}},
			ActionDifficultyNormal: {Keys: []ebiten.Key{ebiten.Key2}},
			ActionDifficultyHard:   {Keys: []ebiten.Key{ebiten.Key3}},
			ActionReset:            {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionCopyReport:       {Keys: []ebiten.Key{ebiten.KeyF2}},
			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionMenuBack:         {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
