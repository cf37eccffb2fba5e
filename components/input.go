package components

import (
	cfg "github.com/automoto/duel/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Get returns the temporal state of an action.
func (in *InputData) Get(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[action],
		JustPressed:  in.Current[action] && !in.Previous[action],
		JustReleased: !in.Current[action] && in.Previous[action],
	}
}

// Advance rolls Current into Previous and installs the new frame's state.
func (in *InputData) Advance(next [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = next
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}
