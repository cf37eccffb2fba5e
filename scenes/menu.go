package scenes

import (
	"sync"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/automoto/duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene is the start screen where the bot difficulty is picked.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.DifficultyUI
	once         sync.Once

	start  bool
	picked cfg.BotDifficulty
	armed  bool // keys held from the previous scene are ignored for a frame
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if !ms.armed {
		ms.armed = true
		return
	}

	input := systems.GetInput(ms.ecs)
	switch {
	case input.JustPressed(cfg.ActionDifficultyEasy):
		ms.pick(cfg.DifficultyEasy)
	case input.JustPressed(cfg.ActionDifficultyNormal):
		ms.pick(cfg.DifficultyNormal)
	case input.JustPressed(cfg.ActionDifficultyHard):
		ms.pick(cfg.DifficultyHard)
	case input.JustPressed(cfg.ActionMenuBack):
		ms.sceneChanger.Quit()
		return
	}

	if ms.start {
		cfg.StartDifficulty = ms.picked
		ms.sceneChanger.ChangeScene(NewDuelScene(ms.sceneChanger, ms.picked))
	}
}

func (ms *MenuScene) pick(d cfg.BotDifficulty) {
	ms.picked = d
	ms.start = true
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)

	ms.menuUI = ui.NewDifficultyUI(
		cfg.StartDifficulty,
		"This session  "+session.String(),
		ms.pick,
		ms.sceneChanger.Quit,
	)
}
