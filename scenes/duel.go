package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// statusFrames is how long a status line stays on the HUD.
const statusFrames = 120

// session counts results until the program exits.
var session systems.Tally

// DuelScene runs one player-versus-bot match.
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.BotDifficulty
	once         sync.Once

	match *systems.Match
	hud   *systems.HUD

	overlay     bool
	statusTimer int
	saved       cfg.BotDifficulty
}

// NewDuelScene creates a duel against a bot of the given difficulty.
func NewDuelScene(sc SceneChanger, difficulty cfg.BotDifficulty) *DuelScene {
	return &DuelScene{sceneChanger: sc, difficulty: difficulty}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.GetInput(ds.ecs).JustPressed(cfg.ActionMenuBack) {
		ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger))
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	ds.overlay = cfg.Debug.Overlay
	ds.saved = ds.difficulty
	ds.hud = systems.NewHUD()
	ds.hud.Difficulty = ds.difficulty

	difficulty := ds.difficulty
	ds.match = systems.NewMatch(e.World, systems.MatchOptions{
		Difficulty: &difficulty,
		Observers: systems.Join(ds.hud.Observers(), systems.Observers{
			Result: ds.onResult,
		}),
	})

	// Input first; the match reads it this frame.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(ds.updateSceneKeys)
	e.AddSystem(systems.NewUpdateMatch(ds.match))
	e.AddSystem(ds.updateSettings)
	e.AddSystem(systems.NewUpdateHUD(ds.hud))

	e.AddRenderer(cfg.Default, systems.NewDrawMatch(ds.match))
	e.AddRenderer(cfg.Default, systems.NewDrawOverlay(ds.match, func() bool { return ds.overlay }))
	e.AddRenderer(cfg.Default, systems.NewDrawHUD(ds.hud))

	ds.ecs = e
	log.Printf("Duel started against %s bot", ds.difficulty)
}

// updateSceneKeys handles the keys that belong to the window rather than
// the match.
func (ds *DuelScene) updateSceneKeys(e *ecs.ECS) {
	input := systems.GetInput(e)

	if input.JustPressed(cfg.ActionToggleDebug) {
		ds.overlay = !ds.overlay
		systems.SaveCurrentSettings(ds.match, ds.overlay)
	}

	if input.JustPressed(cfg.ActionCopyReport) {
		if err := systems.CopyReport(ds.match); err != nil {
			log.Printf("Warning: %v", err)
			ds.setStatus("copy failed")
		} else {
			ds.setStatus("report copied")
		}
	}

	if ds.statusTimer > 0 {
		ds.statusTimer--
		if ds.statusTimer == 0 {
			ds.hud.Status = ""
		}
	}
}

// updateSettings persists a difficulty change made with the number keys.
func (ds *DuelScene) updateSettings(e *ecs.ECS) {
	d := ds.match.Difficulty()
	if d == ds.saved {
		return
	}
	ds.saved = d
	ds.hud.Difficulty = d
	cfg.StartDifficulty = d
	systems.SaveCurrentSettings(ds.match, ds.overlay)
}

func (ds *DuelScene) onResult(outcome cfg.Outcome) {
	session.Add(outcome)
	log.Printf("Session: %s", session)
}

func (ds *DuelScene) setStatus(s string) {
	ds.hud.Status = s
	ds.statusTimer = statusFrames
}
