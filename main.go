package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/duel/config"
	"github.com/automoto/duel/fonts"
	"github.com/automoto/duel/scenes"
	"github.com/automoto/duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDuelScene(g, config.StartDifficulty)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file with config overrides")
	difficulty := flag.String("difficulty", "", "bot difficulty: easy, normal or hard")
	seed := flag.Int64("seed", 0, "bot RNG seed (0 keeps the configured seed)")
	skipMenu := flag.Bool("skipmenu", false, "start the duel without the menu")
	overlay := flag.Bool("overlay", false, "start with the contact overlay on")
	flag.Parse()

	// Initialize persistence and load saved settings; flags and the config
	// file override them.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *difficulty != "" {
		d, err := config.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal(err)
		}
		config.StartDifficulty = d
	}
	if *seed != 0 {
		config.Bot.Seed = *seed
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *overlay {
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Duel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
