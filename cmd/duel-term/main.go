package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/duel/config"
	"github.com/automoto/duel/systems"
	"github.com/automoto/duel/term"
	"github.com/automoto/duel/timers"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "", "YAML file with config overrides")
	difficulty := flag.String("difficulty", "", "bot difficulty: easy, normal or hard")
	hold := flag.Duration("hold", term.DefaultHold, "how long a key counts as held after a key event")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

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

	// The terminal is the display; logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}

	report := run(screen, *hold)
	screen.Fini()
	fmt.Print(report)
}

// run plays until Escape or Ctrl-C and returns the final match report.
func run(screen tcell.Screen, hold time.Duration) string {
	clock := timers.SystemClock{}
	keyboard := term.NewKeyboard(hold)
	surface := term.NewSurface(screen, config.C.Width, config.C.Height)
	status := term.NewStatusLine()

	match := systems.NewMatch(donburi.NewWorld(), systems.MatchOptions{
		Clock:     clock,
		Observers: status.Observers(),
	})
	status.Difficulty = match.Difficulty()

	var loop *systems.GameLoop
	loop = systems.NewGameLoop(config.Match.TickRate, func() {
		keyboard.Frame(clock.Now())
		if keyboard.JustPressed(config.ActionMenuBack) {
			loop.Stop()
			return
		}
		if keyboard.JustPressed(config.ActionCopyReport) {
			if err := systems.CopyReport(match); err != nil {
				log.Printf("Warning: %v", err)
				status.Note = "copy failed"
			} else {
				status.Note = "report copied"
			}
		}

		match.Update(keyboard)
		status.Difficulty = match.Difficulty()

		systems.DrawMatch(match, surface)
		status.Draw(surface)
		screen.Show()
	})

	go pollEvents(screen, keyboard, loop)
	loop.Run()

	report := systems.Report(match).String()
	log.Print(report)
	return report
}

// pollEvents feeds key events to the keyboard until the loop stops.
func pollEvents(screen tcell.Screen, keyboard *term.Keyboard, loop *systems.GameLoop) {
	for {
		select {
		case <-loop.Done():
			return
		default:
		}

		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				loop.Stop()
				return
			}
			keyboard.HandleKey(ev, time.Now())
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
