package systems

import (
	"log"
	"sync"
	"time"
)

// GameLoop calls tick at a fixed rate until stopped. Hosts without their own
// frame pacing use it; ebiten paces itself.
type GameLoop struct {
	tickRate int
	tick     func()
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(tickRate int, tick func()) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		tickRate: tickRate,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, ticking until Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Stop has been called.
func (g *GameLoop) Done() <-chan struct{} {
	return g.stopChan
}
