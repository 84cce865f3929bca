package sim

import (
	"log"
	"sync"
	"time"
)

// GameLoop steps a simulation on a wall-clock ticker until it is stopped or
// runs out of ticks.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks int // Zero runs until Stop
	script   *Script
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	// OnTick runs after every step, on the loop goroutine.
	OnTick func(s *Simulation)
}

func NewGameLoop(sim *Simulation, tickRate, maxTicks int, script *Script) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		script:   script,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks until the loop stops.
func (g *GameLoop) Run() {
	defer close(g.done)
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
			if g.maxTicks > 0 && g.sim.Ticks() >= g.maxTicks {
				log.Printf("Game loop finished after %d ticks", g.sim.Ticks())
				return
			}
		}
	}
}

// Stop ends Run. Calling it again does nothing.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

func (g *GameLoop) tick() {
	g.sim.StepWith(g.script.Next()...)
	if g.OnTick != nil {
		g.OnTick(g.sim)
	}
}
