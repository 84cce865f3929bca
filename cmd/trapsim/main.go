package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/trapdoor/assets"
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/sim"
)

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Level to run")
	ticks := flag.Int("ticks", 600, "Ticks to run (0 = until interrupted)")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Ticks per second of wall-clock time")
	script := flag.String("script", "", `Scripted input, e.g. "right:60,down+left:30,wait:10"`)
	debug := flag.Bool("debug", false, "Log solid contacts and trap transitions")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tickrate must be positive, got %d", *tickRate)
	}
	if *debug {
		config.Debug.Collision = true
		config.Debug.Traps = true
	}

	level, err := assets.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	input, err := sim.ParseScript(*script)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	s, err := sim.New(level, components.RunStats{})
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}

	loop := sim.NewGameLoop(s, *tickRate, *ticks, input)
	loop.OnTick = func(s *sim.Simulation) {
		if s.RestartRequested() {
			log.Printf("tick %d: run over, stats %+v", s.Ticks(), s.Stats())
			loop.Stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			log.Println("Shutting down simulation...")
			loop.Stop()
		case <-loop.Done():
		}
	}()

	log.Printf("Running %q for %d ticks at %d/s (script covers %d ticks)",
		level.Name, *ticks, *tickRate, input.Len())
	loop.Run()
	log.Printf("Final stats after %d ticks: %+v", s.Ticks(), s.Stats())
}
