//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"boidflock/internal/app"
	"boidflock/internal/sims/flock"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	simCfg := flock.DefaultConfig()
	simCfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Path != "" {
		loaded, err := flock.LoadFile(cfg.Path)
		if err != nil {
			log.Fatal(err)
		}
		// explicit flags win over the file
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "seed":
				loaded.Seed = simCfg.Seed
			case "workers":
				loaded.Workers = simCfg.Workers
			case "count":
				loaded.Params.Count = simCfg.Params.Count
			}
		})
		simCfg = loaded
	}
	if err := simCfg.Params.Validate(); err != nil {
		log.Fatal(err)
	}

	world := flock.NewWithConfig(simCfg)
	game := app.New(world, cfg.Width, cfg.Height, cfg.HUDWidth, simCfg.Seed)
	log.Printf("flock: %d boids, seed %d, %d workers", len(world.Boids()), simCfg.Seed, simCfg.Workers)

	ebiten.SetWindowTitle("boidflock - " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
