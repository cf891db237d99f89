//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Fatalf("config: %v", err)
	}

	engine := life.NewWithConfig(life.Config{StepPeriod: cfg.Period})

	title := "lifegrid"
	if cfg.Pattern != "" {
		p, ok := life.Lookup(cfg.Pattern)
		if !ok {
			log.Fatalf("unknown pattern %q (have %v)", cfg.Pattern, life.Names())
		}
		engine.Stamp(p, 0, 0)
		title += " — " + cfg.Pattern
	}

	game := app.New(engine, cfg)

	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ViewW+cfg.HUDWidth, cfg.ViewH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
