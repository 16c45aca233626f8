//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"summitgen/internal/app"
	"summitgen/internal/gen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	genCfg := gen.DefaultConfig()
	genCfg.Theme = cfg.Theme
	genCfg.Width = cfg.Width
	genCfg.Height = cfg.Height
	genCfg.Seed = cfg.Seed

	game, err := app.New(genCfg, cfg.Scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
