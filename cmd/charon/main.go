//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"charon/internal/app"
	"charon/internal/config"
	"charon/internal/logging"
	"charon/internal/store"
	"charon/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.New("charon", os.Stderr, logging.FromEnv())

	wcfg := world.DefaultConfig()
	if cfg.Tuning != "" {
		var err error
		if wcfg, err = config.LoadTuning(cfg.Tuning, wcfg); err != nil {
			log.Fatal().Err(err).Msg("load tuning")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			wcfg.Layout = cfg.Layout
		case "seed":
			wcfg.Seed = cfg.Seed
		}
	})

	keys := config.DefaultKeybinds()
	if cfg.Keys != "" {
		var err error
		if keys, err = config.LoadKeybinds(cfg.Keys); err != nil {
			log.Fatal().Err(err).Msg("load keybinds")
		}
	}

	scores := openScores(cfg.NoSave, log)

	w, err := world.New(wcfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build world")
	}
	game, err := app.New(w, scores, keys, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build game")
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	log.Info().Str("layout", wcfg.Layout).Int64("seed", wcfg.Seed).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run game")
	}
}
