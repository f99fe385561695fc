package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/LucidFrost/asteroids-sub000/client"
	"github.com/LucidFrost/asteroids-sub000/config"
	"github.com/LucidFrost/asteroids-sub000/game"
	"github.com/LucidFrost/asteroids-sub000/scores"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config/asteroids.toml", "settings file")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile of the whole run to this directory")
	flag.Parse()

	settings, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := config.NewLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	tuning, err := config.LoadTuning(settings.Tuning.Path)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	if *cpuProfile != "" {
		// One profile at a time; the whole-run profile wins over FPS-drop captures.
		settings.Profile.Enabled = false
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	var audio game.Audio = game.SilentAudio{}
	if settings.Audio.Enabled {
		audio = client.NewSoundManager(settings.Assets.Dir, settings.Audio.Volume, log.Named("audio"))
		if sm, ok := audio.(*client.SoundManager); ok {
			defer sm.Close()
		}
	}

	g, err := client.NewGame(settings, tuning, audio, scores.NewStore(settings.Scores.Path), log)
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	log.Info("starting",
		zap.String("config", *cfgPath),
		zap.Float64("world_width", settings.World.Width),
		zap.Float64("world_height", settings.World.Height),
		zap.Int("entity_capacity", settings.Pools.Entities),
	)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
