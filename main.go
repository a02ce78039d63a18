package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pointer-snake/internal/config"
	"github.com/iburimskiy/pointer-snake/internal/game"
	"github.com/iburimskiy/pointer-snake/internal/sound"
	"github.com/iburimskiy/pointer-snake/internal/term"
)

const windowTitle = "Pointer Snake - move the mouse in the box, C/S/R: color/speed/reset, Esc/Q: quit"

func main() {
	configPath := flag.String("config", "", "path to a YAML launch file")
	frontend := flag.String("frontend", "", "ebiten or term (overrides the config file)")
	withSound := flag.Bool("sound", false, "play a click when a control is used")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *frontend, *withSound)
	if err != nil {
		fail(config.FrontendEbiten, err)
	}

	var player *sound.Player
	if cfg.Sound {
		player = sound.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the effect runs without sound
			log.Printf("[Sound] disabled: %v", err)
		}
	}

	switch cfg.Frontend {
	case config.FrontendTerm:
		err = runTerm(cfg, player)
	default:
		err = runEbiten(cfg, player)
	}
	if err != nil {
		fail(cfg.Frontend, err)
	}
}

func loadConfig(path, frontend string, withSound bool) (*config.File, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if frontend != "" {
		if frontend != config.FrontendEbiten && frontend != config.FrontendTerm {
			return nil, fmt.Errorf("unknown frontend %q", frontend)
		}
		cfg.Frontend = frontend
	}
	if withSound {
		cfg.Sound = true
	}
	return cfg, nil
}

func runEbiten(cfg *config.File, player *sound.Player) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func runTerm(cfg *config.File, player *sound.Player) error {
	// Log lines would tear the terminal UI.
	log.SetOutput(io.Discard)

	app, err := term.New(cfg, player)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx)
}

// fail reports a fatal error. The desktop frontend also gets a dialog since
// it is usually started without a console.
func fail(frontend string, err error) {
	log.SetOutput(os.Stderr)
	log.Printf("fatal: %v", err)
	if frontend == config.FrontendEbiten {
		if derr := zenity.Error(err.Error(), zenity.Title("Pointer Snake")); derr != nil {
			log.Printf("error dialog: %v", derr)
		}
	}
	os.Exit(1)
}
