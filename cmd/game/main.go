package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gladiator/internal/application/game"
	"github.com/younwookim/gladiator/internal/application/replay"
	"github.com/younwookim/gladiator/internal/application/scene/playing"
	"github.com/younwookim/gladiator/internal/infrastructure/config"
	"github.com/younwookim/gladiator/internal/infrastructure/logger"
	"github.com/younwookim/gladiator/internal/infrastructure/world"
)

// maxFrameDT caps the measured frame time after stalls (window drags, breakpoints)
const maxFrameDT = 0.25

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	watchFlag := flag.Bool("watch", false, "Reload config and arena when files under -config change")
	verifyFlag := flag.Bool("verify", false, "With -replay: run headless and check the final state")
	levelFlag := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	if err := run(*configDir, *recordFlag, *replayFlag, *watchFlag, *verifyFlag, *levelFlag); err != nil {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}

func run(configDir, recordPath, replayPath string, watch, verify bool, level string) error {
	loader, err := newLoader(configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level != "" {
		cfg.Logging.Level = level
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	arena, err := world.LoadArena(loader.FS(), cfg.Arena.Map)
	if err != nil {
		return fmt.Errorf("failed to load arena: %w", err)
	}
	log.Info("arena loaded", "map", cfg.Arena.Map, "colliders", len(arena.Boxes()))

	var data *replay.ReplayData
	if replayPath != "" {
		data, err = replay.LoadReplay(replayPath)
		if err != nil {
			return err
		}
	}

	if verify {
		if data == nil {
			return fmt.Errorf("-verify needs -replay")
		}
		final, err := verifyReplay(cfg, arena, data, log)
		if err != nil {
			return err
		}
		log.Info("replay verified", "frames", len(data.Frames), "state", final.State)
		return nil
	}

	opts := playing.Options{
		RecordPath: recordPath,
		Replay:     data,
		Loader:     loader,
		Logger:     log,
	}
	if watch {
		if configDir == "" {
			log.Warn("-watch ignored: embedded configs cannot change")
		} else {
			w, err := config.NewWatcher(configDir)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", configDir, err)
			}
			opts.Watcher = w
			log.Info("watching for config changes", "dir", configDir)
		}
	}

	scene, err := playing.New(cfg, arena, opts)
	if err != nil {
		return err
	}

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetClock(time.Now, maxFrameDT)
	defer g.Shutdown()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Gladiator")
	ebiten.SetTPS(cfg.Display.Framerate)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	return ebiten.RunGame(g)
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
