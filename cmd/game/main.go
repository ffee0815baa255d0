package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/jumper/internal/application/game"
	"github.com/younwookim/jumper/internal/application/replay"
	"github.com/younwookim/jumper/internal/application/scene/playing"
	"github.com/younwookim/jumper/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input from file")
	headlessFlag := flag.Bool("headless", false, "With -replay, simulate without a window and print the result")
	configFlag := flag.String("config", "", "Config file on disk (e.g., -config configs/game.yaml); watched for changes")
	debugFlag := flag.Bool("debug", false, "Log state transitions and show the debug overlay")
	flag.Parse()

	loader, name, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	cfg, err := loader.Load(name)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Config loaded: %s/%s", loader.BasePath(), name)

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		applyReplaySettings(cfg, data)
	}

	if data != nil && *headlessFlag {
		summary, err := runReplay(cfg, *data, *debugFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		summary.Print(os.Stdout)
		return
	}

	opts := playing.Options{
		RecordPath: *recordFlag,
		Replay:     data,
		Debug:      *debugFlag,
	}

	// Hot reload only makes sense for configs on disk
	if *configFlag != "" {
		watcher, err := config.NewWatcher(loader.BasePath())
		if err != nil {
			log.Printf("Config watching disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			go logWatchErrors(watcher.Errors)
			opts.Loader = loader
			opts.ConfigName = name
			opts.Reload = watcher.Events
		}
	}

	scn, err := playing.New(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	g := game.New(scn, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.TPS)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
	log.Printf("Ran %d ticks (%v simulated)", g.Ticks(), time.Duration(g.Ticks())*g.DT())
}

// newLoader returns a loader for path, or for the embedded configs when path is empty
func newLoader(path string) (*config.Loader, string, error) {
	if path == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, "", err
		}
		return config.NewFSLoader(fsys, "configs"), config.DefaultFile, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, "", err
	}
	if info.IsDir() {
		return config.NewLoader(path), config.DefaultFile, nil
	}
	return config.NewLoader(filepath.Dir(path)), filepath.Base(path), nil
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("Config watcher error: %v", err)
	}
}
