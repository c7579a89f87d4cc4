package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/reaction/client/game"
	"github.com/cbodonnell/reaction/client/input"
	"github.com/cbodonnell/reaction/pkg/config"
	"github.com/cbodonnell/reaction/pkg/log"
	"github.com/cbodonnell/reaction/pkg/metrics"
	"github.com/cbodonnell/reaction/pkg/reaction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $REACTION_CONFIG)")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	var observer reaction.Observer = reaction.NopObserver{}
	if cfg.MetricsAddr != "" {
		recorder := metrics.NewRecorder(cfg.HistorySize)
		server, err := metrics.NewServer(metrics.NewServerOptions{
			Addr:     cfg.MetricsAddr,
			Gatherer: recorder.Registry(),
		})
		if err != nil {
			panic(fmt.Sprintf("Failed to create metrics server: %v", err))
		}
		go server.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := server.Stop(ctx); err != nil {
				log.Error("Failed to stop metrics server: %v", err)
			}
		}()
		observer = recorder
	}

	clock := clockwork.NewRealClock()
	controller := reaction.NewController(reaction.NewControllerOptions{
		Clock:       clock,
		MinDelay:    cfg.MinDelay(),
		MaxDelay:    cfg.MaxDelay(),
		HistorySize: cfg.HistorySize,
		Observer:    observer,
	})

	g, err := game.NewGame(game.NewGameOptions{
		Debug:        *debug,
		Clock:        clock,
		Controller:   controller,
		Pointer:      input.NewPointer(cfg.TouchCompatWindow()),
		ScreenWidth:  cfg.WindowWidth,
		ScreenHeight: cfg.WindowHeight,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	defer func() {
		if err := g.Close(); err != nil {
			log.Error("Failed to close game: %v", err)
		}
	}()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	log.Info("Starting reaction test with cue delay in [%s, %s)", cfg.MinDelay(), cfg.MaxDelay())
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game exited with error: %v", err)
	}
}
