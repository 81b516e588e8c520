// Command blockfall-tty plays the falling block game in a terminal.
//
// Arrow keys or h, l, k and j shift, rotate and drop the piece; z and x rotate, space
// drops, s steps and r starts over. q or Escape quits. The terminal owns the output, so
// logs go to a file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

const frameInterval = 16 * time.Millisecond

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "blockfall.log", "File receiving the log output.")
	flag.Parse()

	logger, err := newLogger(*logPath, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine, err := cfg.NewEngine(tetris.WithLogger(logger.Named("engine")))
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("failed to create screen", zap.Error(err))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("failed to initialize screen", zap.Error(err))
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	scheduler := loop.NewScheduler(engine, loop.WithLogger(logger.Named("loop")))
	scheduler.Register(&loop.InputSystem{})
	scheduler.Register(&loop.GravitySystem{Interval: cfg.Tick})
	scheduler.Register(&loop.SessionSystem{
		Repeat: cfg.Repeat,
		Delay:  time.Second,
		OnGameOver: func(stats tetris.Stats) {
			logger.Info("game finished",
				zap.Int("game", stats.Games),
				zap.Int("locked", stats.Locked),
				zap.Int("rows_cleared", stats.RowsCleared),
			)
		},
	})
	scheduler.Register(newDrawSystem(screen))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go readInput(screen, scheduler, newKeymap(), cancel)

	logger.Info("starting", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	scheduler.Run(ctx, frameInterval)

	stats := engine.Stats()
	logger.Info("finished",
		zap.Int("games", stats.Games),
		zap.Int("locked", stats.Locked),
		zap.Int("rows_cleared", stats.RowsCleared),
	)
}

func newLogger(path string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// readInput forwards key presses to the scheduler until the player quits.
func readInput(screen tcell.Screen, scheduler *loop.Scheduler, keys *keymap, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if keys.quits(ev) {
				quit()
				return
			}
			if cmd, ok := keys.lookup(ev); ok {
				scheduler.Submit(cmd)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
