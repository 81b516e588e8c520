// Command blockfall plays the falling block game in an Ebiten window.
//
// Arrow keys shift, rotate and drop the piece; Z and X rotate, space drops, S steps and R
// starts over. On touch screens and with the mouse, tap to rotate right, swipe up to rotate
// left, down to drop and sideways to shift.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

const (
	inspectorWidth = 420
	gameOverDelay  = 1500 * time.Millisecond
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	engine, err := cfg.NewEngine(tetris.WithLogger(logger.Named("engine")))
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(2)
	}

	scheduler := loop.NewScheduler(engine, loop.WithLogger(logger.Named("loop")))
	scheduler.Register(&loop.InputSystem{})
	scheduler.Register(&loop.GravitySystem{Interval: cfg.Tick})
	scheduler.Register(&loop.SessionSystem{
		Repeat: cfg.Repeat,
		Delay:  gameOverDelay,
		OnGameOver: func(stats tetris.Stats) {
			logger.Info("game finished",
				zap.Int("game", stats.Games),
				zap.Int("locked", stats.Locked),
				zap.Int("rows_cleared", stats.RowsCleared),
			)
		},
	})

	layout := cfg.Layout()
	width, height := layout.Size()
	game := newGame(scheduler, layout, cfg.Classifier())

	if cfg.Debug {
		game.imgui = debugui_ebiten.NewImguiBackend("blockfall", width+inspectorWidth, height)
		game.inspector = &debugui.System{Inspector: debugui.NewInspector(scheduler, 120)}
		scheduler.Register(game.inspector)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}

	logger.Info("starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Duration("tick", cfg.Tick),
		zap.Int("repeat", cfg.Repeat),
	)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
