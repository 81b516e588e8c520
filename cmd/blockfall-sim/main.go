// Command blockfall-sim plays games headlessly with a random bot and reports engine and
// scheduler performance.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Default()
	cfg.Repeat = -1
	cfg.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The longest the simulation may run for.")
	moves := flag.Int("moves", 2, "Random moves the bot makes per frame.")
	dropChance := flag.Float64("drop-chance", 0.05, "Probability that the bot hard-drops on a frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := zap.Must(zap.NewDevelopment())
	if !cfg.Debug {
		logger = logger.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	defer logger.Sync()

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	engine, err := cfg.NewEngine(tetris.WithLogger(logger.Named("engine")))
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(2)
	}

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Width,
		Height:         cfg.Height,
		StartingRow:    cfg.StartingRow,
		Seed:           cfg.Seed,
		Repeat:         cfg.Repeat,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	scheduler := loop.NewScheduler(engine, loop.WithLogger(logger.Named("loop")))
	scheduler.Register(&BotSystem{
		Rand:       rand.New(rand.NewPCG(cfg.Seed, ^cfg.Seed)),
		Moves:      *moves,
		DropChance: *dropChance,
	})
	scheduler.Register(&loop.GravitySystem{Interval: cfg.Tick})
	scheduler.Register(&loop.SessionSystem{
		Repeat: cfg.Repeat,
		OnGameOver: func(stats tetris.Stats) {
			report.AddGame(stats)
			logger.Debug("game finished", zap.Int("game", stats.Games), zap.Int("rows_cleared", stats.RowsCleared))
		},
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", zap.Duration("duration", *duration), zap.Uint64("seed", cfg.Seed))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// Every frame advances game time by one tick, so gravity steps once per frame.
	dt := cfg.Tick.Seconds()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			running := scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			if !running {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Scheduler = scheduler.GetStats()
	report.Engine = engine.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", zap.Int("games", len(report.Games)), zap.Int64("frames", report.Scheduler.Frames))

	fmt.Println("\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}
