package loop

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      int64
	Commands    int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// Scheduler drives one engine: it executes systems in registration order once per frame
// and serializes commands submitted from other goroutines onto that single thread.
type Scheduler struct {
	engine      *tetris.Engine
	systems     []System
	systemStats []*systemStatsInternal
	logger      *zap.Logger

	mu      sync.Mutex
	pending []Command

	frames   int64
	commands int64
	stopped  bool
}

// NewScheduler creates a scheduler for the given engine.
func NewScheduler(engine *tetris.Engine, opts ...Option) *Scheduler {
	s := &Scheduler{
		engine:  engine,
		systems: make([]System, 0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine driven by the scheduler.
func (s *Scheduler) Engine() *tetris.Engine {
	return s.engine
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	s.logger.Debug("registered system", zap.String("system", systemType.Name()))
}

// Submit queues a command for the next frame. It is safe to call from any goroutine.
func (s *Scheduler) Submit(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

func (s *Scheduler) drain() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	input := s.pending
	s.pending = nil
	return input
}

// Once executes all registered systems once with the given delta time, in seconds.
// It reports whether the scheduler is still running afterwards.
func (s *Scheduler) Once(dt float64) bool {
	if s.stopped {
		return false
	}

	frame := newFrame(dt, s.engine, s.drain())
	s.frames++
	s.commands += int64(len(frame.Input))

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands += int64(frame.Commands.Len())
	frame.Commands.Flush(s.engine)

	if frame.stop {
		s.stopped = true
		s.logger.Info("scheduler stopped", zap.Int64("frames", s.frames))
	}
	return !s.stopped
}

// Run executes all systems at the given interval until the context is cancelled or a
// system stops the loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if !s.Once(dt) {
				return
			}
		}
	}
}

// Stopped reports whether a system has stopped the loop.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Commands:    s.commands,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
