package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Width       int
	Height      int
	StartingRow int
	Seed        uint64
	Repeat      int

	// Results
	Games          []GameResult
	Engine         tetris.Stats
	Scheduler      *loop.SchedulerStats
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	last tetris.Stats
}

// GameResult holds what a single game added to the engine counters.
type GameResult struct {
	Game        int
	Locked      int
	RowsCleared int
}

// AddGame records a finished game from the cumulative engine stats at its end.
func (r *Report) AddGame(stats tetris.Stats) {
	r.Games = append(r.Games, GameResult{
		Game:        stats.Games,
		Locked:      stats.Locked - r.last.Locked,
		RowsCleared: stats.RowsCleared - r.last.RowsCleared,
	})
	r.last = stats
}

// Best returns the game that cleared the most rows.
func (r *Report) Best() GameResult {
	var best GameResult
	for _, g := range r.Games {
		if g.RowsCleared > best.RowsCleared || best.Game == 0 {
			best = g
		}
	}
	return best
}

// AverageLocked returns the mean number of pieces locked per finished game.
func (r *Report) AverageLocked() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Locked
	}
	return float64(total) / float64(len(r.Games))
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Simulation Report

## Configuration
- **Max Duration:** {{.Duration}}
- **Field:** {{.Width}}x{{.Height}}, starting row {{.StartingRow}}
- **Seed:** {{.Seed}}

## Games
- **Finished:** {{len .Games}}
- **Pieces Locked:** {{.Engine.Locked}}
- **Rows Cleared:** {{.Engine.RowsCleared}}
{{- if .Games}}
- **Avg Pieces per Game:** {{printf "%.1f" .AverageLocked}}
{{- with .Best}}
- **Best Game:** #{{.Game}} with {{.RowsCleared}} rows from {{.Locked}} pieces
{{- end}}
{{- end}}

## Performance Results
- **Frames:** {{.Scheduler.Frames}}
- **Commands:** {{.Scheduler.Commands}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Runs | Min | Avg | Max |
|---|---|---|---|---|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.MinDuration}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
