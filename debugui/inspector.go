package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// Snapshot is the state shown by the inspector for one frame.
type Snapshot struct {
	Width       int
	Height      int
	StartingRow int
	Status      tetris.Status
	Current     tetris.Piece
	Next        tetris.Piece
	Stats       tetris.Stats
	// Occupied counts locked cells in the visible field.
	Occupied  int
	Scheduler *loop.SchedulerStats
}

// Capture collects a snapshot of the scheduler and the engine it drives.
func Capture(scheduler *loop.Scheduler) Snapshot {
	e := scheduler.Engine()
	b := e.Board()

	occupied := 0
	for y := range b.Height() {
		for x := range b.Width() {
			if b.Get(x, y) != 0 {
				occupied++
			}
		}
	}

	return Snapshot{
		Width:       e.Width(),
		Height:      e.Height(),
		StartingRow: e.StartingRow(),
		Status:      e.Status(),
		Current:     e.Current(),
		Next:        e.Next(),
		Stats:       e.Stats(),
		Occupied:    occupied,
		Scheduler:   scheduler.GetStats(),
	}
}

// Inspector draws the engine and scheduler windows.
type Inspector struct {
	scheduler *loop.Scheduler
	palette   *render.Palette

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewInspector(scheduler *loop.Scheduler, historyFrames int) *Inspector {
	if historyFrames <= 0 {
		historyFrames = 100
	}
	return &Inspector{
		scheduler:     scheduler,
		palette:       &render.DefaultPalette,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame duration, in seconds, to the frame time history.
func (in *Inspector) Record(deltaTime float32) {
	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames
}

// AverageFrameTime returns the mean of the frame time history, in milliseconds.
func (in *Inspector) AverageFrameTime() float32 {
	var total float32
	for _, ft := range in.frameHistory {
		total += ft
	}
	return total / float32(in.historyFrames)
}

// Render records deltaTime and draws both windows. It must run between the ImGui backend's
// BeginFrame and EndFrame.
func (in *Inspector) Render(deltaTime float32) {
	in.Record(deltaTime)
	snap := Capture(in.scheduler)

	in.renderEngine(snap)
	in.renderScheduler(snap)
}

func (in *Inspector) renderEngine(snap Snapshot) {
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Field: %dx%d, starting row %d", snap.Width, snap.Height, snap.StartingRow))
	imgui.Text(fmt.Sprintf("Status: %s", snap.Status))
	imgui.Text(fmt.Sprintf("Locked cells: %d", snap.Occupied))

	imgui.Separator()
	in.pieceText("Current", snap.Current)
	in.pieceText("Next", snap.Next)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Games: %d", snap.Stats.Games))
	imgui.Text(fmt.Sprintf("Pieces locked: %d", snap.Stats.Locked))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", snap.Stats.RowsCleared))

	imgui.End()
}

func (in *Inspector) pieceText(label string, p tetris.Piece) {
	imgui.Text(fmt.Sprintf("%s: %s at (%d,%d), orientation %d, %s",
		label, p.Kind, p.X, p.Y, p.Orientation, in.palette.Name(p.Color)))
}

func (in *Inspector) renderScheduler(snap Snapshot) {
	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := in.AverageFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Frames: %d", snap.Scheduler.Frames))
	imgui.Text(fmt.Sprintf("Commands: %d", snap.Scheduler.Commands))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range snap.Scheduler.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(s.MinDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
