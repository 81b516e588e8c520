package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/gesture"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	backgroundColor = color.RGBA{32, 32, 36, 255}
	outlineColor    = color.RGBA{0, 0, 0, 255}
	overZoneColor   = color.RGBA{230, 230, 230, 255}
	flashColor      = color.RGBA{255, 255, 255, 255}
)

// Game implements ebiten.Game on top of the loop scheduler.
type Game struct {
	scheduler *loop.Scheduler
	engine    *tetris.Engine
	layout    render.Layout
	palette   *render.Palette
	input     *input

	// fade dims the field once a game is over.
	fade  *gween.Tween
	alpha float32
	// flash briefly outlines the field whenever a piece locks.
	flash      *gween.Tween
	flashAlpha float32
	locked     int

	imgui     *debugui_ebiten.ImguiBackend
	inspector *debugui.System
}

func newGame(scheduler *loop.Scheduler, layout render.Layout, classifier *gesture.Classifier) *Game {
	g := &Game{
		scheduler: scheduler,
		engine:    scheduler.Engine(),
		layout:    layout,
		palette:   &render.DefaultPalette,
		alpha:     1,
	}
	g.input = newInput(scheduler, classifier)
	return g
}

func (g *Game) Update() error {
	if g.input.quit() {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	var captured debugui.InputState
	if g.inspector != nil {
		captured = g.inspector.Input
	}
	g.input.poll(captured)

	dt := 1.0 / float64(ebiten.TPS())
	running := g.scheduler.Once(dt)

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	if !running {
		return ebiten.Termination
	}

	g.animate(float32(dt))
	return nil
}

func (g *Game) animate(dt float32) {
	over := g.engine.Status() == tetris.StatusOver
	switch {
	case over && g.fade == nil:
		g.fade = gween.New(1, 0.3, 1.2, ease.OutQuad)
	case !over && g.fade != nil:
		g.fade = nil
		g.alpha = 1
	}
	if g.fade != nil {
		g.alpha, _ = g.fade.Update(dt)
	}

	if locked := g.engine.Stats().Locked; locked != g.locked {
		g.locked = locked
		g.flash = gween.New(1, 0, 0.25, ease.Linear)
	}
	if g.flash != nil {
		var done bool
		g.flashAlpha, done = g.flash.Update(dt)
		if done {
			g.flash = nil
			g.flashAlpha = 0
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	width, height := g.layout.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), backgroundColor, false)

	for sq := range g.engine.ColoredSquares() {
		if sq.Y < 0 {
			continue
		}
		r := g.layout.Cell(sq.X, sq.Y)
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, render.Faded(g.palette.Color(sq.Color), g.alpha), false)
		vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 1, outlineColor, false)
	}

	y := g.layout.OverZoneY(g.engine.StartingRow())
	vector.StrokeLine(screen, 0, y, float32(width), y, 2, overZoneColor, false)

	if g.flashAlpha > 0 {
		vector.StrokeRect(screen, 1, 1, float32(width)-2, float32(height)-2, 2, render.Faded(flashColor, g.flashAlpha), false)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.Size()
}
