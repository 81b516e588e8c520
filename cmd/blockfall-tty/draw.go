package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

const (
	originX = 2
	originY = 1
	// cellWidth keeps cells roughly square in a terminal font.
	cellWidth = 2
)

// drawSystem repaints the terminal after the frame's commands have been applied.
type drawSystem struct {
	screen tcell.Screen
	colors [len(render.DefaultPalette)]tcell.Style

	frameStyle tcell.Style
	zoneStyle  tcell.Style
	emptyStyle tcell.Style
	textStyle  tcell.Style
}

func newDrawSystem(screen tcell.Screen) *drawSystem {
	d := &drawSystem{
		screen:     screen,
		frameStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		zoneStyle:  tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		emptyStyle: tcell.StyleDefault,
		textStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
	for id := range d.colors {
		c := tcell.FromImageColor(render.DefaultPalette.Color(uint8(id)))
		d.colors[id] = tcell.StyleDefault.Background(c)
	}
	return d
}

func (d *drawSystem) Execute(frame *loop.Frame) {
	e := frame.Engine
	frame.Commands.Defer(func() { d.draw(e) })
}

func (d *drawSystem) draw(e *tetris.Engine) {
	d.screen.Clear()

	width, height := e.Width(), e.Height()
	for y := 0; y < height; y++ {
		d.put(originX-1, originY+y, '│', d.frameStyle)
		d.put(originX+width*cellWidth, originY+y, '│', d.frameStyle)
		for x := 0; x < width; x++ {
			ch, style := ' ', d.emptyStyle
			if y < e.StartingRow() {
				ch, style = '·', d.zoneStyle
			}
			d.cell(x, y, ch, style)
		}
	}
	for x := -1; x <= width*cellWidth; x++ {
		d.put(originX+x, originY+height, '─', d.frameStyle)
	}
	d.put(originX-1, originY+height, '└', d.frameStyle)
	d.put(originX+width*cellWidth, originY+height, '┘', d.frameStyle)
	d.put(originX+width*cellWidth+1, originY+e.StartingRow(), '<', d.frameStyle)

	for sq := range e.ColoredSquares() {
		if sq.Y < 0 {
			continue
		}
		d.cell(sq.X, sq.Y, ' ', d.colors[min(int(sq.Color), len(d.colors)-1)])
	}

	d.status(e, originX+width*cellWidth+4)
	d.screen.Show()
}

func (d *drawSystem) cell(x, y int, ch rune, style tcell.Style) {
	for i := range cellWidth {
		d.put(originX+x*cellWidth+i, originY+y, ch, style)
	}
}

func (d *drawSystem) put(x, y int, ch rune, style tcell.Style) {
	d.screen.SetContent(x, y, ch, nil, style)
}

func (d *drawSystem) text(x, y int, s string) {
	for i, ch := range []rune(s) {
		d.put(x+i, y, ch, d.textStyle)
	}
}

func (d *drawSystem) status(e *tetris.Engine, x int) {
	stats := e.Stats()
	d.text(x, originY, fmt.Sprintf("game   %d", stats.Games))
	d.text(x, originY+1, fmt.Sprintf("pieces %d", stats.Locked))
	d.text(x, originY+2, fmt.Sprintf("rows   %d", stats.RowsCleared))

	d.text(x, originY+4, "next")
	next := e.Next()
	for _, sq := range next.Shape().Offsets(next.Orientation) {
		for i := range cellWidth {
			d.put(x+2+(sq.X+2)*cellWidth+i, originY+7+sq.Y, ' ', d.colors[next.Color])
		}
	}

	if e.Status() == tetris.StatusOver {
		d.text(x, originY+11, "GAME OVER")
	}
}
