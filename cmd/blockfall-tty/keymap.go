package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
)

// keymap resolves terminal key events. Special keys and printable runes live in separate
// tables since tcell reports them differently.
type keymap struct {
	keys  *loop.Bindings[tcell.Key]
	runes *loop.Bindings[rune]
}

func newKeymap() *keymap {
	return &keymap{
		keys: loop.NewBindings[tcell.Key](8).
			Bind(tcell.KeyLeft, loop.ShiftLeft).
			Bind(tcell.KeyRight, loop.ShiftRight).
			Bind(tcell.KeyUp, loop.RotateLeft).
			Bind(tcell.KeyDown, loop.Drop).
			Bind(tcell.KeyEnter, loop.Step),
		runes: loop.NewBindings[rune](16).
			Bind('h', loop.ShiftLeft).
			Bind('l', loop.ShiftRight).
			Bind('k', loop.RotateLeft).
			Bind('j', loop.Drop).
			Bind('x', loop.RotateLeft).
			Bind('z', loop.RotateRight).
			Bind(' ', loop.Drop).
			Bind('s', loop.Step).
			Bind('r', loop.Reset),
	}
}

func (k *keymap) lookup(ev *tcell.EventKey) (loop.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		return k.runes.Lookup(ev.Rune())
	}
	return k.keys.Lookup(ev.Key())
}

func (k *keymap) quits(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
