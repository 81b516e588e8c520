// Package config holds the settings shared by the blockfall programs and binds them to
// command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/plus3/blockfall/gesture"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// ErrInvalid reports a setting outside its accepted range.
var ErrInvalid = errors.New("config: invalid setting")

// Game configures one play session.
type Game struct {
	Width       int
	Height      int
	StartingRow int

	// Tick is the gravity interval; zero disables gravity.
	Tick time.Duration
	// Repeat is the number of games to play; negative plays forever.
	Repeat int
	// Seed makes piece generation reproducible; zero picks a random seed.
	Seed uint64

	TouchMaxLength float64
	SwipeMinLength float64

	// Factor is the side of a cell in pixels.
	Factor int
	Debug  bool
}

// Default returns the classic 10 by 20 configuration.
func Default() Game {
	return Game{
		Width:          10,
		Height:         20,
		StartingRow:    3,
		Tick:           500 * time.Millisecond,
		Repeat:         1,
		TouchMaxLength: gesture.DefaultTouchMaxLength,
		SwipeMinLength: gesture.DefaultSwipeMinLength,
		Factor:         render.DefaultFactor,
	}
}

// RegisterFlags binds every setting to a flag of fs, using the current values as defaults.
func (g *Game) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&g.Width, "width", g.Width, "Field width in cells.")
	fs.IntVar(&g.Height, "height", g.Height, "Field height in cells.")
	fs.IntVar(&g.StartingRow, "starting-row", g.StartingRow, "Row where pieces spawn; rows above it form the over zone.")
	fs.DurationVar(&g.Tick, "tick", g.Tick, "Gravity interval. Zero disables gravity.")
	fs.IntVar(&g.Repeat, "repeat", g.Repeat, "Number of games to play. Negative plays forever.")
	fs.Uint64Var(&g.Seed, "seed", g.Seed, "Piece generator seed. Zero picks a random seed.")
	fs.Float64Var(&g.TouchMaxLength, "touch-max", g.TouchMaxLength, "Longest stroke, in pixels, still read as a tap.")
	fs.Float64Var(&g.SwipeMinLength, "swipe-min", g.SwipeMinLength, "Shortest stroke, in pixels, read as a swipe.")
	fs.IntVar(&g.Factor, "factor", g.Factor, "Cell size in pixels.")
	fs.BoolVar(&g.Debug, "debug", g.Debug, "Enable debug logging and the inspector.")
}

// Validate checks the settings. Field dimension problems wrap tetris.ErrInvalidDimensions;
// everything else wraps ErrInvalid.
func (g *Game) Validate() error {
	if g.Width <= tetris.MinDimension || g.Height <= tetris.MinDimension {
		return fmt.Errorf("%w: %dx%d, both must exceed %d", tetris.ErrInvalidDimensions, g.Width, g.Height, tetris.MinDimension)
	}
	if g.StartingRow < 0 || g.StartingRow >= g.Height {
		return fmt.Errorf("%w: starting row %d outside [0,%d)", tetris.ErrInvalidDimensions, g.StartingRow, g.Height)
	}

	var errs []error
	if g.Tick < 0 {
		errs = append(errs, fmt.Errorf("%w: negative tick %s", ErrInvalid, g.Tick))
	}
	if g.Repeat == 0 {
		errs = append(errs, fmt.Errorf("%w: repeat must not be zero", ErrInvalid))
	}
	if g.TouchMaxLength <= 0 || g.SwipeMinLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: gesture thresholds must be positive", ErrInvalid))
	}
	if g.Factor <= 0 {
		errs = append(errs, fmt.Errorf("%w: factor %d", ErrInvalid, g.Factor))
	}
	return errors.Join(errs...)
}

// EngineOptions returns the engine options implied by the settings.
func (g *Game) EngineOptions() []tetris.Option {
	if g.Seed == 0 {
		return nil
	}
	return []tetris.Option{tetris.WithSeed(g.Seed)}
}

// NewEngine validates the settings and creates an engine for them.
func (g *Game) NewEngine(opts ...tetris.Option) (*tetris.Engine, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return tetris.NewEngine(g.Width, g.Height, g.StartingRow, append(g.EngineOptions(), opts...)...)
}

// Classifier returns a gesture classifier using the configured thresholds.
func (g *Game) Classifier() *gesture.Classifier {
	c := gesture.NewClassifier()
	c.SetTouchMaxLength(g.TouchMaxLength)
	c.SetSwipeMinLength(g.SwipeMinLength)
	return c
}

// Layout returns the pixel layout of the configured field.
func (g *Game) Layout() render.Layout {
	return render.NewLayout(g.Width, g.Height, g.Factor)
}
