package fmm

import (
	"fmt"
	"log/slog"
)

// DefaultRadius is the neighbourhood radius used when WithRadius is not given.
const DefaultRadius = 5

// Option configures an inpainting call via functional arguments.
// An invalid Option (e.g. a non-positive radius) is recorded and surfaced
// as an error when Inpaint is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one inpainting call.
type Options struct {
	// Radius bounds the disc of source pixels used to rebuild a pixel, and
	// the outward pass runs to 2×Radius.
	Radius int

	// Logger receives debug diagnostics. Never nil after DefaultOptions.
	Logger *slog.Logger

	// OnFinalize is called each time the main pass pops a band pixel and
	// marks it Known, with the pixel's arrival distance. Distances arrive
	// in non-decreasing order.
	OnFinalize func(row, col int, dist float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Radius=DefaultRadius, a silent logger
// and a no-op OnFinalize hook.
func DefaultOptions() Options {
	return Options{
		Radius:     DefaultRadius,
		Logger:     newNopLogger(),
		OnFinalize: func(int, int, float64) {},
	}
}

// WithRadius sets the inpainting radius. r <= 0 is recorded as ErrBadRadius.
func WithRadius(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadRadius, r)
			return
		}
		o.Radius = r
	}
}

// WithLogger routes debug diagnostics to l. Passing nil restores the silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = newNopLogger()
		}
		o.Logger = l
	}
}

// WithOnFinalize registers a callback run whenever a pixel is finalized.
func WithOnFinalize(fn func(row, col int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// flag is the marching state of one pixel. It only ever moves
// unknown → band → known.
type flag uint8

const (
	known   flag = iota // value final
	band                // queued with a resolved distance
	unknown             // not yet reached
)
