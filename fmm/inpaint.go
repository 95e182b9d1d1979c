package fmm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fmmfill/grid"
)

// Inpaint returns a copy of img with every pixel where mask is true rebuilt
// by fast marching from the hole boundary inward. img is not modified;
// unmasked pixels of the result are identical to img.
//
// Preconditions and validation (in order):
//  1. img and mask must be non-nil (ErrNilInput).
//  2. Options must be valid (ErrBadRadius).
//  3. img and mask must share height and width (ErrDimensionMismatch).
//
// An all-false mask and an all-true mask both yield an unchanged copy.
//
// Complexity:
//
//   - Time:  O(M·log M + M·r²) for M masked pixels and radius r.
//   - Space: O(W·H·C) for the copy plus O(W·H) working state.
func Inpaint(img *grid.Image, mask *grid.Mask, opts ...Option) (*grid.Image, error) {
	if img == nil || mask == nil {
		return nil, ErrNilInput
	}
	out := img.Clone()
	if err := InpaintInPlace(out, mask, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// InpaintInPlace is Inpaint writing into img. Validation errors leave img
// untouched; an ErrInvariant failure may leave it partially rebuilt.
func InpaintInPlace(img *grid.Image, mask *grid.Mask, opts ...Option) error {
	// 1) Validate inputs and options.
	if img == nil || mask == nil {
		return ErrNilInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	if img.Height != mask.Height || img.Width != mask.Width {
		return fmt.Errorf("%w: image %dx%d, mask %dx%d",
			ErrDimensionMismatch, img.Height, img.Width, mask.Height, mask.Width)
	}

	r := &runner{options: cfg, log: cfg.Logger.With(slog.Int("radius", cfg.Radius))}
	return r.run(img, mask)
}

// runner holds the configuration and per-call state of one inpainting.
type runner struct {
	options Options
	log     *slog.Logger
	st      *state
	scratch []float64
}

// run seeds the band, builds the outward distances and drives the main
// march until the band is empty.
func (r *runner) run(img *grid.Image, mask *grid.Mask) error {
	// 1) Nothing to do for an empty mask.
	masked := mask.Count()
	if masked == 0 {
		r.log.Debug("fmm: empty mask, nothing to inpaint")
		return nil
	}
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		r.log.Debug("fmm: start",
			slog.Int("height", img.Height),
			slog.Int("width", img.Width),
			slog.Int("channels", img.Channels),
			slog.Int("masked", masked),
			slog.Int("regions", len(mask.Regions(grid.Conn4))))
	}

	// 2) Initial band and outward distances.
	r.st = newState(img, mask)
	seeded := r.st.seedBand(mask)
	if seeded == 0 {
		r.log.Debug("fmm: mask has no boundary, nothing to inpaint")
		return nil
	}
	outward := r.st.buildOutward(r.options.Radius)
	r.log.Debug("fmm: band seeded", slog.Int("band", seeded), slog.Int("outward", outward))

	// 3) Main march.
	r.scratch = make([]float64, img.Channels)
	filled, err := r.march()
	if err != nil {
		return err
	}
	r.log.Debug("fmm: done", slog.Int("filled", filled))
	return nil
}

// march pops band pixels in order of increasing distance, finalizes them,
// and resolves, rebuilds and queues their unknown 4-neighbours.
// Returns the number of pixels rebuilt.
func (r *runner) march() (int, error) {
	s := r.st
	filled := 0
	for s.queue.Len() > 0 {
		// 1) Finalize the closest band pixel.
		e := s.queue.pop()
		s.flags[s.index(e.row, e.col)] = known
		r.options.OnFinalize(e.row, e.col, e.dist)

		// 2) Extend the front to its unknown neighbours.
		for _, d := range neighbors4 {
			ny, nx := e.row+d[0], e.col+d[1]
			if !s.inBounds(ny, nx) {
				continue
			}
			ni := s.index(ny, nx)
			if s.flags[ni] != unknown {
				continue
			}
			t, ok := s.arrival(ny, nx)
			if !ok {
				return filled, fmt.Errorf("%w: no arrival at (%d,%d)", ErrInvariant, ny, nx)
			}
			s.dist[ni] = t
			if err := s.reconstruct(ny, nx, r.options.Radius, r.scratch); err != nil {
				return filled, err
			}
			copy(s.img.At(ny, nx), r.scratch)
			s.flags[ni] = band
			s.queue.push(bandEntry{dist: t, row: ny, col: nx})
			filled++
		}
	}
	return filled, nil
}
