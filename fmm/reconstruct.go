package fmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// epsilon replaces a zero direction factor so that sources lying exactly
// across the distance gradient still contribute.
const epsilon = 1.0e-6

// reconstruct rebuilds pixel (y,x) from every source pixel within radius
// that is in bounds, not unknown and has a resolved distance, writing the
// weighted channel mean into dst (len(dst) == image channels).
//
// For a source n and target p, with T the distance field:
//
//	direction = |(p−n) · ∇T(p)|, or epsilon when zero
//	level     = 1 / (1 + |T(n) − T(p)|)
//	distance  = 1 / |p−n|³
//	weight    = |direction × level × distance|
//
// A zero total weight means no source was found, which the marching order
// rules out; it is reported as ErrInvariant instead of yielding NaN.
func (s *state) reconstruct(y, x, radius int, dst []float64) error {
	t := s.dist[s.index(y, x)]
	gy, gx := s.gradient(y, x, s.dist)
	rad := float64(radius)

	for c := range dst {
		dst[c] = 0
	}
	total := 0.0
	for ny := y - radius; ny <= y+radius; ny++ {
		for nx := x - radius; nx <= x+radius; nx++ {
			if !s.inBounds(ny, nx) || (ny == y && nx == x) {
				continue
			}
			ni := s.index(ny, nx)
			if s.flags[ni] == unknown || !resolved(s.dist[ni]) {
				continue
			}
			dy, dx := float64(y-ny), float64(x-nx)
			lenSq := dy*dy + dx*dx
			length := math.Sqrt(lenSq)
			if length > rad {
				continue
			}

			dirFactor := math.Abs(dy*gy + dx*gx)
			if dirFactor == 0 {
				dirFactor = epsilon
			}
			levelFactor := 1.0 / (1.0 + math.Abs(s.dist[ni]-t))
			distFactor := 1.0 / (length * lenSq)
			w := math.Abs(dirFactor * distFactor * levelFactor)

			floats.AddScaled(dst, w, s.img.At(ny, nx))
			total += w
		}
	}
	if total == 0 {
		return fmt.Errorf("%w: zero total weight at (%d,%d)", ErrInvariant, y, x)
	}
	for c := range dst {
		dst[c] /= total
	}
	return nil
}
