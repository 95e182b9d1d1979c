package fmm

import (
	"github.com/katalvlaran/fmmfill/grid"
)

// noSolution marks a distance the front has not resolved. It is finite and
// far larger than any arrival on a real image, so it sorts after every
// resolved distance. Code reading a distance checks resolved() before doing
// arithmetic with it; the gradient estimator is the one documented exception.
const noSolution = 1.0e6

// resolved reports whether d is a real arrival distance.
func resolved(d float64) bool {
	return d != noSolution
}

// neighbors4 lists the (dy, dx) offsets the front visits: up, left, down, right.
var neighbors4 = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// pairings lists the four (vertical, horizontal) neighbour pairs whose
// eikonal solutions are minimised into a pixel's arrival distance:
// up-left, down-right, up-right, down-left.
var pairings = [4][2][2]int{
	{{-1, 0}, {0, -1}},
	{{1, 0}, {0, 1}},
	{{-1, 0}, {0, 1}},
	{{1, 0}, {0, -1}},
}

// state owns the mutable grids of one inpainting call: pixel flags, the
// signed distance field, the image being rebuilt and the band queue.
// All slices are row-major H×W; accessors are bounds-checked by callers
// through inBounds.
type state struct {
	height, width int
	flags         []flag
	dist          []float64
	img           *grid.Image
	queue         bandQueue
}

// newState flags masked pixels unknown and everything else known, with
// every distance unresolved. img and mask must have equal extents.
func newState(img *grid.Image, mask *grid.Mask) *state {
	n := img.Height * img.Width
	s := &state{
		height: img.Height,
		width:  img.Width,
		flags:  make([]flag, n),
		dist:   make([]float64, n),
		img:    img,
	}
	for i, masked := range mask.Bits {
		s.dist[i] = noSolution
		if masked {
			s.flags[i] = unknown
		} else {
			s.flags[i] = known
		}
	}
	return s
}

// inBounds reports whether (y,x) lies within the grid.
func (s *state) inBounds(y, x int) bool {
	return y >= 0 && y < s.height && x >= 0 && x < s.width
}

// index maps (y,x) to a row-major index: y*width + x.
func (s *state) index(y, x int) int {
	return y*s.width + x
}

// settled reports whether (y,x) is in bounds, known and carries a resolved
// distance. In the outward pass the hole pixels are known but unresolved
// and must not seed arrivals.
func (s *state) settled(y, x int) bool {
	if !s.inBounds(y, x) {
		return false
	}
	i := s.index(y, x)
	return s.flags[i] == known && resolved(s.dist[i])
}

// seedBand puts every unmasked, in-bounds 4-neighbour of a masked pixel on
// the band at distance 0, scanning masked pixels in row-major order.
// Returns the number of band pixels seeded.
func (s *state) seedBand(mask *grid.Mask) int {
	seeded := 0
	for i, masked := range mask.Bits {
		if !masked {
			continue
		}
		y, x := i/s.width, i%s.width
		for _, d := range neighbors4 {
			ny, nx := y+d[0], x+d[1]
			if !s.inBounds(ny, nx) {
				continue
			}
			ni := s.index(ny, nx)
			if s.flags[ni] == band || mask.Bits[ni] {
				continue
			}
			s.flags[ni] = band
			s.dist[ni] = 0
			s.queue.push(bandEntry{dist: 0, row: ny, col: nx})
			seeded++
		}
	}
	return seeded
}
