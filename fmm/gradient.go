package fmm

// offGrid is the gradient component reported for an axis whose neighbours
// run off the grid. It is the noSolution value on purpose: the reconstructor
// multiplies it into the direction factor, which makes pixels on the image
// border draw almost entirely from sources along the clipped axis.
const offGrid = noSolution

// gradient estimates ∇field at (y,x) with finite differences, choosing per
// axis from the neighbours that are not unknown:
//
//   - both in bounds and resolved:  centred  (f[+1] − f[−1]) / 2
//   - only the previous one:        backward f[0] − f[−1]
//   - only the next one:            forward  f[+1] − f[0]
//   - neither:                      0
//   - either neighbour off the grid: offGrid
//
// field is a row-major H×W scalar grid, typically the distance field.
func (s *state) gradient(y, x int, field []float64) (gy, gx float64) {
	gy = s.axisGradient(field, y, x, -1, 0, 1, 0)
	gx = s.axisGradient(field, y, x, 0, -1, 0, 1)
	return gy, gx
}

// axisGradient computes one gradient component from the previous neighbour
// at (y+py, x+px) and the next one at (y+ny, x+nx).
func (s *state) axisGradient(field []float64, y, x, py, px, ny, nx int) float64 {
	prevY, prevX := y+py, x+px
	nextY, nextX := y+ny, x+nx
	if !s.inBounds(prevY, prevX) || !s.inBounds(nextY, nextX) {
		return offGrid
	}
	pi, ni := s.index(prevY, prevX), s.index(nextY, nextX)
	prevOK, nextOK := s.flags[pi] != unknown, s.flags[ni] != unknown
	switch {
	case prevOK && nextOK:
		return (field[ni] - field[pi]) / 2.0
	case prevOK:
		return field[s.index(y, x)] - field[pi]
	case nextOK:
		return field[ni] - field[s.index(y, x)]
	default:
		return 0
	}
}
