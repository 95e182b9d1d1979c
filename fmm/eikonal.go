package fmm

import "math"

// solveEikonal returns the arrival time at a pixel from its vertical
// neighbour (y1,x1) and horizontal neighbour (y2,x2), using the two-point
// upwind discretization of |∇T| = 1.
//
//   - either neighbour off the grid: no solution.
//   - both settled: T = (d1+d2−√(2−(d1−d2)²))/2, or the larger root, whichever
//     is not below both d1 and d2; no solution if neither is.
//   - both settled but (d1−d2)² ≥ 2, or only one settled: 1 + that distance
//     (the vertical neighbour wins when both are settled).
//   - neither settled: no solution.
//
// ok is false exactly when there is no solution; t is then noSolution.
func (s *state) solveEikonal(y1, x1, y2, x2 int) (t float64, ok bool) {
	if !s.inBounds(y1, x1) || !s.inBounds(y2, x2) {
		return noSolution, false
	}
	settled1, settled2 := s.settled(y1, x1), s.settled(y2, x2)
	d1, d2 := s.dist[s.index(y1, x1)], s.dist[s.index(y2, x2)]

	if settled1 && settled2 {
		disc := 2.0 - (d1-d2)*(d1-d2)
		if disc > 0 {
			r := math.Sqrt(disc)
			t = (d1 + d2 - r) / 2.0
			if t >= d1 && t >= d2 {
				return t, true
			}
			t += r
			if t >= d1 && t >= d2 {
				return t, true
			}
			return noSolution, false
		}
	}
	if settled1 {
		return 1.0 + d1, true
	}
	if settled2 {
		return 1.0 + d2, true
	}
	return noSolution, false
}

// arrival resolves the distance of (y,x) as the minimum eikonal solution
// over the four neighbour pairings. On grids one pixel tall or wide every
// pairing runs off the grid; the first-order estimate 1 + min settled
// 4-neighbour distance is used there instead. ok is false only when no
// neighbour is settled at all.
func (s *state) arrival(y, x int) (t float64, ok bool) {
	t = noSolution
	for _, p := range pairings {
		v, h := p[0], p[1]
		if cand, solved := s.solveEikonal(y+v[0], x+v[1], y+h[0], x+h[1]); solved && (!ok || cand < t) {
			t, ok = cand, true
		}
	}
	if ok {
		return t, true
	}
	for _, d := range neighbors4 {
		ny, nx := y+d[0], x+d[1]
		if !s.settled(ny, nx) {
			continue
		}
		if cand := 1.0 + s.dist[s.index(ny, nx)]; !ok || cand < t {
			t, ok = cand, true
		}
	}
	return t, ok
}
