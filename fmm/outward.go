package fmm

// buildOutward marches the initial band away from the hole to give the
// known pixels near the boundary a distance. It runs on a copy of the flags
// with the known and unknown roles swapped, shares s.dist, and stops once
// the last resolved distance reaches 2×radius. Every resolved distance is
// then negated, so the field grows positive into the hole and negative
// away from it.
//
// The band queue of s is left untouched for the main pass.
// Returns the number of pixels the outward front resolved.
func (s *state) buildOutward(radius int) int {
	// 1) Role-swapped view over the same distance field.
	out := &state{
		height: s.height,
		width:  s.width,
		flags:  make([]flag, len(s.flags)),
		dist:   s.dist,
		queue:  s.queue.clone(),
	}
	for i, f := range s.flags {
		switch f {
		case known:
			out.flags[i] = unknown
		case unknown:
			out.flags[i] = known
		default:
			out.flags[i] = f
		}
	}

	// 2) March until the front passes 2×radius.
	limit := 2.0 * float64(radius)
	last := 0.0
	count := 0
	for out.queue.Len() > 0 && last < limit {
		e := out.queue.pop()
		out.flags[out.index(e.row, e.col)] = known
		for _, d := range neighbors4 {
			ny, nx := e.row+d[0], e.col+d[1]
			if !out.inBounds(ny, nx) {
				continue
			}
			ni := out.index(ny, nx)
			if out.flags[ni] != unknown {
				continue
			}
			t, ok := out.arrival(ny, nx)
			if !ok {
				// the popped pixel is settled, so this cannot happen
				continue
			}
			last = t
			out.dist[ni] = t
			out.flags[ni] = band
			out.queue.push(bandEntry{dist: t, row: ny, col: nx})
			count++
		}
	}

	// 3) Flip the sign of everything resolved so far.
	for i, d := range s.dist {
		if resolved(d) {
			s.dist[i] = -d
		}
	}
	return count
}
