package grid

// Dilate returns a new mask grown by steps rings of pixels: after each step,
// every pixel adjacent (under conn) to a masked pixel is masked too.
// steps <= 0 returns an unchanged copy. The receiver is not modified.
//
// Complexity: O(steps×W×H×d) time, O(W×H) memory.
func (m *Mask) Dilate(steps int, conn Connectivity) *Mask {
	out := m.Clone()
	if steps <= 0 {
		return out
	}
	offsets := conn.Offsets()
	prev := make([]bool, len(out.Bits))
	for s := 0; s < steps; s++ {
		copy(prev, out.Bits)
		for i, masked := range prev {
			if !masked {
				continue
			}
			y, x := out.Coordinate(i)
			for _, d := range offsets {
				ny, nx := y+d[0], x+d[1]
				if out.InBounds(ny, nx) {
					out.Bits[out.index(ny, nx)] = true
				}
			}
		}
	}
	return out
}
