package grid

// Regions finds all contiguous holes (connected masked pixels) under the
// given connectivity. Each region is a slice of row-major indices in BFS
// order; regions are ordered by their first pixel in row-major order.
//
// To convert an index back to (y,x), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Mask) Regions(conn Connectivity) [][]int {
	seen := make([]bool, len(m.Bits))
	var regions [][]int
	offsets := conn.Offsets()

	for i0, masked := range m.Bits {
		if !masked || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			uy, ux := m.Coordinate(queue[qi])
			for _, d := range offsets {
				vy, vx := uy+d[0], ux+d[1]
				if !m.At(vy, vx) {
					continue
				}
				vi := m.index(vy, vx)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
