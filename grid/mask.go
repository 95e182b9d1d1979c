package grid

import "fmt"

// NewMask allocates an all-false h×w mask.
// Returns ErrEmptyGrid if h or w is not positive.
func NewMask(h, w int) (*Mask, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Mask{Height: h, Width: w, Bits: make([]bool, h*w)}, nil
}

// MaskFrom2D builds a mask from bits[y][x], deep-copying the input.
// Returns ErrEmptyGrid if bits has no rows or no columns,
// ErrNonRectangular if any row length differs.
func MaskFrom2D(bits [][]bool) (*Mask, error) {
	if len(bits) == 0 || len(bits[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(bits), len(bits[0])
	for _, row := range bits {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m, _ := NewMask(h, w)
	for y := 0; y < h; y++ {
		copy(m.Bits[y*w:(y+1)*w], bits[y])
	}
	return m, nil
}

// InBounds reports whether (y,x) lies within the mask.
func (m *Mask) InBounds(y, x int) bool {
	return y >= 0 && y < m.Height && x >= 0 && x < m.Width
}

// At reports whether (y,x) is masked. Out-of-range coordinates read as false.
func (m *Mask) At(y, x int) bool {
	if !m.InBounds(y, x) {
		return false
	}
	return m.Bits[m.index(y, x)]
}

// Set marks or clears (y,x). Returns ErrOutOfRange for a bad coordinate.
func (m *Mask) Set(y, x int, v bool) error {
	if !m.InBounds(y, x) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, y, x)
	}
	m.Bits[m.index(y, x)] = v
	return nil
}

// Count returns the number of masked pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	cp := *m
	cp.Bits = make([]bool, len(m.Bits))
	copy(cp.Bits, m.Bits)
	return &cp
}

// index maps (y,x) to a row-major index: y*Width + x.
func (m *Mask) index(y, x int) int {
	return y*m.Width + x
}

// Coordinate converts a row-major index back to (y,x).
// Complexity: O(1).
func (m *Mask) Coordinate(idx int) (y, x int) {
	return idx / m.Width, idx % m.Width
}
