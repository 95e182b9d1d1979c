package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the (dy, dx) neighbor offsets for the connectivity.
// Conn4 yields up, left, down, right, the same order the inpainting
// front visits neighbors in.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}
	return [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
}

// Image is an H×W×C grid of samples. Pix holds row-major pixels, each pixel
// being Channels consecutive samples:
//
//	Pix[(y*Width+x)*Channels+c]
//
// Image is not safe for concurrent mutation.
type Image struct {
	Height, Width int
	Channels      int
	Pix           []float64
}

// Mask is an H×W grid of booleans stored row-major in Bits.
// A true bit marks a pixel that requires reconstruction.
type Mask struct {
	Height, Width int
	Bits          []bool
}
