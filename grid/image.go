package grid

import "fmt"

// NewImage allocates a zero-filled h×w image with c channels.
// Returns ErrEmptyGrid if h or w is not positive, ErrChannels if c is not positive.
// Complexity: O(h×w×c) time and memory.
func NewImage(h, w, c int) (*Image, error) {
	if h <= 0 || w <= 0 {
		return nil, ErrEmptyGrid
	}
	if c <= 0 {
		return nil, ErrChannels
	}
	return &Image{
		Height:   h,
		Width:    w,
		Channels: c,
		Pix:      make([]float64, h*w*c),
	}, nil
}

// ImageFrom2D builds a single-channel image from values[y][x].
// The input is deep-copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func ImageFrom2D(values [][]float64) (*Image, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	img, _ := NewImage(h, w, 1)
	for y := 0; y < h; y++ {
		copy(img.Pix[y*w:(y+1)*w], values[y])
	}
	return img, nil
}

// ImageFrom3D builds an image from values[y][x][c]. Every pixel must carry
// the same, positive, number of channels.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrChannels on malformed input.
func ImageFrom3D(values [][][]float64) (*Image, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	c := len(values[0][0])
	if c == 0 {
		return nil, ErrChannels
	}
	img, _ := NewImage(h, w, c)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, px := range row {
			if len(px) != c {
				return nil, fmt.Errorf("%w: pixel (%d,%d) has %d channels, want %d", ErrChannels, y, x, len(px), c)
			}
			copy(img.At(y, x), px)
		}
	}
	return img, nil
}

// InBounds reports whether (y,x) lies within the image.
// Complexity: O(1).
func (im *Image) InBounds(y, x int) bool {
	return y >= 0 && y < im.Height && x >= 0 && x < im.Width
}

// index maps (y,x) to the offset of its first channel in Pix.
func (im *Image) index(y, x int) int {
	return (y*im.Width + x) * im.Channels
}

// At returns the channel samples of pixel (y,x) as a view into Pix;
// writes through the returned slice modify the image.
// At panics if (y,x) is out of bounds, like a slice index would.
func (im *Image) At(y, x int) []float64 {
	if !im.InBounds(y, x) {
		panic(fmt.Sprintf("grid: Image.At(%d,%d) out of range %dx%d", y, x, im.Height, im.Width))
	}
	i := im.index(y, x)
	return im.Pix[i : i+im.Channels : i+im.Channels]
}

// Set copies px into pixel (y,x).
// Returns ErrOutOfRange for a bad coordinate, ErrChannels when len(px) != Channels.
func (im *Image) Set(y, x int, px []float64) error {
	if !im.InBounds(y, x) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, y, x)
	}
	if len(px) != im.Channels {
		return fmt.Errorf("%w: got %d samples, want %d", ErrChannels, len(px), im.Channels)
	}
	copy(im.At(y, x), px)
	return nil
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	cp := *im
	cp.Pix = make([]float64, len(im.Pix))
	copy(cp.Pix, im.Pix)
	return &cp
}

// SameShape reports whether both images have identical height, width and channel count.
func (im *Image) SameShape(other *Image) bool {
	return im.Height == other.Height && im.Width == other.Width && im.Channels == other.Channels
}

// Equal reports whether both images have the same shape and identical samples.
func (im *Image) Equal(other *Image) bool {
	if !im.SameShape(other) {
		return false
	}
	for i, v := range im.Pix {
		if other.Pix[i] != v {
			return false
		}
	}
	return true
}
