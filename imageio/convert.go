package imageio

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fmmfill/grid"
)

// lumaWeights are the Rec. 601 weights for R, G, B.
var lumaWeights = []float64{0.299, 0.587, 0.114}

// isGray reports whether img stores single-channel samples.
func isGray(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}
	return false
}

// ToGrid converts img to a grid.Image with samples in [0,255]. Grey images
// yield one channel; all other images yield three (R, G, B, alpha dropped).
// The grid origin is img.Bounds().Min.
func ToGrid(img image.Image) *grid.Image {
	b := img.Bounds()
	channels := 3
	if isGray(img) {
		channels = 1
	}
	out, _ := grid.NewImage(b.Dy(), b.Dx(), channels)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := out.At(y, x)
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if channels == 1 {
				px[0] = float64(color.GrayModel.Convert(c).(color.Gray).Y)
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			px[0], px[1], px[2] = float64(n.R), float64(n.G), float64(n.B)
		}
	}
	return out
}

// FromGrid converts g back to an image: 1 channel to *image.Gray,
// 3 channels to *image.RGBA (opaque), 4 channels to *image.NRGBA.
// Samples are rounded and clamped to [0,255].
// Returns ErrChannels for any other channel count.
func FromGrid(g *grid.Image) (image.Image, error) {
	rect := image.Rect(0, 0, g.Width, g.Height)
	switch g.Channels {
	case 1:
		img := image.NewGray(rect)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: toByte(g.At(y, x)[0])})
			}
		}
		return img, nil
	case 3:
		img := image.NewRGBA(rect)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				px := g.At(y, x)
				img.SetRGBA(x, y, color.RGBA{R: toByte(px[0]), G: toByte(px[1]), B: toByte(px[2]), A: 0xff})
			}
		}
		return img, nil
	case 4:
		img := image.NewNRGBA(rect)
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				px := g.At(y, x)
				img.SetNRGBA(x, y, color.NRGBA{R: toByte(px[0]), G: toByte(px[1]), B: toByte(px[2]), A: toByte(px[3])})
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrChannels, g.Channels)
}

// toByte rounds v to the nearest integer in [0,255].
func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}

// MaskFromImage marks every pixel whose Rec. 601 luma (0..255) is strictly
// greater than threshold. Mask images are usually white-on-black, so a
// threshold of 127 picks the white strokes.
func MaskFromImage(img image.Image, threshold float64) *grid.Mask {
	b := img.Bounds()
	m, _ := grid.NewMask(b.Dy(), b.Dx())
	rgb := make([]float64, 3)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			rgb[0], rgb[1], rgb[2] = float64(n.R), float64(n.G), float64(n.B)
			m.Bits[y*b.Dx()+x] = floats.Dot(rgb, lumaWeights) > threshold
		}
	}
	return m
}
