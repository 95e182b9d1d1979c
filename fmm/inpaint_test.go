package fmm_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fmmfill/fmm"
	"github.com/katalvlaran/fmmfill/grid"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

func constImage(t *testing.T, h, w, c int, v float64) *grid.Image {
	t.Helper()
	img, err := grid.NewImage(h, w, c)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func randomImage(t *testing.T, rng *rand.Rand, h, w, c int) *grid.Image {
	t.Helper()
	img, err := grid.NewImage(h, w, c)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = float64(rng.Intn(256))
	}
	return img
}

func rectMask(t *testing.T, h, w, y0, x0, y1, x1 int) *grid.Mask {
	t.Helper()
	m, err := grid.NewMask(h, w)
	require.NoError(t, err)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			require.NoError(t, m.Set(y, x, true))
		}
	}
	return m
}

// requireUnmaskedUnchanged asserts every unmasked pixel of out equals in.
func requireUnmaskedUnchanged(t *testing.T, in, out *grid.Image, mask *grid.Mask) {
	t.Helper()
	require.True(t, in.SameShape(out), "shape changed")
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			if mask.At(y, x) {
				continue
			}
			require.Equal(t, in.At(y, x), out.At(y, x), "unmasked pixel (%d,%d) changed", y, x)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestInpaint_NilInput(t *testing.T) {
	mask := rectMask(t, 2, 2, 0, 0, 1, 1)
	_, err := fmm.Inpaint(nil, mask)
	require.ErrorIs(t, err, fmm.ErrNilInput)

	img := constImage(t, 2, 2, 1, 0)
	_, err = fmm.Inpaint(img, nil)
	require.ErrorIs(t, err, fmm.ErrNilInput)
	require.ErrorIs(t, fmm.InpaintInPlace(nil, nil), fmm.ErrNilInput)
}

func TestInpaint_DimensionMismatch(t *testing.T) {
	img := constImage(t, 4, 5, 3, 7)
	orig := img.Clone()
	mask := rectMask(t, 5, 4, 1, 1, 2, 2)

	out, err := fmm.Inpaint(img, mask)
	require.ErrorIs(t, err, fmm.ErrDimensionMismatch)
	require.Nil(t, out)
	assert.Contains(t, err.Error(), "4x5")

	require.ErrorIs(t, fmm.InpaintInPlace(img, mask), fmm.ErrDimensionMismatch)
	require.True(t, img.Equal(orig), "no partial output on mismatch")
}

func TestInpaint_BadRadius(t *testing.T) {
	img := constImage(t, 3, 3, 1, 1)
	mask := rectMask(t, 3, 3, 1, 1, 2, 2)
	for _, r := range []int{0, -2} {
		_, err := fmm.Inpaint(img, mask, fmm.WithRadius(r))
		require.ErrorIs(t, err, fmm.ErrBadRadius)
	}
}

// ------------------------------------------------------------------------
// 2. Degenerate masks
// ------------------------------------------------------------------------

// TestInpaint_EmptyMask: nothing is modified and the band never fills.
func TestInpaint_EmptyMask(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	img := randomImage(t, rng, 6, 7, 3)
	mask, err := grid.NewMask(6, 7)
	require.NoError(t, err)

	finalized := 0
	out, err := fmm.Inpaint(img, mask, fmm.WithOnFinalize(func(int, int, float64) { finalized++ }))
	require.NoError(t, err)
	require.True(t, out.Equal(img))
	require.Zero(t, finalized)
}

// TestInpaint_FullMask: with no boundary there is nothing to seed from.
func TestInpaint_FullMask(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	img := randomImage(t, rng, 4, 4, 1)
	mask := rectMask(t, 4, 4, 0, 0, 4, 4)

	finalized := 0
	out, err := fmm.Inpaint(img, mask, fmm.WithOnFinalize(func(int, int, float64) { finalized++ }))
	require.NoError(t, err)
	require.True(t, out.Equal(img))
	require.Zero(t, finalized)
}

// ------------------------------------------------------------------------
// 3. Scenarios
// ------------------------------------------------------------------------

// TestInpaint_ConstantImage fills a 2×2 hole of a flat 10×10 image; every
// source carries the same value, so the result is that value.
func TestInpaint_ConstantImage(t *testing.T) {
	img := constImage(t, 10, 10, 1, 100)
	mask := rectMask(t, 10, 10, 4, 4, 6, 6)

	out, err := fmm.Inpaint(img, mask, fmm.WithRadius(3))
	require.NoError(t, err)
	want := constImage(t, 10, 10, 1, 100)
	if diff := cmp.Diff(want.Pix, out.Pix, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("constant fill mismatch (-want +got):\n%s", diff)
	}
}

// TestInpaint_SinglePixelOracle rebuilds the centre of a 5×5 image whose
// four neighbours hold 10, 20, 30, 40 and all else 0, with radius 5.
//
// The outward pass gives the known pixels these distances:
//
//	-3 -2 -1 -2 -3
//	-2 -1  0 -1 -2
//	-1  0  T  0 -1
//	-2 -1  0 -1 -2
//	-3 -2 -1 -2 -3
//
// The centre arrives at T = 1 from the first finalized neighbour, and ∇T
// there is 0, so every direction factor is ε and cancels out. Each source
// weighs 1 / (len³ · (1 + |d − 1|)).
func TestInpaint_SinglePixelOracle(t *testing.T) {
	img, err := grid.ImageFrom2D([][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 10, 0, 0},
		{0, 20, 0, 30, 0},
		{0, 0, 40, 0, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	mask := rectMask(t, 5, 5, 2, 2, 3, 3)

	out, err := fmm.Inpaint(img, mask, fmm.WithRadius(5))
	require.NoError(t, err)

	wOrth := 1 / (1 * 2.0)                  // 4 × len 1,  d 0
	wDiag := 1 / (2 * math.Sqrt2 * 3.0)     // 4 × len √2, d -1
	wAxis2 := 1 / (8 * 3.0)                 // 4 × len 2,  d -1
	wKnight := 1 / (5 * math.Sqrt(5) * 4.0) // 8 × len √5, d -2
	wCorner := 1 / (16 * math.Sqrt2 * 5.0)  // 4 × len 2√2, d -3
	total := 4*wOrth + 4*wDiag + 4*wAxis2 + 8*wKnight + 4*wCorner
	want := wOrth * (10 + 20 + 30 + 40) / total

	assert.InDelta(t, want, out.At(2, 2)[0], 1e-9)
	assert.InDelta(t, 17.5296, out.At(2, 2)[0], 1e-3)
	requireUnmaskedUnchanged(t, img, out, mask)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestInpaint_Properties runs random multi-channel images and masks and checks
// shape, untouched unmasked pixels, untouched input, value bounds, and the
// non-decreasing finalize order.
func TestInpaint_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		h, w := 3+rng.Intn(14), 3+rng.Intn(14)
		channels := 1 + rng.Intn(4)
		radius := 1 + rng.Intn(6)
		img := randomImage(t, rng, h, w, channels)
		orig := img.Clone()
		mask, err := grid.NewMask(h, w)
		require.NoError(t, err)
		for i := range mask.Bits {
			mask.Bits[i] = rng.Intn(4) == 0
		}

		last := math.Inf(-1)
		var masked int
		out, err := fmm.Inpaint(img, mask,
			fmm.WithRadius(radius),
			fmm.WithOnFinalize(func(row, col int, dist float64) {
				require.GreaterOrEqual(t, dist, last, "finalize order went backwards at (%d,%d)", row, col)
				last = dist
				if mask.At(row, col) {
					masked++
				}
			}))
		require.NoError(t, err, "trial %d", trial)
		require.True(t, img.Equal(orig), "Inpaint modified its input")
		requireUnmaskedUnchanged(t, img, out, mask)
		if mask.Count() < h*w {
			require.Equal(t, mask.Count(), masked, "every hole pixel is finalized once")
		}
		for i, v := range out.Pix {
			require.False(t, math.IsNaN(v), "NaN at sample %d", i)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 255.0)
		}
	}
}

// TestInpaint_Deterministic: the same input yields bit-identical output.
func TestInpaint_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	img := randomImage(t, rng, 12, 9, 3)
	mask := rectMask(t, 12, 9, 3, 2, 8, 6)

	a, err := fmm.Inpaint(img, mask)
	require.NoError(t, err)
	b, err := fmm.Inpaint(img, mask)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

// TestInpaint_EdgesAndCorners puts holes against every border so that
// neighbour queries run off the grid on each side.
func TestInpaint_EdgesAndCorners(t *testing.T) {
	img, err := grid.NewImage(6, 6, 2)
	require.NoError(t, err)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			require.NoError(t, img.Set(y, x, []float64{float64(10 * y), float64(10 * x)}))
		}
	}
	mask, err := grid.MaskFrom2D([][]bool{
		{true, false, false, true, false, true},
		{false, false, false, false, false, false},
		{true, false, false, false, false, true},
		{false, false, false, false, false, false},
		{false, false, false, false, false, false},
		{true, false, true, false, true, true},
	})
	require.NoError(t, err)

	out, err := fmm.Inpaint(img, mask, fmm.WithRadius(2))
	require.NoError(t, err)
	requireUnmaskedUnchanged(t, img, out, mask)
	for _, v := range out.Pix {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 50.0)
	}
}

// TestInpaint_SingleRow covers grids where no two-point eikonal pairing
// fits and arrivals fall back to the first-order estimate.
func TestInpaint_SingleRow(t *testing.T) {
	img, err := grid.ImageFrom2D([][]float64{{10, 0, 0, 0, 50}})
	require.NoError(t, err)
	mask := rectMask(t, 1, 5, 0, 1, 1, 4)

	out, err := fmm.Inpaint(img, mask, fmm.WithRadius(4))
	require.NoError(t, err)
	for x := 1; x < 4; x++ {
		v := out.At(0, x)[0]
		require.Greater(t, v, 10.0-1e-9)
		require.Less(t, v, 50.0+1e-9)
	}
	assert.Equal(t, 10.0, out.At(0, 0)[0])
	assert.Equal(t, 50.0, out.At(0, 4)[0])
}

// TestInpaintInPlace writes into the given buffer.
func TestInpaintInPlace(t *testing.T) {
	img := constImage(t, 5, 5, 3, 0)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			require.NoError(t, img.Set(y, x, []float64{1, 2, 3}))
		}
	}
	require.NoError(t, img.Set(2, 2, []float64{255, 255, 255}))
	mask := rectMask(t, 5, 5, 2, 2, 3, 3)

	require.NoError(t, fmm.InpaintInPlace(img, mask))
	assert.InDeltaSlice(t, []float64{1, 2, 3}, img.At(2, 2), 1e-9)
}

// TestInpaint_Logger checks the debug diagnostics reach a configured logger.
func TestInpaint_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	img := constImage(t, 8, 8, 1, 5)
	mask := rectMask(t, 8, 8, 2, 2, 4, 4)
	_, err := fmm.Inpaint(img, mask, fmm.WithLogger(logger), fmm.WithRadius(2))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "fmm: start")
	assert.Contains(t, out, "masked=4")
	assert.Contains(t, out, "regions=1")
	assert.Contains(t, out, "fmm: done")
	assert.Contains(t, out, "filled=4")
	assert.Contains(t, out, "radius=2")

	// nil restores the silent logger
	buf.Reset()
	_, err = fmm.Inpaint(img, mask, fmm.WithLogger(logger), fmm.WithLogger(nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
