package fmm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fmmfill/grid"
)

// stateFromRows builds a single-channel state from a picture of flags:
// 'K' known, 'B' band, 'U' unknown. Distances start unresolved except for
// known and band pixels, which start at 0.
func stateFromRows(t *testing.T, rows []string) *state {
	t.Helper()
	h, w := len(rows), len(rows[0])
	img, err := grid.NewImage(h, w, 1)
	require.NoError(t, err)
	mask, err := grid.NewMask(h, w)
	require.NoError(t, err)
	s := newState(img, mask)
	for y, row := range rows {
		require.Len(t, row, w)
		for x, ch := range row {
			i := s.index(y, x)
			switch ch {
			case 'K':
				s.flags[i], s.dist[i] = known, 0
			case 'B':
				s.flags[i], s.dist[i] = band, 0
			case 'U':
				s.flags[i], s.dist[i] = unknown, noSolution
			default:
				t.Fatalf("bad flag %q at (%d,%d)", ch, y, x)
			}
		}
	}
	return s
}

func (s *state) setDist(y, x int, d float64) { s.dist[s.index(y, x)] = d }
