// Package grid holds the rectangular pixel and mask grids consumed by the
// fmm inpainting core.
//
// What:
//
//   - Image is an H×W×C grid of float64 samples stored row-major.
//   - Mask is an H×W grid of booleans; true marks a pixel to reconstruct.
//   - Mask.Regions finds the connected holes of a mask (Conn4 or Conn8).
//   - Mask.Dilate grows a mask by whole pixel rings.
//
// Why:
//
//   - A flat backing slice with bounds-checked accessors keeps every stage of
//     the fast marching pass working on one allocation per grid.
//   - Decoding from files lives elsewhere (package imageio); this package only
//     knows about already-decoded numbers.
//
// Complexity:
//
//   - NewImage, NewMask, Clone:  O(W×H×C) time and memory.
//   - Regions:                   O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Dilate:                    O(steps×W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrChannels: channel count is not positive or differs between pixels.
//   - ErrOutOfRange: a Set targets a coordinate outside the grid.
package grid
