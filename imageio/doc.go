// Package imageio converts between image.Image values and the float grids
// of package grid, and reads and writes image files for the fmmfill CLI.
//
// Decoding recognises PNG, JPEG, GIF, BMP, TIFF and WebP; encoding picks
// PNG, JPEG, GIF, BMP or TIFF from the file extension.
//
// Conversions:
//
//   - ToGrid: grey images become 1-channel grids, everything else 3-channel
//     RGB, with samples in [0,255].
//   - FromGrid: 1, 3 or 4 channels back to *image.Gray, *image.RGBA or
//     *image.NRGBA, rounding and clamping each sample.
//   - MaskFromImage: a pixel is masked when its luma exceeds a threshold.
//   - FitMask: nearest-neighbour rescale of a mask image to target bounds.
package imageio
