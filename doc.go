// Package fmmfill removes unwanted regions from images with Fast Marching
// Method inpainting.
//
// 🚀 What is fmmfill?
//
//	A small, pure-Go toolkit that rebuilds masked pixels from the ring of
//	known pixels around them:
//		• grid:    float pixel grids and boolean masks, hole regions, dilation
//		• fmm:     the fast marching inpainting core
//		• imageio: image.Image adapters and file codecs
//		• cmd/fmmfill: command-line front end
//
// Quick example:
//
//	out, err := fmm.Inpaint(img, mask, fmm.WithRadius(5))
//
// Everything is deterministic and single-threaded per call; independent
// images can be filled concurrently.
package fmmfill
