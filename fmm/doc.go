// Package fmm fills masked image regions with the Fast Marching Method.
//
// 🚀 What is FMM inpainting?
//
//	A wavefront starts on the ring of known pixels around every hole and
//	marches inward in order of increasing arrival distance. Each pixel the
//	front reaches is rebuilt as a weighted mean of the resolved pixels
//	around it, so colours and edges flow in from the hole boundary.
//
// Algorithm outline:
//  1. Flag masked pixels Unknown, the rest Known. Every unmasked 4-neighbour
//     of a masked pixel joins the Band at distance 0.
//  2. Outward pass: march the same front away from the hole on a
//     role-swapped copy of the flags, up to 2×radius, then negate the result.
//     This gives a signed distance field that is smooth across the boundary.
//  3. Main pass: pop the closest Band pixel, mark it Known, and for every
//     Unknown 4-neighbour solve |∇T| = 1, rebuild its value, and queue it.
//
// Reconstruction weights (for a source pixel n of target p, |p−n| ≤ radius):
//
//	direction = |(p−n) · ∇T(p)|        (ε when zero)
//	level     = 1 / (1 + |T(n) − T(p)|)
//	distance  = 1 / |p−n|³
//	weight    = |direction × level × distance|
//
// Options:
//
//   - WithRadius(r):      neighbourhood radius, default DefaultRadius (5).
//   - WithLogger(l):      *slog.Logger for debug diagnostics; silent by default.
//   - WithOnFinalize(fn): called each time the main pass finalizes a pixel.
//
// Errors:
//
//   - ErrNilInput: image or mask is nil.
//   - ErrDimensionMismatch: image and mask extents differ; nothing is written.
//   - ErrBadRadius: radius is not positive.
//   - ErrInvariant: internal invariant violated (no arrival, zero weight).
//
// Degenerate masks are defined no-ops: an all-false mask performs no
// iterations, and an all-true mask has no boundary to seed a band from, so
// the image comes back unchanged in both cases.
//
// Complexity:
//
//   - Time:   O(M·log M + M·r²) for M masked pixels and radius r.
//   - Memory: O(W·H) for flags and distances.
//
// Concurrency: a call owns its state exclusively and the package keeps no
// mutable globals, so independent images may be inpainted concurrently.
package fmm
