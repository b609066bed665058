// Package triangulate converts simple polygons, optionally with holes, into
// triangle index lists.
//
// # Algorithm
//
// The triangulator is an ear clipper over a doubly linked vertex ring:
//
//  1. The outer ring is linked counter-clockwise, holes clockwise.
//  2. Each hole is joined to the outer ring through a bridge found by casting
//     a ray left from the hole's leftmost vertex. The bridge duplicates two
//     ring nodes but both copies keep the original vertex index, so the
//     emitted triangles reference the caller's numbering.
//  3. Ears are clipped until the ring is exhausted. When no ear is found the
//     ring is filtered (duplicates and collinear points removed), then small
//     self-intersections are cured, then the ring is split along a valid
//     diagonal and each half is clipped independently.
//
// Indices number the outer ring first and each hole after it, in order.
// Output triangles are never degenerate in index terms: no triangle repeats
// a vertex index.
package triangulate
