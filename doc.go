// Package poly is a 2D polygon geometry toolkit for game and UI engines.
//
// # Overview
//
// The unit of exchange is [Polygon]: a vertex list, an index buffer and a
// [GeometryKind] that says how to read the indices. Every component takes
// and returns Polygon values and copies its input, so results never alias
// caller buffers.
//
// # Quick Start
//
//	import "github.com/gogpu/poly"
//
//	pts := []poly.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
//
//	// Stroke the path
//	e := poly.NewExtruder(poly.WithJoint(poly.JointRound), poly.WithCap(poly.CapSquare))
//	e.Set(pts, false)
//	if err := e.Calculate(8); err != nil {
//	    log.Fatal(err)
//	}
//	stroke := e.Polygon() // Solid geometry, ready for a triangle list
//
// # Components
//
//   - GeometryKind: classifies index buffers (Categorize, Matches) and
//     builds canonical ones (Index), triangulating for Solid.
//   - Boundaries and Exterior: recover the outline loops and boundary
//     vertices of a triangle mesh.
//   - Simplifier: Douglas-Peucker path reduction.
//   - Extruder: fast stroking with overlapping joint triangles.
//   - RobustExtruder: overlap-free stroking through a boolean union on an
//     integer grid, triangulated with holes.
//   - Traverse: wireframe index buffers for outlines and triangle edges.
//
// # Coordinate System
//
// Coordinates are plain float64 values with no unit. Orientation words
// (left, counter-clockwise) assume Y grows upward; with Y down they mirror.
//
// # Concurrency
//
// Components are synchronous and keep no shared state, but an individual
// Extruder, RobustExtruder or Simplifier must not be used from several
// goroutines at once. Use one instance per goroutine, or check instances
// out of a [Pool]. [Pool.StrokeAll] strokes the polylines of a [PathSet]
// on several goroutines.
//
// # Logging
//
// poly is silent by default. Call [SetLogger] to receive debug records with
// buffer sizes and warnings about recovered failures.
package poly
