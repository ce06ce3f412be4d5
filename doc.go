// Package centroid computes the centroid of planar shapes whose outlines are
// made of cubic Bézier segments, such as the paths of an SVG document.
//
// # Boundaries
//
// A shape is described by one or more [Boundary] values. A boundary is a loop
// of [CubicBez] segments; straight lines and quadratic Béziers are represented
// as cubics (see [Line.Cubic] and [QuadBez.Raise]). A boundary is closed if its
// last segment ends exactly where its first one starts. No tolerance is
// applied, so closure is decided the same way regardless of scale.
//
// [ParseSVG] decodes SVG path data into a [BezPath], and [BezPath.Boundaries]
// splits it into one boundary per subpath.
//
// # Linearization and moments
//
// [Boundary.Linearize] approximates a closed boundary by a [Polyline],
// sampling every segment at evenly spaced parameters ([CubicBez.Sample]).
// [Polyline.Moments] then computes the signed area with the shoelace formula
// and the centroid from the discretized first moments. The sign of the area
// reflects the direction of traversal and is positive for counter-clockwise
// boundaries in a y-up coordinate system.
//
// Sampling converges quadratically: doubling the number of samples roughly
// quarters the error in area and centroid. [Boundary.SignedArea] computes the
// exact area of the cubics for comparison.
//
// # Compound shapes
//
// [Compose] combines the moments of several boundaries. The boundary with the
// largest absolute area is taken to be the outer boundary, all others are
// holes, and the centroid is the area-weighted difference. Only the magnitudes
// of the areas enter the weights, so holes don't need a particular winding
// direction. Compose trusts its input: holes are assumed to lie inside the
// outer boundary and boundaries are assumed not to intersect.
//
// [Compute] runs the whole pipeline, skipping boundaries that aren't closed or
// have no area, and can optionally verify that the holes are nested inside the
// outer boundary.
//
// # Errors
//
// Errors returned by this package match one of the Err* sentinels with
// [errors.Is]. Errors concerning a single boundary out of several are wrapped
// in a [BoundaryError].
//
// # Literature
//
//   - [Calculating the area and centroid of a polygon] by Paul Bourke
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Green's theorem]
//   - [SVG implementation notes on elliptical arcs]
//
// [Calculating the area and centroid of a polygon]: https://paulbourke.net/geometry/polygonmesh/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package centroid
