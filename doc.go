// Package digitize reconstructs tabular data from curves traced over plot
// images.
//
// A curve is traced in pixel space as a [Spline]: an ordered sequence of
// [Knot] control points with per-knot tension and optional explicit tangents.
// Between consecutive knots the spline interpolates with Hermite segments,
// represented internally as cubic Béziers; tangents without an explicit
// override are estimated Catmull-Rom style from the neighboring knots, so
// the curve stays C1 continuous as knots are edited.
//
// An [Axis] calibrates one image dimension: two (pixel, value) anchor pairs
// define a linear or logarithmic mapping between pixel coordinates and the
// plot's physical units. PixelToValue and ValueToPixel are mutual inverses
// up to floating-point tolerance.
//
// Two samplers turn a spline plus two axes into a data table.
// [UniformSample] produces points evenly spaced in the independent variable,
// locating each target by a fixed-resolution scan over the curve parameter
// with ITP refinement. [AdaptiveSample] lets curvature drive point density,
// bisecting parameter intervals until the midpoint-to-chord error falls
// under a pixel tolerance, bounded above and below by point-count limits.
//
// [Dataset] bundles a curve with its axes, stores the last produced table,
// and derives summary statistics and CSV exports from it.
//
// The package performs no I/O beyond writing an export to a caller-supplied
// [io.Writer], holds no state other than the dataset's table, and is not
// safe for concurrent mutation of a single value.
package digitize
