package digitize

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default sampling parameters.
const (
	DefaultNumPoints = 100
	DefaultMaxError  = 1.0
	DefaultMinPoints = 10
	DefaultMaxPoints = 500
)

// scanSteps is the fixed resolution of the nearest-x parameter search used by
// [UniformSample]. The search is a bounded-precision scan rather than a root
// finder so that it stays robust on curves that are not monotonic in x.
const scanSteps = 1000

// Sample is one reconstructed data point, in physical units.
type Sample struct {
	X float64
	Y float64
}

// UniformSample reconstructs numPoints data points evenly spaced in the
// independent variable: evenly in value space on a linear x-axis, evenly in
// log10 space on a logarithmic one. The rows are ordered by ascending target
// x. For each target, the curve parameter whose pixel x lies closest to the
// target's pixel x is located by a fixed-resolution scan; when the scan
// brackets the target, the parameter is refined with [SolveITP]. On curves
// that loop in x, near-equidistant candidates are broken in favor of the
// branch closest in parameter to the previous row.
//
// It returns nil when the spline has fewer than 2 knots.
func UniformSample(s *Spline, xAxis, yAxis *Axis, numPoints int) []Sample {
	segs := s.Segments()
	if len(segs) == 0 || numPoints <= 0 {
		return nil
	}

	// Physical x-range spanned by the knots.
	knots := s.Knots()
	vmin := xAxis.PixelToValue(knots[0].Pos.X)
	vmax := vmin
	for _, k := range knots[1:] {
		v := xAxis.PixelToValue(k.Pos.X)
		vmin = min(vmin, v)
		vmax = max(vmax, v)
	}

	targets := make([]float64, numPoints)
	if numPoints == 1 {
		targets[0] = vmin
	} else if xAxis.Kind() == Logarithmic {
		floats.LogSpan(targets, vmin, vmax)
	} else {
		floats.Span(targets, vmin, vmax)
	}

	// One dense walk of the curve serves all targets.
	ts := make([]float64, scanSteps)
	pts := make([]Point, scanSteps)
	for i := range ts {
		ts[i] = float64(i) / float64(scanSteps-1)
		pts[i] = evalSegments(segs, ts[i])
	}

	const tieEps = 1e-9
	out := make([]Sample, 0, numPoints)
	prev := -1
	for _, target := range targets {
		px := xAxis.ValueToPixel(target)
		if math.IsNaN(px) {
			continue
		}
		best := -1
		bestDist := 0.0
		for i, p := range pts {
			d := math.Abs(p.X - px)
			switch {
			case best < 0 || d < bestDist-tieEps:
				best = i
				bestDist = d
			case d < bestDist+tieEps && prev >= 0 &&
				math.Abs(float64(i-prev)) < math.Abs(float64(best-prev)):
				// Near-tie between loop branches; stay on the branch we
				// selected for the previous target.
				best = i
				bestDist = min(bestDist, d)
			}
		}
		t := refineNearestX(segs, pts, ts, best, px)
		prev = best

		p := evalSegments(segs, t)
		if p.IsNaN() {
			continue
		}
		out = append(out, Sample{
			X: xAxis.PixelToValue(p.X),
			Y: yAxis.PixelToValue(p.Y),
		})
	}
	return out
}

// refineNearestX sharpens the scan's best parameter with the ITP solver when
// the target pixel x is bracketed by one of the neighboring scan steps.
// Otherwise (local extremum of x, or an endpoint) the scan result stands.
func refineNearestX(segs []CubicBez, pts []Point, ts []float64, best int, px float64) float64 {
	fb := pts[best].X - px
	if fb == 0 {
		return ts[best]
	}
	for _, j := range [2]int{best - 1, best + 1} {
		if j < 0 || j >= len(pts) {
			continue
		}
		fj := pts[j].X - px
		if fj == 0 {
			return ts[j]
		}
		if math.Signbit(fj) == math.Signbit(fb) {
			continue
		}
		a, b := ts[best], ts[j]
		ya, yb := fb, fj
		if a > b {
			a, b = b, a
			ya, yb = yb, ya
		}
		f := func(t float64) float64 {
			return evalSegments(segs, t).X - px
		}
		if ya > 0 {
			f2 := func(t float64) float64 { return -f(t) }
			return SolveITP(f2, a, b, (b-a)*1e-3, 1, 0.2/(b-a), -ya, -yb)
		}
		return SolveITP(f, a, b, (b-a)*1e-3, 1, 0.2/(b-a), ya, yb)
	}
	return ts[best]
}

// AdaptiveSample reconstructs data points with density driven by curvature,
// delegating to [Spline.AdaptiveSample] in pixel space and converting every
// point through both axes. Rows follow the curve's trace order, not ascending
// x. maxError is in pixel units.
//
// It returns nil when the spline has fewer than 2 knots.
func AdaptiveSample(s *Spline, xAxis, yAxis *Axis, maxError float64, minPoints, maxPoints int) []Sample {
	pts := s.AdaptiveSample(maxError, minPoints, maxPoints)
	if len(pts) == 0 {
		return nil
	}
	out := make([]Sample, len(pts))
	for i, p := range pts {
		out[i] = Sample{
			X: xAxis.PixelToValue(p.X),
			Y: yAxis.PixelToValue(p.Y),
		}
	}
	return out
}
