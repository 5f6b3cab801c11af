package digitize

import (
	"math"
	"slices"
)

// Spline is an ordered sequence of knots interpolated by Hermite segments.
// Knots are kept in trace order along the curve, not sorted by coordinate;
// curves may loop or double back in either axis.
//
// The parameter t ∈ [0, 1] is partitioned uniformly across the segments
// between consecutive knots, not by arc length. Tangents are recomputed from
// the current knots on every evaluation, so mutating the spline never leaves
// stale curve state behind.
type Spline struct {
	knots []Knot
}

// HandleSide selects one of a knot's two tangent handles.
type HandleSide int

const (
	HandleIn HandleSide = iota
	HandleOut
)

func NewSpline() *Spline {
	return &Spline{}
}

// Len returns the number of knots.
func (s *Spline) Len() int {
	return len(s.knots)
}

// Knot returns the i-th knot in trace order.
func (s *Spline) Knot(i int) Knot {
	return s.knots[i]
}

// Knots returns a copy of the knot sequence.
func (s *Spline) Knots() []Knot {
	return slices.Clone(s.knots)
}

// Add appends a knot to the end of the trace.
func (s *Spline) Add(k Knot) {
	s.knots = append(s.knots, k)
}

// Insert inserts a knot before position i in the trace.
func (s *Spline) Insert(i int, k Knot) {
	s.knots = slices.Insert(s.knots, i, k)
}

// Remove deletes the i-th knot.
func (s *Spline) Remove(i int) {
	s.knots = slices.Delete(s.knots, i, i+1)
}

// Move repositions the i-th knot. Handles move with the knot, as their
// positions are derived from the knot's tangent.
func (s *Spline) Move(i int, pos Point) {
	s.knots[i].Pos = pos
}

// SetTension sets the i-th knot's tension, clamped to [0, 1].
func (s *Spline) SetTension(i int, tension float64) {
	s.knots[i].Tension = clamp01(tension)
}

// SetTangent sets an explicit tangent on the i-th knot, overriding the
// automatic estimate. Handle magnitudes are kept at 1 pixel or more.
func (s *Spline) SetTangent(i int, tg Tangent) {
	tg.MagIn = max(tg.MagIn, 1.0)
	tg.MagOut = max(tg.MagOut, 1.0)
	s.knots[i].tangent.set(tg)
}

// ClearTangent reverts the i-th knot to an automatically estimated tangent.
func (s *Spline) ClearTangent(i int) {
	s.knots[i].tangent.clear()
}

// Tangent returns the i-th knot's explicit tangent, if one is set.
func (s *Spline) Tangent(i int) (Tangent, bool) {
	return s.knots[i].Tangent()
}

// SetHandle updates the i-th knot's tangent from a dragged handle position.
// Dragging either handle pins the tangent, replacing the automatic estimate.
// Unless the tangent is split, the two handles stay colinear: dragging one
// reorients the other.
func (s *Spline) SetHandle(i int, side HandleSide, pt Point) {
	k := &s.knots[i]
	tg, ok := k.Tangent()
	if !ok {
		tg = s.autoTangent(i)
	}
	d := pt.Sub(k.Pos)
	mag := d.Hypot()
	switch side {
	case HandleOut:
		tg.MagOut = max(mag, 1.0)
		if mag > 0 {
			tg.Angle = d.Angle()
		}
	case HandleIn:
		tg.MagIn = max(mag, 1.0)
		if mag > 0 {
			if tg.Split {
				tg.AngleIn = d.Angle()
			} else {
				tg.Angle = d.Negate().Angle()
			}
		}
	}
	k.tangent.set(tg)
}

// Handles returns the pixel positions of the i-th knot's incoming and
// outgoing tangent handles, with the knot's tension applied.
func (s *Spline) Handles(i int) (in, out Point) {
	k := s.knots[i]
	tg, ok := k.Tangent()
	if !ok {
		tg = s.autoTangent(i)
	}
	sc := k.scale()
	out = k.Pos.Translate(VecFromAngle(tg.Angle).Mul(tg.MagOut * sc))
	if tg.Split {
		in = k.Pos.Translate(VecFromAngle(tg.AngleIn).Mul(tg.MagIn * sc))
	} else {
		in = k.Pos.Translate(VecFromAngle(tg.Angle).Mul(tg.MagIn * sc).Negate())
	}
	return in, out
}

// autoTangent estimates the tangent at knot i from its neighbors, in the
// manner of Catmull-Rom: the direction follows the chord between the previous
// and next knots, and the handle lengths follow the neighbor distances.
func (s *Spline) autoTangent(i int) Tangent {
	n := len(s.knots)
	k := s.knots[i]
	switch {
	case n == 1:
		return Tangent{
			MagIn:  defaultTangentMagnitude,
			MagOut: defaultTangentMagnitude,
		}
	case i == 0:
		d := s.knots[1].Pos.Sub(k.Pos)
		mag := d.Hypot() * autoMagnitudeRatio
		return Tangent{Angle: d.Angle(), MagIn: mag, MagOut: mag}
	case i == n-1:
		d := k.Pos.Sub(s.knots[n-2].Pos)
		mag := d.Hypot() * autoMagnitudeRatio
		return Tangent{Angle: d.Angle(), MagIn: mag, MagOut: mag}
	default:
		prev, next := s.knots[i-1], s.knots[i+1]
		d := next.Pos.Sub(prev.Pos)
		if math.Abs(d.X) > 1e-3 {
			return Tangent{
				Angle:  d.Angle(),
				MagIn:  k.Pos.Distance(prev.Pos) * autoMagnitudeRatio,
				MagOut: next.Pos.Distance(k.Pos) * autoMagnitudeRatio,
			}
		}
		// Near-vertical chord; fall back to a vertical tangent.
		angle := math.Pi / 2
		if d.Y <= 0 {
			angle = -math.Pi / 2
		}
		return Tangent{
			Angle:  angle,
			MagIn:  defaultTangentMagnitude,
			MagOut: defaultTangentMagnitude,
		}
	}
}

// Segments converts the knot sequence to cubic Bézier segments, one per pair
// of consecutive knots. It returns nil with fewer than 2 knots.
func (s *Spline) Segments() []CubicBez {
	n := len(s.knots)
	if n < 2 {
		return nil
	}
	ins := make([]Vec2, n)
	outs := make([]Vec2, n)
	for i, k := range s.knots {
		tg, ok := k.Tangent()
		if !ok {
			tg = s.autoTangent(i)
		}
		ins[i], outs[i] = k.vectors(tg)
	}
	segs := make([]CubicBez, n-1)
	for i := range segs {
		segs[i] = CubicFromHermite(s.knots[i].Pos, s.knots[i+1].Pos, outs[i], ins[i+1])
	}
	return segs
}

// Eval evaluates the spline at parameter t ∈ [0, 1]. It reports false when
// the spline has fewer than 2 knots and thus no geometry. Parameters outside
// [0, 1] are clamped.
func (s *Spline) Eval(t float64) (Point, bool) {
	segs := s.Segments()
	if len(segs) == 0 {
		return Point{}, false
	}
	return evalSegments(segs, t), true
}

func evalSegments(segs []CubicBez, t float64) Point {
	if t <= 0 {
		return segs[0].Start()
	}
	if t >= 1 {
		return segs[len(segs)-1].End()
	}
	n := len(segs)
	i := min(int(t*float64(n)), n-1)
	local := t*float64(n) - float64(i)
	return segs[i].Eval(local)
}

// Sample evaluates the spline at numPoints uniformly spaced parameter values.
// It returns nil with fewer than 2 knots.
func (s *Spline) Sample(numPoints int) []Point {
	segs := s.Segments()
	if len(segs) == 0 || numPoints <= 0 {
		return nil
	}
	pts := make([]Point, numPoints)
	if numPoints == 1 {
		pts[0] = segs[0].Start()
		return pts
	}
	for i := range pts {
		t := float64(i) / float64(numPoints-1)
		pts[i] = evalSegments(segs, t)
	}
	return pts
}

// AdaptiveSample samples the spline in pixel space with point density driven
// by curvature. Starting from the segment boundaries, each parameter interval
// is bisected while the perpendicular distance from the interval's midpoint
// on the curve to the chord between its endpoints exceeds maxError pixels.
// The result always has at least minPoints points, forced by bisecting the
// largest parameter gap on near-straight curves, and never more than
// maxPoints, even if the error threshold is still exceeded.
//
// It returns nil with fewer than 2 knots.
func (s *Spline) AdaptiveSample(maxError float64, minPoints, maxPoints int) []Point {
	segs := s.Segments()
	if len(segs) == 0 {
		return nil
	}
	maxPoints = max(maxPoints, 2)
	minPoints = min(max(minPoints, 2), maxPoints)

	// Seed at the segment boundaries; with more segments than the point
	// budget allows, seed uniformly instead.
	var ts []float64
	var pts []Point
	if len(segs)+1 <= maxPoints {
		ts = make([]float64, len(segs)+1)
		pts = make([]Point, len(segs)+1)
		for i := range segs {
			ts[i] = float64(i) / float64(len(segs))
			pts[i] = segs[i].Start()
		}
		ts[len(segs)] = 1.0
		pts[len(segs)] = segs[len(segs)-1].End()
	} else {
		ts = make([]float64, maxPoints)
		pts = make([]Point, maxPoints)
		for i := range ts {
			ts[i] = float64(i) / float64(maxPoints-1)
			pts[i] = evalSegments(segs, ts[i])
		}
	}

	maxErrSq := maxError * maxError
	for i := 0; i < len(ts)-1 && len(ts) < maxPoints; {
		tm := 0.5 * (ts[i] + ts[i+1])
		pm := evalSegments(segs, tm)
		distSq, _ := Line{pts[i], pts[i+1]}.Nearest(pm)
		if distSq > maxErrSq {
			ts = slices.Insert(ts, i+1, tm)
			pts = slices.Insert(pts, i+1, pm)
		} else {
			i++
		}
	}

	// Force the floor on curves flat enough that refinement stopped early.
	for len(ts) < minPoints {
		widest := 0
		for i := 1; i < len(ts)-1; i++ {
			if ts[i+1]-ts[i] > ts[widest+1]-ts[widest] {
				widest = i
			}
		}
		tm := 0.5 * (ts[widest] + ts[widest+1])
		ts = slices.Insert(ts, widest+1, tm)
		pts = slices.Insert(pts, widest+1, evalSegments(segs, tm))
	}
	return pts
}
