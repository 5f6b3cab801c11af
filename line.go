package digitize

// Line represents a line segment, used as the chord model during adaptive
// sampling.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point on the
// line segment, along with the parameter of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Hypot2()
	if dotp <= 0.0 {
		return pt.DistanceSquared(l.P0), 0.0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), 1.0
	} else {
		t := dotp / dSquared
		return pt.DistanceSquared(l.Eval(t)), t
	}
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}
