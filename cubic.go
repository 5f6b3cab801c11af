package digitize

// CubicBez is a cubic Bézier segment. Spline segments are represented as
// cubics: a Hermite segment with endpoints p0, p1 and tangents m0, m1 is the
// cubic with control points p0+m0/3 and p1−m1/3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// CubicFromHermite converts a Hermite segment, given as two endpoints and the
// tangent vectors at them, to the equivalent cubic Bézier.
func CubicFromHermite(p0, p1 Point, m0, m1 Vec2) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Translate(m0.Div(3.0)),
		P2: p1.Translate(m1.Div(3.0).Negate()),
		P3: p1,
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Derivative evaluates the first derivative of the cubic at parameter t.
func (c CubicBez) Derivative(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3.0 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6.0 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return d0.Add(d1).Add(d2)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}
