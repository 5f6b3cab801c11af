package digitize

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}

	distSq, ts := l.Nearest(Pt(5, 3))
	if distSq != 9 {
		t.Errorf("got squared distance %v, want 9", distSq)
	}
	if ts != 0.5 {
		t.Errorf("got t %v, want 0.5", ts)
	}

	// Beyond the end the nearest point is the endpoint.
	distSq, ts = l.Nearest(Pt(14, 3))
	if distSq != 25 {
		t.Errorf("got squared distance %v, want 25", distSq)
	}
	if ts != 1 {
		t.Errorf("got t %v, want 1", ts)
	}
}
