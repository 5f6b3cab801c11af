package digitize

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAxisLinear(t *testing.T) {
	a, err := NewAxis(Linear, 0, 0, 200, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.0, a.PixelToValue(0))
	diff(t, 5.0, a.PixelToValue(100))
	diff(t, 10.0, a.PixelToValue(200))
	// Extrapolation beyond the anchors is linear too.
	diff(t, -5.0, a.PixelToValue(-100))
	diff(t, 100.0, a.ValueToPixel(5))
}

func TestAxisLinearReversed(t *testing.T) {
	// y-axes usually run top to bottom in pixel space.
	a, err := NewAxis(Linear, 100, 0, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 10.0, a.PixelToValue(0))
	diff(t, 0.0, a.PixelToValue(100))
	diff(t, 50.0, a.ValueToPixel(5))
}

func TestAxisLogarithmic(t *testing.T) {
	a, err := NewAxis(Logarithmic, 0, 1, 300, 1000)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1.0, a.PixelToValue(0), cmpopts.EquateApprox(1e-9, 0))
	diff(t, 10.0, a.PixelToValue(100), cmpopts.EquateApprox(1e-9, 0))
	diff(t, 100.0, a.PixelToValue(200), cmpopts.EquateApprox(1e-9, 0))
	diff(t, 1000.0, a.PixelToValue(300), cmpopts.EquateApprox(1e-9, 0))
	diff(t, 150.0, a.ValueToPixel(math.Pow(10, 1.5)), cmpopts.EquateApprox(0, 1e-9))

	if px := a.ValueToPixel(0); !math.IsNaN(px) {
		t.Errorf("got %v for non-positive value, want NaN", px)
	}
	if px := a.ValueToPixel(-1); !math.IsNaN(px) {
		t.Errorf("got %v for non-positive value, want NaN", px)
	}
}

func TestAxisRoundTrip(t *testing.T) {
	lin, err := NewAxis(Linear, 37, -4, 512, 12)
	if err != nil {
		t.Fatal(err)
	}
	log, err := NewAxis(Logarithmic, 10, 0.01, 400, 1e4)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []*Axis{lin, log} {
		for px := 10.0; px <= 400.0; px += 7.5 {
			got := a.ValueToPixel(a.PixelToValue(px))
			if math.Abs(got-px) > 1e-9 {
				t.Errorf("%s axis: round-tripping pixel %v yielded %v", a.Kind(), px, got)
			}
		}
	}
}

func TestAxisInvalidCalibration(t *testing.T) {
	if _, err := NewAxis(Logarithmic, 0, 0, 100, 10); !errors.Is(err, ErrNonPositiveValue) {
		t.Errorf("got %v, want ErrNonPositiveValue", err)
	}
	if _, err := NewAxis(Logarithmic, 0, 1, 100, -5); !errors.Is(err, ErrNonPositiveValue) {
		t.Errorf("got %v, want ErrNonPositiveValue", err)
	}
	if _, err := NewAxis(Linear, 50, 0, 50, 10); !errors.Is(err, ErrCoincidentAnchors) {
		t.Errorf("got %v, want ErrCoincidentAnchors", err)
	}
	if _, err := NewAxis(Logarithmic, 50, 1, 50, 10); !errors.Is(err, ErrCoincidentAnchors) {
		t.Errorf("got %v, want ErrCoincidentAnchors", err)
	}
	// Negative values are fine on a linear axis.
	if _, err := NewAxis(Linear, 0, -10, 100, 10); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
