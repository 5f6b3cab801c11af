package digitize

import (
	"errors"
	"fmt"
	"math"
)

// AxisKind selects the interpolation law of a calibrated axis.
type AxisKind int

const (
	Linear AxisKind = iota
	Logarithmic
)

func (k AxisKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return fmt.Sprintf("AxisKind(%d)", int(k))
	}
}

var (
	// ErrCoincidentAnchors is returned when both calibration anchors map the
	// same pixel coordinate.
	ErrCoincidentAnchors = errors.New("calibration anchors must be distinct pixels")
	// ErrNonPositiveValue is returned when a logarithmic axis is calibrated
	// with a value that is zero or negative.
	ErrNonPositiveValue = errors.New("logarithmic axis requires positive values")
)

// Axis maps one pixel coordinate to physical values and back. It is
// calibrated by two anchor pairs, each a pixel coordinate and the value it
// corresponds to. Linear axes interpolate the values directly; logarithmic
// axes interpolate in log10 space.
type Axis struct {
	kind   AxisKind
	p0, p1 float64
	v0, v1 float64
}

// NewAxis calibrates an axis from two (pixel, value) anchor pairs. The pixel
// anchors must be distinct and, for a logarithmic axis, both values must be
// strictly positive; invalid calibrations are rejected here rather than
// surfacing as NaN or Inf in sampled data later.
func NewAxis(kind AxisKind, pixel0, value0, pixel1, value1 float64) (*Axis, error) {
	if pixel0 == pixel1 {
		return nil, fmt.Errorf("calibrating %s axis: %w", kind, ErrCoincidentAnchors)
	}
	if kind == Logarithmic && (value0 <= 0 || value1 <= 0) {
		return nil, fmt.Errorf("calibrating %s axis: %w", kind, ErrNonPositiveValue)
	}
	return &Axis{
		kind: kind,
		p0:   pixel0,
		p1:   pixel1,
		v0:   value0,
		v1:   value1,
	}, nil
}

// Kind returns the axis's interpolation law.
func (a *Axis) Kind() AxisKind {
	return a.kind
}

// PixelToValue converts a pixel coordinate to the corresponding physical
// value.
func (a *Axis) PixelToValue(pixel float64) float64 {
	u := (pixel - a.p0) / (a.p1 - a.p0)
	if a.kind == Linear {
		return a.v0 + u*(a.v1-a.v0)
	}
	lv0 := math.Log10(a.v0)
	lv1 := math.Log10(a.v1)
	return math.Pow(10, lv0+u*(lv1-lv0))
}

// ValueToPixel converts a physical value to the corresponding pixel
// coordinate. It is the inverse of [Axis.PixelToValue] up to floating-point
// tolerance. On a logarithmic axis, non-positive values yield NaN.
func (a *Axis) ValueToPixel(value float64) float64 {
	if a.kind == Linear {
		if a.v1 == a.v0 {
			return a.p0
		}
		u := (value - a.v0) / (a.v1 - a.v0)
		return a.p0 + u*(a.p1-a.p0)
	}
	if value <= 0 {
		return math.NaN()
	}
	lv0 := math.Log10(a.v0)
	lv1 := math.Log10(a.v1)
	if lv1 == lv0 {
		return a.p0
	}
	u := (math.Log10(value) - lv0) / (lv1 - lv0)
	return a.p0 + u*(a.p1-a.p0)
}
