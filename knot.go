package digitize

// DefaultTension is the tension assigned to newly traced knots.
const DefaultTension = 0.5

// defaultTangentMagnitude is the handle length assigned when no better
// estimate is available, in pixels.
const defaultTangentMagnitude = 50.0

// tensionScale converts a knot's tension into a tangent attenuation factor.
// At tension 1 the handles shrink to 20% of their nominal length, pulling the
// curve towards the chords between knots.
const tensionScale = 0.8

// autoMagnitudeRatio scales neighbor distances into handle lengths for
// automatically estimated tangents.
const autoMagnitudeRatio = 0.3

// Tangent is an explicit tangent override at a knot. Angle is the direction
// of the outgoing handle in radians; MagIn and MagOut are the handle lengths
// in pixels. The incoming handle is colinear with the outgoing one unless
// Split is set, in which case AngleIn gives the direction from the knot to
// the incoming handle.
type Tangent struct {
	Angle   float64
	MagIn   float64
	MagOut  float64
	Split   bool
	AngleIn float64
}

// Knot is a control point on a traced curve: a pixel position, a tension in
// [0, 1], and an optional explicit tangent. Without an explicit tangent, the
// tangent is estimated from the neighboring knots during evaluation.
type Knot struct {
	Pos     Point
	Tension float64
	tangent option[Tangent]
}

// NewKnot returns a knot at the given position. The tension is clamped to
// [0, 1].
func NewKnot(pos Point, tension float64) Knot {
	return Knot{
		Pos:     pos,
		Tension: clamp01(tension),
	}
}

// Tangent returns the knot's explicit tangent, if one is set.
func (k Knot) Tangent() (Tangent, bool) {
	return k.tangent.value, k.tangent.isSet
}

// scale returns the tension attenuation applied to the knot's handle lengths.
func (k Knot) scale() float64 {
	return 1.0 - k.Tension*tensionScale
}

// vectors returns the incoming and outgoing tangent vectors implied by an
// explicit tangent, with the knot's tension applied.
func (k Knot) vectors(tg Tangent) (in, out Vec2) {
	s := k.scale()
	out = VecFromAngle(tg.Angle).Mul(tg.MagOut * s)
	if tg.Split {
		// The incoming handle points away from the knot at AngleIn; the
		// curve's incoming tangent points from the handle towards the knot.
		in = VecFromAngle(tg.AngleIn).Negate().Mul(tg.MagIn * s)
	} else {
		in = VecFromAngle(tg.Angle).Mul(tg.MagIn * s)
	}
	return in, out
}

func clamp01(v float64) float64 {
	return min(max(v, 0.0), 1.0)
}
