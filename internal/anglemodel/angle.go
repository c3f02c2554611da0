// Package anglemodel holds the math behind the unit-circle wheel view: the
// mapping from pointer position to angle, from angle to unit-circle
// coordinates, and from angle to display values (degrees, π-multiples,
// quadrant, tangent). All functions are pure; the UI owns the current angle
// and calls back in on every interaction event.
package anglemodel

import (
	"fmt"
	"math"
)

// Angle is a rotation in radians. The range is unconstrained; values outside
// [0, 2π) are fine and are normalized only where display requires it.
type Angle float64

const twoPi = 2 * math.Pi

// cosEps bounds how close cosine may get to zero before the tangent is
// reported as undefined.
const cosEps = 0.001

// FromPointer returns the angle of the ray from the wheel center (cx, cy)
// through the pointer (px, py), normalized into [0, 2π). Screen y grows
// downward, so the vertical delta is flipped before the arctangent. A pointer
// exactly at the center yields 0.
func FromPointer(px, py, cx, cy float64) Angle {
	a := math.Atan2(cy-py, px-cx)
	if a < 0 {
		a += twoPi
	}
	return Angle(a)
}

// FromDegrees converts degrees to an Angle. Any finite value is accepted and
// the result is not clamped or normalized.
func FromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

// Point returns the unit-circle projection (cos θ, sin θ). The angle is not
// normalized first; the trig functions are periodic anyway.
func (a Angle) Point() (x, y float64) {
	return math.Cos(float64(a)), math.Sin(float64(a))
}

// Normalized returns the angle wrapped into [0, 2π), for display.
func (a Angle) Normalized() Angle {
	r := math.Mod(float64(a), twoPi)
	if r < 0 {
		r += twoPi
	}
	return Angle(r)
}

// Degrees returns the angle in degrees rounded to one decimal place, so that
// a value redisplayed after a round trip through text entry does not jitter.
func (a Angle) Degrees() float64 {
	return math.Round(float64(a)*180/math.Pi*10) / 10
}

// RadianLabel formats the angle as a multiple of π with two decimals,
// e.g. π/6 becomes "0.17π".
func (a Angle) RadianLabel() string {
	return fmt.Sprintf("%.2fπ", float64(a)/math.Pi)
}

// Tangent returns sin θ / cos θ. When |cos θ| < 0.001 the tangent is treated
// as undefined and ok is false; callers render that case as a symbol, never
// as a number.
func (a Angle) Tangent() (v float64, ok bool) {
	c := math.Cos(float64(a))
	if math.Abs(c) < cosEps {
		return 0, false
	}
	return math.Sin(float64(a)) / c, true
}

// Quadrant identifies one of the four π/2-wide buckets of [0, 2π). It is
// used to pick a display color and carries no other meaning.
type Quadrant int

const (
	Q1 Quadrant = iota + 1
	Q2
	Q3
	Q4
)

func (q Quadrant) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Quadrant normalizes the angle into [0, 2π) and buckets it into quarters.
// Each boundary angle belongs to the quadrant starting there.
func (a Angle) Quadrant() Quadrant {
	r := float64(a.Normalized())
	switch {
	case r < math.Pi/2:
		return Q1
	case r < math.Pi:
		return Q2
	case r < 3*math.Pi/2:
		return Q3
	default:
		return Q4
	}
}
