// Package wavemodel holds the math behind the wave plotter view: sampling of
// the transformed sine y = A·sin(ωx + φπ) + k against the reference sin(x),
// π-relative axis labels and the equation caption. Everything is recomputed
// from the current parameters on each call; there is no incremental state.
package wavemodel

import (
	"fmt"
	"math"
)

// Params are the four wave parameters. No combination of finite values is
// invalid; zero amplitude or frequency simply produces a flat line.
type Params struct {
	A     float64 // amplitude
	Omega float64 // angular frequency
	Phi   float64 // phase, as a multiple of π
	K     float64 // vertical offset
}

// DefaultParams returns the parameters the plot resets to: plain sin(x).
func DefaultParams() Params {
	return Params{A: 1, Omega: 1}
}

// Default sampling domain: two full periods of the reference sine on each
// side of the origin.
const (
	DomainStart = -2 * math.Pi
	DomainEnd   = 2 * math.Pi
	Steps       = 200
)

// Point is one plot sample: the transformed wave and the reference sin(x)
// evaluated at the same x.
type Point struct {
	X    float64
	Y    float64
	RefY float64
}

// Eval returns A·sin(ωx + φπ) + k at x.
func Eval(p Params, x float64) float64 {
	return p.A*math.Sin(p.Omega*x+p.Phi*math.Pi) + p.K
}

// Sample evaluates the wave and the reference sine over [start, end] in
// steps equal increments, producing steps+1 points. Values are rounded to
// three decimals so a redrawn plot does not jitter between refreshes.
func Sample(p Params, start, end float64, steps int) []Point {
	dx := (end - start) / float64(steps)
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		x := start + float64(i)*dx
		pts = append(pts, Point{
			X:    x,
			Y:    round3(Eval(p, x)),
			RefY: round3(math.Sin(x)),
		})
	}
	return pts
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// tickEps is the tolerance for recognizing an axis position as a named
// multiple of π.
const tickEps = 0.01

// AxisTickLabel labels an axis position relative to π. The named multiples
// are checked most-specific first; anything else falls back to a decimal
// coefficient of π.
func AxisTickLabel(x float64) string {
	near := func(target float64) bool {
		return math.Abs(x-target) < tickEps
	}
	switch {
	case near(0):
		return "0"
	case near(math.Pi):
		return "π"
	case near(-math.Pi):
		return "-π"
	case near(2 * math.Pi):
		return "2π"
	case near(-2 * math.Pi):
		return "-2π"
	case near(math.Pi / 2):
		return "π/2"
	case near(-math.Pi / 2):
		return "-π/2"
	}
	return fmt.Sprintf("%.1fπ", x/math.Pi)
}

// Describe renders the equation with the current parameter values, for use
// as the running plot caption.
func Describe(p Params) string {
	return fmt.Sprintf("y = %g sin(%gx + %gπ) + %g", p.A, p.Omega, p.Phi, p.K)
}
