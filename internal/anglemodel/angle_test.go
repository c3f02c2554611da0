package anglemodel

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestFromPointer_CardinalDirections(t *testing.T) {
	const cx, cy = 400.0, 300.0
	tcs := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{name: "right", px: cx + 100, py: cy, want: 0},
		{name: "above", px: cx, py: cy - 100, want: math.Pi / 2},
		{name: "left", px: cx - 100, py: cy, want: math.Pi},
		{name: "below", px: cx, py: cy + 100, want: 3 * math.Pi / 2},
		{name: "upper-left diagonal", px: cx - 100, py: cy - 100, want: 3 * math.Pi / 4},
	}

	for _, tc := range tcs {
		got := float64(FromPointer(tc.px, tc.py, cx, cy))
		if math.Abs(got-tc.want) > eps {
			t.Errorf("FromPointer(%s) = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromPointer_RangeAndCenter(t *testing.T) {
	const cx, cy = 0.0, 0.0
	for deg := 0; deg < 360; deg += 7 {
		rad := float64(deg) * math.Pi / 180
		px := cx + 50*math.Cos(rad)
		py := cy - 50*math.Sin(rad)
		got := float64(FromPointer(px, py, cx, cy))
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("FromPointer at %d° = %v; want within [0, 2π)", deg, got)
		}
		if math.Abs(got-rad) > eps {
			t.Fatalf("FromPointer at %d° = %v; want %v", deg, got, rad)
		}
	}

	if got := FromPointer(cx, cy, cx, cy); got != 0 {
		t.Errorf("FromPointer(center) = %v; want 0", float64(got))
	}
}

func TestPoint(t *testing.T) {
	for _, theta := range []float64{0, 0.5, math.Pi / 2, math.Pi, 4.2, -1.3, 7 * math.Pi} {
		x, y := Angle(theta).Point()
		if math.Abs(x-math.Cos(theta)) > eps || math.Abs(y-math.Sin(theta)) > eps {
			t.Errorf("Angle(%v).Point() = (%v, %v); want (%v, %v)",
				theta, x, y, math.Cos(theta), math.Sin(theta))
		}
	}
}

func TestDegreesRoundTrip(t *testing.T) {
	// One decimal of degrees is ~0.0018 rad of display tolerance.
	const tol = 0.1 * math.Pi / 180
	for theta := 0.0; theta < 2*math.Pi; theta += 0.013 {
		back := float64(FromDegrees(Angle(theta).Degrees()))
		if math.Abs(back-theta) > tol {
			t.Fatalf("round trip of %v through degrees = %v; drift %v exceeds %v",
				theta, back, math.Abs(back-theta), tol)
		}
	}
}

func TestDegreesRounding(t *testing.T) {
	if got := FromDegrees(30).Degrees(); got != 30.0 {
		t.Errorf("FromDegrees(30).Degrees() = %v; want 30", got)
	}
	if got := Angle(1).Degrees(); got != 57.3 {
		t.Errorf("Angle(1).Degrees() = %v; want 57.3", got)
	}
}

func TestRadianLabel(t *testing.T) {
	tcs := []struct {
		angle Angle
		want  string
	}{
		{angle: 0, want: "0.00π"},
		{angle: Angle(math.Pi / 6), want: "0.17π"},
		{angle: Angle(math.Pi), want: "1.00π"},
		{angle: Angle(3 * math.Pi / 2), want: "1.50π"},
	}
	for _, tc := range tcs {
		if got := tc.angle.RadianLabel(); got != tc.want {
			t.Errorf("Angle(%v).RadianLabel() = %q; want %q", float64(tc.angle), got, tc.want)
		}
	}
}

func TestQuadrant_Boundaries(t *testing.T) {
	tcs := []struct {
		angle Angle
		want  Quadrant
	}{
		{angle: 0, want: Q1},
		{angle: Angle(math.Pi / 4), want: Q1},
		{angle: Angle(math.Pi / 2), want: Q2},
		{angle: Angle(3 * math.Pi / 4), want: Q2},
		{angle: Angle(math.Pi), want: Q3},
		{angle: Angle(5 * math.Pi / 4), want: Q3},
		{angle: Angle(3 * math.Pi / 2), want: Q4},
		{angle: Angle(7 * math.Pi / 4), want: Q4},
		{angle: Angle(-math.Pi / 4), want: Q4},
	}
	for _, tc := range tcs {
		if got := tc.angle.Quadrant(); got != tc.want {
			t.Errorf("Angle(%v).Quadrant() = %v; want %v", float64(tc.angle), got, tc.want)
		}
	}
}

func TestQuadrant_LargeMagnitudeAngles(t *testing.T) {
	// Degree entry accepts any finite value, so quadrant classification must
	// stay O(1) far outside one revolution in either direction.
	tcs := []struct {
		angle Angle
		want  Quadrant
	}{
		{angle: Angle(-9 * math.Pi / 4), want: Q4},
		{angle: Angle(9 * math.Pi / 4), want: Q1},
	}
	for _, tc := range tcs {
		if got := tc.angle.Quadrant(); got != tc.want {
			t.Errorf("Angle(%v).Quadrant() = %v; want %v", float64(tc.angle), got, tc.want)
		}
	}
	for _, a := range []Angle{-1e18, 1e18, -1e300, 1e300, FromDegrees(-1e20)} {
		q := a.Quadrant()
		if q < Q1 || q > Q4 {
			t.Errorf("Angle(%v).Quadrant() = %v; outside Q1..Q4", float64(a), q)
		}
	}
}

func TestNormalized(t *testing.T) {
	tcs := []struct {
		angle Angle
		want  float64
	}{
		{angle: 0, want: 0},
		{angle: Angle(math.Pi / 3), want: math.Pi / 3},
		{angle: Angle(2 * math.Pi), want: 0},
		{angle: Angle(-math.Pi / 2), want: 3 * math.Pi / 2},
		{angle: Angle(5 * math.Pi), want: math.Pi},
	}
	for _, tc := range tcs {
		got := float64(tc.angle.Normalized())
		if math.Abs(got-tc.want) > eps {
			t.Errorf("Angle(%v).Normalized() = %v; want %v", float64(tc.angle), got, tc.want)
		}
	}

	for _, theta := range []float64{-1e18, 1e18, -47.3, 912.4} {
		n := float64(Angle(theta).Normalized())
		if n < 0 || n >= 2*math.Pi {
			t.Fatalf("Angle(%v).Normalized() = %v; want within [0, 2π)", theta, n)
		}
	}
}

func TestQuadrant_PartitionsFullCircle(t *testing.T) {
	// Sweeping [0, 2π) must hit each quadrant in order with no gaps.
	prev := Q1
	for theta := 0.0; theta < 2*math.Pi; theta += 0.001 {
		q := Angle(theta).Quadrant()
		if q < Q1 || q > Q4 {
			t.Fatalf("Angle(%v).Quadrant() = %v; outside Q1..Q4", theta, q)
		}
		if q < prev {
			t.Fatalf("quadrant went backwards at %v: %v after %v", theta, q, prev)
		}
		prev = q
	}
}

func TestTangent(t *testing.T) {
	if v, ok := Angle(math.Pi / 4).Tangent(); !ok || math.Abs(v-1) > eps {
		t.Errorf("Tangent(π/4) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := Angle(0).Tangent(); !ok || v != 0 {
		t.Errorf("Tangent(0) = %v, %v; want 0, true", v, ok)
	}

	// Undefined exactly when |cos θ| < 0.001.
	for _, theta := range []float64{math.Pi / 2, 3 * math.Pi / 2, math.Pi/2 + 0.0005} {
		if _, ok := Angle(theta).Tangent(); ok {
			t.Errorf("Tangent(%v) defined; want undefined (|cos| = %v)", theta, math.Abs(math.Cos(theta)))
		}
	}
	for _, theta := range []float64{math.Pi/2 + 0.01, math.Pi/2 - 0.01, 0.3} {
		if _, ok := Angle(theta).Tangent(); !ok {
			t.Errorf("Tangent(%v) undefined; want defined (|cos| = %v)", theta, math.Abs(math.Cos(theta)))
		}
	}
}

func TestQuadrantString(t *testing.T) {
	if got := Q3.String(); got != "Q3" {
		t.Errorf("Q3.String() = %q; want %q", got, "Q3")
	}
}
