package quadric

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Params holds the geometric parameters of a quadric surface. A, B and C
// are the semi-axis lengths paired with x, y and z; H, K and L translate
// the center; P scales parabolic cylinders and is ignored elsewhere.
//
// Params is a plain value constructed once per plot request and never
// mutated. Validate rejects out-of-range values before generation; the
// generator itself assumes valid input.
type Params struct {
	A, B, C float64
	P       float64
	H, K, L float64
}

// Center returns the center offset (h, k, l) as a point.
func (p Params) Center() r3.Vec {
	return r3.Vec{X: p.H, Y: p.K, Z: p.L}
}

// Validate returns a descriptive error if any semi-axis is not strictly
// positive or any field is not a finite number.
func (p Params) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"a", p.A}, {"b", p.B}, {"c", p.C},
		{"p", p.P}, {"h", p.H}, {"k", p.K}, {"l", p.L},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("parameter %s is not a finite number", f.name)
		}
	}
	switch {
	case p.A <= 0:
		return fmt.Errorf("parameter a must be greater than 0, got %g", p.A)
	case p.B <= 0:
		return fmt.Errorf("parameter b must be greater than 0, got %g", p.B)
	case p.C <= 0:
		return fmt.Errorf("parameter c must be greater than 0, got %g", p.C)
	}
	return nil
}

// ValidateParabolic is Validate plus the parabolic cylinder requirement
// that the parabola scale p be strictly positive.
func (p Params) ValidateParabolic() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.P <= 0 {
		return fmt.Errorf("parameter p must be greater than 0, got %g", p.P)
	}
	return nil
}

// Range is a closed sampling interval.
type Range struct {
	Min, Max float64
}

// Validate returns an error unless Min < Max and both bounds are finite.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range bounds must be finite numbers")
	}
	if r.Min >= r.Max {
		return fmt.Errorf("range minimum %g must be less than maximum %g", r.Min, r.Max)
	}
	return nil
}

// linspace samples r at n evenly spaced points including both endpoints.
func (r Range) linspace(n int) []float64 {
	v := make([]float64, n)
	step := (r.Max - r.Min) / float64(n-1)
	for i := range v {
		v[i] = r.Min + float64(i)*step
	}
	v[n-1] = r.Max
	return v
}

// RandomParams returns a randomized, always valid parameter set: semi-axes
// in [1, 10), parabola scale in [0.5, 5), rounded to two decimals. The
// center is left at the origin.
func RandomParams(rnd *rand.Rand) Params {
	round2 := func(v float64) float64 { return math.Round(v*100) / 100 }
	return Params{
		A: round2(1 + 9*rnd.Float64()),
		B: round2(1 + 9*rnd.Float64()),
		C: round2(1 + 9*rnd.Float64()),
		P: round2(0.5 + 4.5*rnd.Float64()),
	}
}
