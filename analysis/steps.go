package analysis

import (
	"fmt"

	"github.com/soypat/quadric"
)

// stepTerm renders a normalized squared axis term with three decimal
// places, the precision used throughout the computation narrative.
func stepTerm(ax quadric.Axis, p quadric.Params) string {
	return fmt.Sprintf("(%s-%.3f)²/%.3f²", ax.Name(), ax.Offset(p), ax.Semi(p))
}

// computationSteps narrates exactly what the generator computes for s,
// with the numeric coefficients substituted. The wording tracks the
// generator's per-family algorithm; changing one requires changing the
// other.
func computationSteps(s quadric.Surface) []string {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	switch s.Type {
	case quadric.Ellipsoid:
		return []string{
			"Method: Parametric representation using spherical coordinates",
			"Steps:",
			"  1. Set φ ∈ [0, 2π] (azimuthal angle)",
			"  2. Set θ ∈ [0, π] (polar angle)",
			fmt.Sprintf("  3. Compute: x = %.3f·sin(θ)·cos(φ) + %.3f", p.A, p.H),
			fmt.Sprintf("  4. Compute: y = %.3f·sin(θ)·sin(φ) + %.3f", p.B, p.K),
			fmt.Sprintf("  5. Compute: z = %.3f·cos(θ) + %.3f", p.C, p.L),
			"  6. Evaluate the surface over the (θ, φ) grid",
		}
	case quadric.EllipticCone:
		return solvedSteps(s, "cone equation",
			fmt.Sprintf("r² = %s + %s", stepTerm(u, p), stepTerm(v, p)),
			"  5. Keep both branches, which meet at the vertex")
	case quadric.HyperboloidOneSheet:
		return solvedSteps(s, "hyperboloid equation",
			fmt.Sprintf("r² = %s + %s - 1", stepTerm(u, p), stepTerm(v, p)),
			"  5. Keep both branches, masking samples where r² < 0 (the waist)")
	case quadric.HyperboloidTwoSheets:
		return solvedSteps(s, "two-sheet hyperboloid equation",
			fmt.Sprintf("r² = 1 + %s + %s", stepTerm(u, p), stepTerm(v, p)),
			"  5. Keep both disconnected sheets (r² is never below 1)")
	case quadric.EllipticParaboloid:
		return []string{
			"Method: Direct computation from the paraboloid equation",
			"Steps:",
			fmt.Sprintf("  1. Create a grid over %s and %s", u.Name(), v.Name()),
			fmt.Sprintf("  2. Calculate: s = %s", stepTerm(u, p)),
			fmt.Sprintf("  3. Calculate: t = %s", stepTerm(v, p)),
			fmt.Sprintf("  4. Compute: %s = %.3f·(s + t) + %.3f", w.Name(), w.Semi(p), w.Offset(p)),
			fmt.Sprintf("  5. The bowl opens along the %s", s.Orientation),
		}
	case quadric.HyperbolicParaboloid:
		return []string{
			"Method: Direct computation (saddle surface)",
			"Steps:",
			fmt.Sprintf("  1. Create a grid over %s and %s", u.Name(), v.Name()),
			fmt.Sprintf("  2. Calculate: s = %s", stepTerm(u, p)),
			fmt.Sprintf("  3. Calculate: t = %s", stepTerm(v, p)),
			fmt.Sprintf("  4. Compute: %s = %.3f·(t - s) + %.3f", w.Name(), w.Semi(p), w.Offset(p)),
			"  5. Evaluate the saddle over the grid",
		}
	case quadric.Cylinder:
		return cylinderSteps(s, u, v, w)
	}
	panic("analysis: no computation method for surface")
}

// solvedSteps is the shared narrative of the three families solved
// explicitly for the principal axis as a ± branch pair.
func solvedSteps(s quadric.Surface, name, radicand, closing string) []string {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	return []string{
		fmt.Sprintf("Method: Solve for %s from the %s", w.Name(), name),
		"Steps:",
		fmt.Sprintf("  1. Create a grid over %s and %s", u.Name(), v.Name()),
		"  2. Calculate: " + radicand,
		fmt.Sprintf("  3. Compute: %s₊ = %.3f·√(r²) + %.3f", w.Name(), w.Semi(p), w.Offset(p)),
		fmt.Sprintf("  4. Compute: %s₋ = -%.3f·√(r²) + %.3f", w.Name(), w.Semi(p), w.Offset(p)),
		closing,
	}
}

func cylinderSteps(s quadric.Surface, u, v, w quadric.Axis) []string {
	p := s.Params
	switch s.Kind {
	case quadric.Elliptic:
		return []string{
			"Method: Parametric cylindrical representation",
			"Steps:",
			"  1. Set θ ∈ [0, 2π] (angular parameter)",
			fmt.Sprintf("  2. Sample %s over a fixed ±10 extent (the surface is unbounded)", w.Name()),
			fmt.Sprintf("  3. Compute: %s = %.3f·cos(θ) + %.3f", u.Name(), u.Semi(p), u.Offset(p)),
			fmt.Sprintf("  4. Compute: %s = %.3f·sin(θ) + %.3f", v.Name(), v.Semi(p), v.Offset(p)),
			fmt.Sprintf("  5. %s varies freely along the axis", w.Name()),
		}
	case quadric.Hyperbolic:
		return []string{
			"Method: Hyperbolic parametrization (cosh/sinh branches)",
			"Steps:",
			"  1. Set t ∈ [-2, 2] (hyperbolic parameter)",
			fmt.Sprintf("  2. Sample %s over a fixed ±10 extent", w.Name()),
			fmt.Sprintf("  3. Compute: %s = ±%.3f·cosh(t) + %.3f", u.Name(), u.Semi(p), u.Offset(p)),
			fmt.Sprintf("  4. Compute: %s = ±%.3f·sinh(t) + %.3f", v.Name(), v.Semi(p), v.Offset(p)),
			"  5. Keep both branches; cosh/sinh are defined everywhere",
		}
	case quadric.Parabolic:
		return []string{
			"Method: Solve one transverse coordinate from the other",
			"Steps:",
			fmt.Sprintf("  1. Sample %s over [%.3f, %.3f]", v.Name(), v.Offset(p)-3, v.Offset(p)+3),
			fmt.Sprintf("  2. Sample %s over a fixed ±10 extent", w.Name()),
			fmt.Sprintf("  3. Compute: %s = (%s-%.3f)²/(4·%.3f) + %.3f",
				u.Name(), v.Name(), v.Offset(p), p.P, u.Offset(p)),
			fmt.Sprintf("  4. %s varies freely along the axis", w.Name()),
		}
	}
	panic("analysis: unknown cylinder kind")
}
