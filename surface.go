package quadric

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Generate samples the surface on a structured grid of res×res points.
// domain bounds the two free Cartesian coordinates of the solved families
// (cone, hyperboloids) and of the paraboloids; parametric families
// (ellipsoid, cylinders) use their natural parameter domains and a fixed
// axial extent where the surface is unbounded.
//
// Generate assumes parameters already validated at the input boundary: it
// panics on resolution < 2, an inverted domain or an unknown family, all
// of which are programmer errors. Samples where the solved coordinate has
// no real value are masked, never reported as errors.
func (s Surface) Generate(res int, domain Range) Sample {
	if res < 2 {
		panic("quadric: grid resolution must be at least 2")
	}
	if err := domain.Validate(); err != nil {
		panic("quadric: " + err.Error())
	}
	switch s.Type {
	case Ellipsoid:
		return s.ellipsoid(res)
	case EllipticCone:
		return s.solveForPrincipal(res, domain, EllipticCone, 0)
	case HyperboloidOneSheet:
		return s.solveForPrincipal(res, domain, HyperboloidOneSheet, -1)
	case HyperboloidTwoSheets:
		return s.solveForPrincipal(res, domain, HyperboloidTwoSheets, 1)
	case EllipticParaboloid, HyperbolicParaboloid:
		return s.paraboloid(res, domain)
	case Cylinder:
		return s.cylinder(res)
	}
	panic("quadric: unknown surface type")
}

// ellipsoid parametrizes by azimuth φ ∈ [0, 2π] (columns) and polar angle
// θ ∈ [0, π] (rows):
//
//	x = a·sinθ·cosφ + h, y = b·sinθ·sinφ + k, z = c·cosθ + l
func (s Surface) ellipsoid(res int) Sample {
	p := s.Params
	phi := Range{0, tau}.linspace(res)
	theta := Range{0, pi}.linspace(res)
	br := newBranch(res, res)
	for i, th := range theta {
		sinT, cosT := math.Sin(th), math.Cos(th)
		for j, ph := range phi {
			br.setAt(i, j, r3.Vec{
				X: p.A*sinT*math.Cos(ph) + p.H,
				Y: p.B*sinT*math.Sin(ph) + p.K,
				Z: p.C*cosT + p.L,
			})
		}
	}
	return Sample{Type: Ellipsoid, Branches: []Branch{br}}
}

// solveForPrincipal meshes the two free axes over domain and solves the
// implicit equation for the principal axis, producing a ± branch pair:
//
//	w = ±w_semi·√(u²/u_semi² + v²/v_semi² + bias) + w_offset
//
// bias distinguishes the three solved families: 0 for the cone, -1 for the
// one-sheet hyperboloid (whose waist masks samples with negative radicand)
// and +1 for the two-sheet hyperboloid (radicand never below 1).
func (s Surface) solveForPrincipal(res int, domain Range, typ SurfaceType, bias float64) Sample {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	us := domain.linspace(res)
	vs := domain.linspace(res)
	pos := newBranch(res, res)
	neg := newBranch(res, res)
	for i, uv := range us {
		ru := sq((uv - u.Offset(p)) / u.Semi(p))
		for j, vv := range vs {
			rv := sq((vv - v.Offset(p)) / v.Semi(p))
			radicand := ru + rv + bias
			if radicand < 0 {
				pos.maskAt(i, j)
				neg.maskAt(i, j)
				continue
			}
			root := w.Semi(p) * math.Sqrt(radicand)
			pos.setAt(i, j, compose(u, uv, v, vv, w, root+w.Offset(p)))
			neg.setAt(i, j, compose(u, uv, v, vv, w, -root+w.Offset(p)))
		}
	}
	return Sample{Type: typ, Branches: []Branch{pos, neg}}
}

// paraboloid evaluates the single-valued map over the two free axes:
// elliptic bowls are w = w_semi·(u² + v²) + offset and saddles are
// w = w_semi·(v² - u²) + offset with u, v the normalized free terms.
func (s Surface) paraboloid(res int, domain Range) Sample {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	us := domain.linspace(res)
	vs := domain.linspace(res)
	saddle := s.Type == HyperbolicParaboloid
	br := newBranch(res, res)
	for i, uv := range us {
		ru := sq((uv - u.Offset(p)) / u.Semi(p))
		for j, vv := range vs {
			rv := sq((vv - v.Offset(p)) / v.Semi(p))
			sum := ru + rv
			if saddle {
				sum = rv - ru
			}
			br.setAt(i, j, compose(u, uv, v, vv, w, w.Semi(p)*sum+w.Offset(p)))
		}
	}
	return Sample{Type: s.Type, Branches: []Branch{br}}
}

func (s Surface) cylinder(res int) Sample {
	switch s.Kind {
	case Elliptic:
		return s.ellipticCylinder(res)
	case Hyperbolic:
		return s.hyperbolicCylinder(res)
	case Parabolic:
		return s.parabolicCylinder(res)
	}
	panic("quadric: unknown cylinder kind")
}

// ellipticCylinder sweeps the cross-section ellipse along the free axis:
//
//	u = u_semi·cosθ + u_offset, v = v_semi·sinθ + v_offset
//
// with θ ∈ [0, 2π] over the columns and the free axis over the rows.
func (s Surface) ellipticCylinder(res int) Sample {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	theta := Range{0, tau}.linspace(res)
	ws := axialRange().linspace(res)
	br := newBranch(res, res)
	for i, wv := range ws {
		for j, th := range theta {
			br.setAt(i, j, compose(
				u, u.Semi(p)*math.Cos(th)+u.Offset(p),
				v, v.Semi(p)*math.Sin(th)+v.Offset(p),
				w, wv+w.Offset(p),
			))
		}
	}
	return Sample{Type: Cylinder, Branches: []Branch{br}}
}

// hyperbolicCylinder sweeps the two hyperbola branches along the free
// axis using the cosh/sinh parametrization, which is defined everywhere
// so no masking is needed.
func (s Surface) hyperbolicCylinder(res int) Sample {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	ts := Range{-hyperbolicExtent, hyperbolicExtent}.linspace(res)
	ws := axialRange().linspace(res)
	pos := newBranch(res, res)
	neg := newBranch(res, res)
	for i, wv := range ws {
		for j, t := range ts {
			cu := u.Semi(p) * math.Cosh(t)
			sv := v.Semi(p) * math.Sinh(t)
			pos.setAt(i, j, compose(u, cu+u.Offset(p), v, sv+v.Offset(p), w, wv+w.Offset(p)))
			neg.setAt(i, j, compose(u, -cu+u.Offset(p), v, -sv+v.Offset(p), w, wv+w.Offset(p)))
		}
	}
	return Sample{Type: Cylinder, Branches: []Branch{pos, neg}}
}

// parabolicCylinder solves the first free axis from the second,
// u = (v - v_offset)²/(4p) + u_offset, and sweeps it along the free axis.
func (s Surface) parabolicCylinder(res int) Sample {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	vs := Range{v.Offset(p) - parabolicExtent, v.Offset(p) + parabolicExtent}.linspace(res)
	ws := axialRange().linspace(res)
	br := newBranch(res, res)
	for i, wv := range ws {
		for j, vv := range vs {
			uu := sq(vv-v.Offset(p))/(4*p.P) + u.Offset(p)
			br.setAt(i, j, compose(u, uu, v, vv, w, wv+w.Offset(p)))
		}
	}
	return Sample{Type: Cylinder, Branches: []Branch{br}}
}

func axialRange() Range { return Range{-axialExtent, axialExtent} }

func sq(v float64) float64 { return v * v }

// compose assembles a point from per-axis coordinate values.
func compose(u Axis, uv float64, v Axis, vv float64, w Axis, wv float64) r3.Vec {
	var pt r3.Vec
	for _, c := range [...]struct {
		ax Axis
		v  float64
	}{{u, uv}, {v, vv}, {w, wv}} {
		switch c.ax {
		case AxisX:
			pt.X = c.v
		case AxisY:
			pt.Y = c.v
		case AxisZ:
			pt.Z = c.v
		}
	}
	return pt
}
