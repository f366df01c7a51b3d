package quadric

import (
	"fmt"
	"math"
	"strconv"
)

// Ftoa formats v in trimmed fixed point notation with at most three
// decimal places: Ftoa(2) is "2" and Ftoa(1.5) is "1.5".
func Ftoa(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0" for tiny negative values.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// symTerm renders the symbolic squared term of an axis, e.g. "(x-h)²/a²"
// for the x axis.
func symTerm(ax Axis) string {
	return fmt.Sprintf("(%s-%s)²/%s²", ax.Name(), ax.OffsetName(), ax.SemiName())
}

// numTerm renders the squared term of an axis with parameter values
// substituted, e.g. "(x-0)²/2²".
func numTerm(ax Axis, p Params) string {
	return fmt.Sprintf("%s²/%s²", offsetExpr(ax.Name(), ax.Offset(p)), Ftoa(ax.Semi(p)))
}

// offsetExpr renders a shifted coordinate, folding the sign of the offset
// into the operator: offsetExpr("x", -1) is "(x+1)".
func offsetExpr(name string, off float64) string {
	if off < 0 {
		return fmt.Sprintf("(%s+%s)", name, Ftoa(-off))
	}
	return fmt.Sprintf("(%s-%s)", name, Ftoa(off))
}

// Equation returns the canonical symbolic equation of the surface in
// (x-h), (y-k), (z-l) form for its family and orientation.
func (s Surface) Equation() string {
	u, v, w := s.Orientation.Axes()
	switch s.Type {
	case Ellipsoid:
		return symTerm(AxisX) + " + " + symTerm(AxisY) + " + " + symTerm(AxisZ) + " = 1"
	case EllipticCone:
		return symTerm(u) + " + " + symTerm(v) + " = " + symTerm(w)
	case HyperboloidOneSheet:
		return symTerm(u) + " + " + symTerm(v) + " - " + symTerm(w) + " = 1"
	case HyperboloidTwoSheets:
		return symTerm(w) + " - " + symTerm(u) + " - " + symTerm(v) + " = 1"
	case EllipticParaboloid:
		return fmt.Sprintf("%s - %s = %s[%s + %s]",
			w.Name(), w.OffsetName(), w.SemiName(), symTerm(u), symTerm(v))
	case HyperbolicParaboloid:
		return fmt.Sprintf("%s - %s = %s[%s - %s]",
			w.Name(), w.OffsetName(), w.SemiName(), symTerm(v), symTerm(u))
	case Cylinder:
		switch s.Kind {
		case Elliptic:
			return fmt.Sprintf("%s + %s = 1, %s extends infinitely",
				symTerm(u), symTerm(v), w.Name())
		case Hyperbolic:
			return fmt.Sprintf("%s - %s = 1, %s extends infinitely",
				symTerm(u), symTerm(v), w.Name())
		case Parabolic:
			return fmt.Sprintf("(%s-%s)² = 4p·(%s-%s), %s extends infinitely",
				v.Name(), v.OffsetName(), u.Name(), u.OffsetName(), w.Name())
		}
	}
	panic("quadric: no canonical equation for surface")
}

// SubstitutedEquation returns the canonical equation with the numeric
// parameter values substituted in trimmed fixed point form.
func (s Surface) SubstitutedEquation() string {
	p := s.Params
	u, v, w := s.Orientation.Axes()
	switch s.Type {
	case Ellipsoid:
		return numTerm(AxisX, p) + " + " + numTerm(AxisY, p) + " + " + numTerm(AxisZ, p) + " = 1"
	case EllipticCone:
		return numTerm(u, p) + " + " + numTerm(v, p) + " = " + numTerm(w, p)
	case HyperboloidOneSheet:
		return numTerm(u, p) + " + " + numTerm(v, p) + " - " + numTerm(w, p) + " = 1"
	case HyperboloidTwoSheets:
		return numTerm(w, p) + " - " + numTerm(u, p) + " - " + numTerm(v, p) + " = 1"
	case EllipticParaboloid:
		return fmt.Sprintf("%s = %s[%s + %s] + %s",
			w.Name(), Ftoa(w.Semi(p)), numTerm(u, p), numTerm(v, p), Ftoa(w.Offset(p)))
	case HyperbolicParaboloid:
		return fmt.Sprintf("%s = %s[%s - %s] + %s",
			w.Name(), Ftoa(w.Semi(p)), numTerm(v, p), numTerm(u, p), Ftoa(w.Offset(p)))
	case Cylinder:
		switch s.Kind {
		case Elliptic:
			return numTerm(u, p) + " + " + numTerm(v, p) + " = 1"
		case Hyperbolic:
			return numTerm(u, p) + " - " + numTerm(v, p) + " = 1"
		case Parabolic:
			return fmt.Sprintf("%s² = 4·%s·%s",
				offsetExpr(v.Name(), v.Offset(p)), Ftoa(p.P), offsetExpr(u.Name(), u.Offset(p)))
		}
	}
	panic("quadric: no canonical equation for surface")
}
