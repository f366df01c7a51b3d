// Package quadric generates and classifies the standard quadric surfaces
// of three dimensional space: the surfaces defined by second degree
// polynomial equations in x, y and z.
//
// The package is a pure function library. A Surface value selects a family,
// an orientation and the geometric parameters; Generate samples the surface
// on a structured grid and Equation/SubstitutedEquation render its canonical
// algebraic form. The sibling analysis package builds full textual reports
// on top of these primitives.
package quadric

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
	// axialExtent is the half length sampled along the free axis of a
	// cylinder. Cylinders are unbounded along that axis so the extent is
	// fixed and independent of the caller's display domain.
	axialExtent = 10.0
	// hyperbolicExtent bounds the cosh/sinh parameter of hyperbolic
	// branches.
	hyperbolicExtent = 2.0
	// parabolicExtent bounds the transverse coordinate of a parabolic
	// cylinder.
	parabolicExtent = 3.0
)

// SurfaceType selects one of the seven standard quadric surface families.
type SurfaceType int

const (
	Ellipsoid SurfaceType = iota
	EllipticCone
	HyperboloidOneSheet
	HyperboloidTwoSheets
	EllipticParaboloid
	HyperbolicParaboloid
	Cylinder
)

func (t SurfaceType) String() string {
	switch t {
	case Ellipsoid:
		return "Ellipsoid"
	case EllipticCone:
		return "Elliptic Cone"
	case HyperboloidOneSheet:
		return "Hyperboloid of One Sheet"
	case HyperboloidTwoSheets:
		return "Hyperboloid of Two Sheets"
	case EllipticParaboloid:
		return "Elliptic Paraboloid"
	case HyperbolicParaboloid:
		return "Hyperbolic Paraboloid"
	case Cylinder:
		return "Cylinder"
	}
	return "Unknown"
}

// CylinderKind refines the Cylinder family. The zero value is Elliptic so
// callers that never touch cylinders need not set it.
type CylinderKind int

const (
	Elliptic CylinderKind = iota
	Hyperbolic
	Parabolic
)

func (k CylinderKind) String() string {
	switch k {
	case Elliptic:
		return "Elliptic"
	case Hyperbolic:
		return "Hyperbolic"
	case Parabolic:
		return "Parabolic"
	}
	return "Unknown"
}

// Orientation names the principal axis of a surface: the axis of symmetry,
// or for cylinders the axis along which the surface is unbounded.
// Ellipsoids are symmetric in all three axes and ignore it.
type Orientation int

const (
	AlongZ Orientation = iota
	AlongY
	AlongX
)

func (o Orientation) String() string { return o.Principal().Name() + "-axis" }

// Principal returns the Cartesian axis o points along.
func (o Orientation) Principal() Axis {
	_, _, w := o.Axes()
	return w
}

// Axes returns the axis permutation for a surface oriented along o.
// u and v are the two free Cartesian axes, in x-before-y-before-z order,
// and w is the principal axis. Every per-family formula in this package and
// every line of analysis text derives from this single mapping.
func (o Orientation) Axes() (u, v, w Axis) {
	switch o {
	case AlongZ:
		return AxisX, AxisY, AxisZ
	case AlongY:
		return AxisX, AxisZ, AxisY
	case AlongX:
		return AxisY, AxisZ, AxisX
	}
	panic("quadric: unknown orientation")
}

// Axis is a Cartesian coordinate axis together with its conventional
// pairing of semi-axis and center offset: x pairs with a and h, y with
// b and k, z with c and l.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Name returns the coordinate letter "x", "y" or "z".
func (a Axis) Name() string { return string('x' + rune(a)) }

// SemiName returns the letter of the semi-axis paired with a.
func (a Axis) SemiName() string { return string('a' + rune(a)) }

// OffsetName returns the letter of the center offset paired with a.
func (a Axis) OffsetName() string {
	switch a {
	case AxisX:
		return "h"
	case AxisY:
		return "k"
	}
	return "l"
}

// Semi returns the semi-axis length of p paired with a.
func (a Axis) Semi(p Params) float64 {
	switch a {
	case AxisX:
		return p.A
	case AxisY:
		return p.B
	}
	return p.C
}

// Offset returns the center offset of p along a.
func (a Axis) Offset(p Params) float64 {
	switch a {
	case AxisX:
		return p.H
	case AxisY:
		return p.K
	}
	return p.L
}

// Surface is a fully specified quadric surface. Kind is only meaningful for
// the Cylinder family and Orientation is ignored by ellipsoids.
type Surface struct {
	Type        SurfaceType
	Kind        CylinderKind
	Orientation Orientation
	Params      Params
}
