package analysis

import (
	"fmt"
	"math"

	"github.com/soypat/quadric"
)

func properties(s quadric.Surface) []string {
	p := s.Params
	o := s.Orientation
	center := fmt.Sprintf("(%.3f, %.3f, %.3f)", p.H, p.K, p.L)
	switch s.Type {
	case quadric.Ellipsoid:
		volume := 4.0 / 3.0 * math.Pi * p.A * p.B * p.C
		return []string{
			"• Type: Closed, bounded surface",
			"• Symmetry: Symmetric about all three coordinate planes",
			fmt.Sprintf("• Volume: V = (4/3)π·%s·%s·%s ≈ %.3f",
				quadric.Ftoa(p.A), quadric.Ftoa(p.B), quadric.Ftoa(p.C), volume),
			fmt.Sprintf("• Axis intercepts from center: ±%s along x, ±%s along y, ±%s along z",
				quadric.Ftoa(p.A), quadric.Ftoa(p.B), quadric.Ftoa(p.C)),
			"• Not a ruled surface",
		}
	case quadric.EllipticCone:
		return []string{
			"• Type: Unbounded surface (extends to infinity)",
			"• Vertex: " + center,
			fmt.Sprintf("• Axis: %s", o),
			"• Ruled surface (contains straight lines)",
			fmt.Sprintf("• Cross-sections perpendicular to the %s: ellipses", o),
		}
	case quadric.HyperboloidOneSheet:
		return []string{
			"• Type: Unbounded, connected (single sheet)",
			fmt.Sprintf("• Waist: perpendicular to the %s at the center", o),
			"• Doubly ruled surface",
			fmt.Sprintf("• Cross-sections perpendicular to the %s: ellipses", o),
			fmt.Sprintf("• Cross-sections parallel to the %s: hyperbolas", o),
		}
	case quadric.HyperboloidTwoSheets:
		separation := 2 * s.Orientation.Principal().Semi(p)
		return []string{
			"• Type: Unbounded, disconnected (two sheets)",
			fmt.Sprintf("• Gap between sheets along the %s", o),
			"• Not a ruled surface",
			fmt.Sprintf("• Minimum distance between sheets: %s", quadric.Ftoa(separation)),
			fmt.Sprintf("• Opens along the %s", o),
		}
	case quadric.EllipticParaboloid:
		return []string{
			"• Type: Unbounded, bowl-shaped",
			"• Vertex: " + center,
			fmt.Sprintf("• Opens along the %s", o),
			"• Not a ruled surface",
			fmt.Sprintf("• Cross-sections perpendicular to the %s: ellipses", o),
			fmt.Sprintf("• Cross-sections parallel to the %s: parabolas", o),
		}
	case quadric.HyperbolicParaboloid:
		return []string{
			"• Type: Saddle-shaped surface (unbounded)",
			"• Saddle point: " + center,
			fmt.Sprintf("• Principal axis: %s", o),
			"• Doubly ruled surface",
			"• Contains hyperbolic and parabolic cross-sections",
		}
	case quadric.Cylinder:
		lines := []string{
			"• Type: Unbounded (extends infinitely)",
			fmt.Sprintf("• Extension: along the %s", o),
			"• Ruled surface (parallel lines)",
			"• Constant cross-section along the length",
		}
		switch s.Kind {
		case quadric.Elliptic:
			lines = append(lines, fmt.Sprintf("• Cross-section perpendicular to the %s: ellipse", o))
		case quadric.Hyperbolic:
			lines = append(lines,
				fmt.Sprintf("• Cross-section perpendicular to the %s: hyperbola", o),
				"• Two disconnected sheets")
		case quadric.Parabolic:
			lines = append(lines,
				fmt.Sprintf("• Cross-section perpendicular to the %s: parabola", o),
				fmt.Sprintf("• Parabola scale: p = %s", quadric.Ftoa(p.P)))
		}
		return lines
	}
	panic("analysis: no properties for surface")
}

func crossSections(s quadric.Surface) []string {
	o := s.Orientation
	switch s.Type {
	case quadric.Ellipsoid:
		return []string{
			"• XY-plane (z = l): Ellipse",
			"• XZ-plane (y = k): Ellipse",
			"• YZ-plane (x = h): Ellipse",
			"• All cross-sections parallel to the coordinate planes: Ellipses",
		}
	case quadric.EllipticCone:
		return []string{
			fmt.Sprintf("• Perpendicular to the %s: Ellipses (growing from the vertex)", o),
			fmt.Sprintf("• Parallel to the %s: Hyperbolas or lines", o),
			"• Through the vertex: Single point or intersecting lines",
		}
	case quadric.HyperboloidOneSheet:
		return []string{
			fmt.Sprintf("• Perpendicular to the %s: Ellipses", o),
			"• At the center: Smallest ellipse (waist)",
			fmt.Sprintf("• Parallel to the %s: Hyperbolas", o),
		}
	case quadric.HyperboloidTwoSheets:
		return []string{
			fmt.Sprintf("• Perpendicular to the %s: Ellipses (two separate)", o),
			"• Near the center: No intersection (gap)",
			fmt.Sprintf("• Parallel to the %s: Hyperbolas", o),
		}
	case quadric.EllipticParaboloid:
		return []string{
			fmt.Sprintf("• Perpendicular to the %s: Ellipses", o),
			"• At the vertex: Single point",
			fmt.Sprintf("• Parallel to the %s: Parabolas", o),
		}
	case quadric.HyperbolicParaboloid:
		return []string{
			fmt.Sprintf("• Along the %s: Parabolas", o),
			"• Perpendicular to the principal axis: Hyperbolas",
			"• At the saddle point: Two intersecting lines",
		}
	case quadric.Cylinder:
		kind := map[quadric.CylinderKind]string{
			quadric.Elliptic:   "Ellipse",
			quadric.Hyperbolic: "Hyperbola",
			quadric.Parabolic:  "Parabola",
		}[s.Kind]
		return []string{
			fmt.Sprintf("• Perpendicular to the %s: %s (constant)", o, kind),
			fmt.Sprintf("• Parallel to the %s: Parallel lines", o),
			"• The surface is a translation of its cross-section",
		}
	}
	panic("analysis: no cross-sections for surface")
}

// Describe returns the short qualitative description block for a family,
// independent of the numeric parameters.
func Describe(t quadric.SurfaceType, o quadric.Orientation) []string {
	switch t {
	case quadric.Ellipsoid:
		return []string{
			"Closed, bounded surface",
			"Symmetrical about all three axes",
			"All cross-sections are ellipses",
			"No ruled lines",
		}
	case quadric.EllipticCone:
		return []string{
			"Unbounded surface extending to infinity",
			fmt.Sprintf("Opens along the %s", o),
			"Vertex at the center point",
			"Ruled surface (contains straight lines)",
		}
	case quadric.HyperboloidOneSheet:
		return []string{
			"Unbounded, single-sheeted surface",
			fmt.Sprintf("Opens along the %s (waist perpendicular to it)", o),
			"Doubly ruled surface",
		}
	case quadric.HyperboloidTwoSheets:
		return []string{
			"Two separate sheets (disconnected)",
			fmt.Sprintf("Sheets open along the %s", o),
			"Gap between the sheets at the center",
			"Not a ruled surface",
		}
	case quadric.EllipticParaboloid:
		return []string{
			"Unbounded, bowl-shaped surface",
			fmt.Sprintf("Opens along the %s", o),
			"Vertex at the center point",
			"Not a ruled surface",
		}
	case quadric.HyperbolicParaboloid:
		return []string{
			"Saddle-shaped surface (unbounded)",
			fmt.Sprintf("Principal axis along the %s", o),
			"Cross-sections are hyperbolas and parabolas",
			"Doubly ruled surface",
		}
	case quadric.Cylinder:
		return []string{
			fmt.Sprintf("Unbounded surface extending infinitely along the %s", o),
			"Constant cross-section along the axis",
			"Ruled surface (contains infinite parallel lines)",
		}
	}
	panic("analysis: no description for surface type")
}
