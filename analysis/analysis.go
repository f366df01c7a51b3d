// Package analysis builds the textual mathematical report for a quadric
// surface: canonical and substituted equations, the computation narrative
// matching the generator, geometric properties and cross-sections.
//
// Every function is pure: the report is fully determined by the surface
// value passed in.
package analysis

import (
	"fmt"
	"strings"

	"github.com/soypat/quadric"
)

// Section is one titled block of report text.
type Section struct {
	Title string
	Lines []string
}

// Report is the ordered sequence of sections produced by Analyze.
type Report []Section

// String renders the report with the numbered-section banner layout.
func (r Report) String() string {
	var sb strings.Builder
	rule := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)
	sb.WriteString(rule + "\n")
	sb.WriteString("QUADRIC SURFACE ANALYSIS\n")
	sb.WriteString(rule + "\n\n")
	for i, sec := range r {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, sec.Title)
		sb.WriteString(thin + "\n")
		for _, ln := range sec.Lines {
			sb.WriteString(ln + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Analyze builds the complete report for s. Like the generator it assumes
// parameters validated at the boundary and panics on an unmapped family,
// which is a programming defect rather than a runtime condition.
func Analyze(s quadric.Surface) Report {
	return Report{
		{Title: "SURFACE IDENTIFICATION", Lines: identification(s)},
		{Title: "GIVEN PARAMETERS", Lines: givenParameters(s)},
		{Title: "CANONICAL EQUATION", Lines: []string{"Standard form: " + s.Equation()}},
		{Title: "EQUATION WITH SUBSTITUTED VALUES", Lines: []string{s.SubstitutedEquation()}},
		{Title: "COMPUTATION METHOD", Lines: computationSteps(s)},
		{Title: "KEY PROPERTIES", Lines: properties(s)},
		{Title: "CROSS-SECTIONS", Lines: crossSections(s)},
	}
}

func identification(s quadric.Surface) []string {
	lines := []string{"Type: " + s.Type.String()}
	switch s.Type {
	case quadric.Ellipsoid:
		lines = append(lines, "Configuration: Symmetric about all three axes")
	case quadric.Cylinder:
		lines = append(lines,
			"Cylinder kind: "+s.Kind.String(),
			fmt.Sprintf("Configuration: Extends infinitely along the %s", s.Orientation))
	default:
		lines = append(lines,
			fmt.Sprintf("Configuration: Axis of symmetry along the %s", s.Orientation))
	}
	return lines
}

func givenParameters(s quadric.Surface) []string {
	p := s.Params
	lines := []string{
		fmt.Sprintf("Semi-axes: a = %.3f, b = %.3f, c = %.3f", p.A, p.B, p.C),
	}
	if s.Type == quadric.Cylinder && s.Kind == quadric.Parabolic {
		lines = append(lines, fmt.Sprintf("Parabola scale: p = %.3f", p.P))
	}
	lines = append(lines, fmt.Sprintf("Center: C(%.3f, %.3f, %.3f)", p.H, p.K, p.L))
	return lines
}
