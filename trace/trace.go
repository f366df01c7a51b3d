// Package trace computes coordinate-plane trace curves of quadric
// surfaces and renders them as 2D plots.
package trace

import (
	"fmt"
	"math"

	"github.com/soypat/quadric"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plane is a coordinate plane through the surface center.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY-plane"
	case PlaneXZ:
		return "XZ-plane"
	case PlaneYZ:
		return "YZ-plane"
	}
	return "unknown plane"
}

// project drops the coordinate held constant on the plane.
func (p Plane) project(v r3.Vec) (x, y float64) {
	switch p {
	case PlaneXY:
		return v.X, v.Y
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	}
	panic("trace: unknown plane")
}

// axisLabels returns the coordinate names spanning the plane.
func (p Plane) axisLabels() (x, y string) {
	switch p {
	case PlaneXY:
		return "x", "y"
	case PlaneXZ:
		return "x", "z"
	case PlaneYZ:
		return "y", "z"
	}
	panic("trace: unknown plane")
}

// Trace is a closed curve where a coordinate plane through the center
// cuts a surface.
type Trace struct {
	Plane  Plane
	Points []r3.Vec
}

// Ellipsoid returns the three coordinate-plane traces of an ellipsoid,
// each an ellipse sampled at n points.
func Ellipsoid(p quadric.Params, n int) []Trace {
	if n < 3 {
		panic("trace: need at least 3 points per trace")
	}
	traces := []Trace{
		{Plane: PlaneXY, Points: make([]r3.Vec, n)},
		{Plane: PlaneXZ, Points: make([]r3.Vec, n)},
		{Plane: PlaneYZ, Points: make([]r3.Vec, n)},
	}
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		sin, cos := math.Sin(theta), math.Cos(theta)
		traces[0].Points[i] = r3.Vec{X: p.A*cos + p.H, Y: p.B*sin + p.K, Z: p.L}
		traces[1].Points[i] = r3.Vec{X: p.A*cos + p.H, Y: p.K, Z: p.C*sin + p.L}
		traces[2].Points[i] = r3.Vec{X: p.H, Y: p.B*cos + p.K, Z: p.C*sin + p.L}
	}
	return traces
}

// SavePNG renders the traces projected onto their planes into a single
// PNG plot at path.
func SavePNG(path, title string, traces []Trace) error {
	pl := plot.New()
	pl.Title.Text = title
	if len(traces) == 0 {
		return fmt.Errorf("no traces to plot")
	}
	xl, yl := traces[0].Plane.axisLabels()
	pl.X.Label.Text = xl
	pl.Y.Label.Text = yl
	for _, tr := range traces {
		xys := make(plotter.XYs, len(tr.Points))
		for i, pt := range tr.Points {
			xys[i].X, xys[i].Y = tr.Plane.project(pt)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		pl.Add(line)
		pl.Legend.Add(tr.Plane.String(), line)
	}
	return pl.Save(6*vg.Inch, 6*vg.Inch, path)
}
