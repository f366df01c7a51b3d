// Package render turns sampled quadric surfaces into triangle meshes and
// writes them out as binary STL.
package render

import (
	"errors"
	"io"

	"github.com/soypat/quadric"
	"github.com/soypat/quadric/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer produces a triangle mesh in chunks.
type Renderer interface {
	// ReadTriangles fills t with triangles and returns the number
	// written. It returns io.EOF when the mesh is exhausted.
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle's unit normal by the right hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether any two vertices coincide within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// degenerateTol collapses the duplicated vertices a structured grid
// produces at sphere poles and cone apexes.
const degenerateTol = 1e-12

// gridRenderer triangulates the structured grids of a Sample. Each grid
// quad yields two triangles; quads touching a masked sample are skipped,
// so masked regions (the one-sheet hyperboloid waist) leave holes instead
// of spurious geometry.
type gridRenderer struct {
	branches []quadric.Branch
	bi, i, j int // cursor: branch, quad row, quad column
}

// NewGridRenderer returns a Renderer that meshes every branch of s.
func NewGridRenderer(s quadric.Sample) Renderer {
	return &gridRenderer{branches: s.Branches}
}

func (g *gridRenderer) ReadTriangles(dst []Triangle3) (int, error) {
	if len(dst) < 2 {
		return 0, errors.New("destination buffer must hold at least 2 triangles")
	}
	n := 0
	for n+2 <= len(dst) {
		if g.bi >= len(g.branches) {
			return n, io.EOF
		}
		b := g.branches[g.bi]
		rows, cols := b.Dims()
		if g.i >= rows-1 {
			g.bi++
			g.i, g.j = 0, 0
			continue
		}
		if g.j >= cols-1 {
			g.i++
			g.j = 0
			continue
		}
		i, j := g.i, g.j
		g.j++
		p00, ok00 := b.At(i, j)
		p01, ok01 := b.At(i, j+1)
		p10, ok10 := b.At(i+1, j)
		p11, ok11 := b.At(i+1, j+1)
		if !ok00 || !ok01 || !ok10 || !ok11 {
			continue
		}
		for _, t := range [2]Triangle3{
			{V: [3]r3.Vec{p00, p10, p11}},
			{V: [3]r3.Vec{p00, p11, p01}},
		} {
			if !t.Degenerate(degenerateTol) {
				dst[n] = t
				n++
			}
		}
	}
	return n, nil
}

// AllTriangles drains r into a slice.
func AllTriangles(r Renderer) ([]Triangle3, error) {
	var model []Triangle3
	buf := make([]Triangle3, 512)
	for {
		n, err := r.ReadTriangles(buf)
		model = append(model, buf[:n]...)
		if err == io.EOF {
			return model, nil
		}
		if err != nil {
			return model, err
		}
	}
}
