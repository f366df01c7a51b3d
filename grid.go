package quadric

import (
	"github.com/soypat/quadric/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mask marks which samples of a branch lie on the surface. Samples where
// the solved coordinate has no real value (negative radicand) are marked
// invalid instead of relying on NaN propagation.
type Mask struct {
	rows, cols int
	valid      []bool
}

func newMask(rows, cols int) *Mask {
	m := &Mask{rows: rows, cols: cols, valid: make([]bool, rows*cols)}
	for i := range m.valid {
		m.valid[i] = true
	}
	return m
}

// Dims returns the mask dimensions.
func (m *Mask) Dims() (rows, cols int) { return m.rows, m.cols }

// At reports whether sample (i, j) is part of the surface.
func (m *Mask) At(i, j int) bool { return m.valid[i*m.cols+j] }

func (m *Mask) set(i, j int, ok bool) { m.valid[i*m.cols+j] = ok }

// CountValid returns the number of samples on the surface.
func (m *Mask) CountValid() (n int) {
	for _, ok := range m.valid {
		if ok {
			n++
		}
	}
	return n
}

// Branch is one single-valued sheet of a sampled surface: three coordinate
// grids of equal dimensions plus an optional validity mask. A nil Valid
// means every sample lies on the surface.
type Branch struct {
	X, Y, Z *mat.Dense
	Valid   *Mask
}

func newBranch(rows, cols int) Branch {
	return Branch{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
}

// Dims returns the grid dimensions of the branch.
func (b Branch) Dims() (rows, cols int) { return b.X.Dims() }

// At returns the sample at grid position (i, j) and whether it is part of
// the surface.
func (b Branch) At(i, j int) (r3.Vec, bool) {
	if b.Valid != nil && !b.Valid.At(i, j) {
		return r3.Vec{}, false
	}
	return r3.Vec{X: b.X.At(i, j), Y: b.Y.At(i, j), Z: b.Z.At(i, j)}, true
}

func (b Branch) setAt(i, j int, v r3.Vec) {
	b.X.Set(i, j, v.X)
	b.Y.Set(i, j, v.Y)
	b.Z.Set(i, j, v.Z)
}

// maskAt marks sample (i, j) as off the surface, allocating the mask on
// first use.
func (b *Branch) maskAt(i, j int) {
	if b.Valid == nil {
		r, c := b.Dims()
		b.Valid = newMask(r, c)
	}
	b.Valid.set(i, j, false)
}

// Sample is the generator output: one branch for directly parametrized
// families, two for the families solved explicitly as a ± pair (cone and
// the hyperboloids, plus hyperbolic cylinders).
type Sample struct {
	Type     SurfaceType
	Branches []Branch
}

// Bounds returns the axis aligned bounding box of all valid samples.
func (s Sample) Bounds() r3.Box {
	first := true
	var box r3.Box
	for _, b := range s.Branches {
		rows, cols := b.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, ok := b.At(i, j)
				if !ok {
					continue
				}
				if first {
					box = r3.Box{Min: v, Max: v}
					first = false
					continue
				}
				box.Min = d3.MinElem(box.Min, v)
				box.Max = d3.MaxElem(box.Max, v)
			}
		}
	}
	return box
}
