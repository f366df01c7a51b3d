package render_test

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/quadric"
	"github.com/soypat/quadric/render"
)

func TestGridRendererEllipsoid(t *testing.T) {
	s := quadric.Surface{Type: quadric.Ellipsoid, Params: quadric.Params{A: 2, B: 1.5, C: 1}}
	model, err := render.AllTriangles(render.NewGridRenderer(s.Generate(30, quadric.Range{Min: -3, Max: 3})))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("ellipsoid mesh is empty")
	}
	for _, tri := range model {
		if tri.Degenerate(1e-12) {
			t.Fatal("degenerate triangle in mesh")
		}
		for _, v := range tri.V {
			r := v.X*v.X/4 + v.Y*v.Y/2.25 + v.Z*v.Z - 1
			if math.Abs(r) > 1e-9 {
				t.Fatalf("vertex %v off surface: residual %g", v, r)
			}
		}
	}
}

func TestGridRendererSkipsMaskedQuads(t *testing.T) {
	// The one-sheet hyperboloid waist masks grid samples. No triangle may
	// touch a masked sample so every emitted vertex lies on the surface.
	s := quadric.Surface{
		Type:   quadric.HyperboloidOneSheet,
		Params: quadric.Params{A: 1, B: 1, C: 1},
	}
	model, err := render.AllTriangles(render.NewGridRenderer(s.Generate(41, quadric.Range{Min: -2, Max: 2})))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("hyperboloid mesh is empty")
	}
	for _, tri := range model {
		for _, v := range tri.V {
			r := v.X*v.X + v.Y*v.Y - v.Z*v.Z - 1
			if math.Abs(r) > 1e-9 {
				t.Fatalf("vertex %v off surface: residual %g", v, r)
			}
		}
	}
}

func TestReadTrianglesSmallBuffer(t *testing.T) {
	s := quadric.Surface{Type: quadric.Ellipsoid, Params: quadric.Params{A: 1, B: 1, C: 1}}
	r := render.NewGridRenderer(s.Generate(10, quadric.Range{Min: -2, Max: 2}))
	if _, err := r.ReadTriangles(make([]render.Triangle3, 1)); err == nil {
		t.Fatal("expected error for single-triangle buffer")
	}
}

func TestSTLWriteReadRoundTrip(t *testing.T) {
	s := quadric.Surface{Type: quadric.Ellipsoid, Params: quadric.Params{A: 2, B: 1.5, C: 1, H: 1}}
	model, err := render.AllTriangles(render.NewGridRenderer(s.Generate(20, quadric.Range{Min: -3, Max: 3})))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	got, err := render.ReadSTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(got), len(model))
	}
	const f32tol = 1e-5
	for i := range model {
		for j := range model[i].V {
			want, have := model[i].V[j], got[i].V[j]
			if math.Abs(want.X-have.X) > f32tol ||
				math.Abs(want.Y-have.Y) > f32tol ||
				math.Abs(want.Z-have.Z) > f32tol {
				t.Fatalf("triangle %d vertex %d: %v != %v", i, j, want, have)
			}
		}
	}
}

func TestSTLCreateWriteRead(t *testing.T) {
	s := quadric.Surface{Type: quadric.EllipticCone, Params: quadric.Params{A: 1, B: 2, C: 1.5}}
	sample := s.Generate(20, quadric.Range{Min: -3, Max: 3})
	path := filepath.Join(t.TempDir(), "cone.stl")
	if err := render.CreateSTL(path, render.NewGridRenderer(sample)); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.AllTriangles(render.NewGridRenderer(sample))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestWriteSTLEmptyModel(t *testing.T) {
	if err := render.WriteSTL(io.Discard, nil); err == nil {
		t.Fatal("expected error for empty model")
	}
}
