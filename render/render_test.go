package render_test

import (
	"os"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/soypat/quadric"
	"github.com/soypat/quadric/render"
)

const benchResolution = 300

// BenchmarkSDFXEllipsoid meshes the same ellipsoid with sdfx marching
// cubes as a baseline for the closed-form grid renderer below.
func BenchmarkSDFXEllipsoid(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_ellipsoid.stl"
	object, _ := sdf.Sphere3D(1)
	object = sdf.Transform3D(object, sdf.Scale3d(sdf.V3{X: 2, Y: 1.5, Z: 1}))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchResolution, output, &sdfxrender.MarchingCubesOctree{})
	}
	b.StopTimer()
	os.Remove(output)
}

func BenchmarkGridEllipsoid(b *testing.B) {
	const output = "grid_ellipsoid.stl"
	s := quadric.Surface{Type: quadric.Ellipsoid, Params: quadric.Params{A: 2, B: 1.5, C: 1}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sample := s.Generate(benchResolution, quadric.Range{Min: -3, Max: 3})
		if err := render.CreateSTL(output, render.NewGridRenderer(sample)); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	os.Remove(output)
}
