package trace_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/quadric"
	"github.com/soypat/quadric/trace"
)

func TestEllipsoidTraces(t *testing.T) {
	p := quadric.Params{A: 2, B: 1.5, C: 1, H: 1, K: -2, L: 0.5}
	const n = 64
	traces := trace.Ellipsoid(p, n)
	if len(traces) != 3 {
		t.Fatalf("got %d traces, want 3", len(traces))
	}
	const tol = 1e-12
	for _, tr := range traces {
		if len(tr.Points) != n {
			t.Fatalf("%v: got %d points, want %d", tr.Plane, len(tr.Points), n)
		}
		first, last := tr.Points[0], tr.Points[n-1]
		if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 || math.Abs(first.Z-last.Z) > 1e-9 {
			t.Errorf("%v: trace is not closed: %v != %v", tr.Plane, first, last)
		}
		for i, pt := range tr.Points {
			// Every trace point lies on the ellipsoid and in its plane.
			r := sq((pt.X-p.H)/p.A) + sq((pt.Y-p.K)/p.B) + sq((pt.Z-p.L)/p.C) - 1
			if math.Abs(r) > tol {
				t.Fatalf("%v point %d off surface: residual %g", tr.Plane, i, r)
			}
			var held, want float64
			switch tr.Plane {
			case trace.PlaneXY:
				held, want = pt.Z, p.L
			case trace.PlaneXZ:
				held, want = pt.Y, p.K
			case trace.PlaneYZ:
				held, want = pt.X, p.H
			}
			if held != want {
				t.Fatalf("%v point %d off plane: %g != %g", tr.Plane, i, held, want)
			}
		}
	}
}

func TestEllipsoidTracePanicsOnTooFewPoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for n < 3")
		}
	}()
	trace.Ellipsoid(quadric.Params{A: 1, B: 1, C: 1}, 2)
}

func TestSavePNG(t *testing.T) {
	traces := trace.Ellipsoid(quadric.Params{A: 2, B: 1.5, C: 1}, 100)
	path := filepath.Join(t.TempDir(), "traces.png")
	if err := trace.SavePNG(path, "Ellipsoid traces", traces); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty PNG written")
	}
}

func TestSavePNGNoTraces(t *testing.T) {
	if err := trace.SavePNG("unused.png", "empty", nil); err == nil {
		t.Fatal("expected error for empty trace slice")
	}
}

func sq(v float64) float64 { return v * v }
