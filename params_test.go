package quadric_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/soypat/quadric"
)

func TestParamsValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		params  quadric.Params
		wantErr string // substring of error, empty means valid
	}{
		{name: "valid", params: quadric.Params{A: 2, B: 1.5, C: 1}},
		{name: "valid offset center", params: quadric.Params{A: 1, B: 1, C: 1, H: -3, K: 2, L: 0.5}},
		{name: "negative a", params: quadric.Params{A: -1, B: 1, C: 1}, wantErr: "a must be greater than 0"},
		{name: "zero b", params: quadric.Params{A: 1, B: 0, C: 1}, wantErr: "b must be greater than 0"},
		{name: "negative c", params: quadric.Params{A: 1, B: 1, C: -2}, wantErr: "c must be greater than 0"},
		{name: "NaN h", params: quadric.Params{A: 1, B: 1, C: 1, H: math.NaN()}, wantErr: "h is not a finite"},
		{name: "infinite b", params: quadric.Params{A: 1, B: math.Inf(1), C: 1}, wantErr: "b is not a finite"},
	} {
		err := test.params.Validate()
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", test.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected error containing %q, got nil", test.name, test.wantErr)
		} else if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: error %q does not contain %q", test.name, err, test.wantErr)
		}
	}
}

func TestParamsValidateParabolic(t *testing.T) {
	p := quadric.Params{A: 1, B: 1, C: 1, P: 0}
	err := p.ValidateParabolic()
	if err == nil || !strings.Contains(err.Error(), "p must be greater than 0") {
		t.Errorf("expected parabola scale error, got %v", err)
	}
	p.P = 0.5
	if err := p.ValidateParabolic(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (quadric.Range{Min: -10, Max: 10}).Validate(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := (quadric.Range{Min: 10, Max: -10}).Validate(); err == nil {
		t.Error("inverted range accepted")
	}
	if err := (quadric.Range{Min: 1, Max: 1}).Validate(); err == nil {
		t.Error("empty range accepted")
	}
	if err := (quadric.Range{Min: math.NaN(), Max: 1}).Validate(); err == nil {
		t.Error("NaN range accepted")
	}
}

func TestRandomParamsAlwaysValid(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := quadric.RandomParams(rnd)
		if err := p.ValidateParabolic(); err != nil {
			t.Fatalf("iteration %d: %v (params %+v)", i, err, p)
		}
		if p.A < 1 || p.A >= 10.005 || p.P < 0.5 || p.P >= 5.005 {
			t.Fatalf("iteration %d: parameter out of documented range: %+v", i, p)
		}
	}
}
