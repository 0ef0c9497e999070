package body

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec{3, 4}
	b := Vec{1, -2}

	if got := a.Add(b); got != (Vec{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec{2, 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Norm(); got != 5 {
		t.Errorf("Norm: got %f", got)
	}
}

func TestVecIsValid(t *testing.T) {
	if !(Vec{1, 2}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec{math.NaN(), 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec{0, math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"sun", "earth", "moon"}
	for _, n := range names {
		r.Add(&Body{Name: n, Mass: 1, Pos: Vec{X: float64(len(n))}})
	}

	if r.Len() != 3 {
		t.Fatalf("expected 3 bodies, got %d", r.Len())
	}
	for i, b := range r.Bodies() {
		if b.Name != names[i] {
			t.Errorf("position %d: expected %s, got %s", i, names[i], b.Name)
		}
	}
}

func TestRegistryValidate(t *testing.T) {
	tests := []struct {
		name    string
		bodies  []*Body
		wantErr bool
	}{
		{"valid pair", []*Body{
			{Name: "a", Mass: 1, Pos: Vec{0, 0}},
			{Name: "b", Mass: 1, Pos: Vec{1, 0}},
		}, false},
		{"zero mass", []*Body{
			{Name: "a", Mass: 0, Pos: Vec{0, 0}},
		}, true},
		{"negative mass", []*Body{
			{Name: "a", Mass: -5, Pos: Vec{0, 0}},
		}, true},
		{"duplicate position", []*Body{
			{Name: "a", Mass: 1, Pos: Vec{2, 3}},
			{Name: "b", Mass: 1, Pos: Vec{2, 3}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, b := range tt.bodies {
				r.Add(b)
			}
			err := r.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.Add(&Body{Name: "a", Mass: 1, Pos: Vec{1, 2}, Vel: Vec{3, 4}})

	b := r.Bodies()[0]
	b.Pos = Vec{100, 200}
	b.Vel = Vec{-1, -1}

	r.Reset()

	if b.Pos != (Vec{1, 2}) || b.Vel != (Vec{3, 4}) {
		t.Errorf("reset did not restore initial state: pos=%v vel=%v", b.Pos, b.Vel)
	}
}
