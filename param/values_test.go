package param

import (
	"testing"

	"github.com/vizkit/explorer/geom"
)

func TestValues_Float(t *testing.T) {
	tests := []struct {
		name string
		v    Values
		want float64
	}{
		{"float64", Values{"t": 0.5}, 0.5},
		{"float32", Values{"t": float32(2)}, 2},
		{"int", Values{"t": 3}, 3},
		{"int64", Values{"t": int64(4)}, 4},
		{"missing", Values{}, 9},
		{"wrong type", Values{"t": "half"}, 9},
		{"nil map", nil, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Float("t", 9); got != tt.want {
				t.Errorf("Float = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestValues_Int(t *testing.T) {
	tests := []struct {
		name string
		v    Values
		want int
	}{
		{"int", Values{"n": 12}, 12},
		{"int64", Values{"n": int64(7)}, 7},
		{"float rounds up", Values{"n": 11.6}, 12},
		{"float rounds down", Values{"n": 11.4}, 11},
		{"missing", Values{}, 5},
		{"wrong type", Values{"n": true}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Int("n", 5); got != tt.want {
				t.Errorf("Int = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValues_Bool(t *testing.T) {
	v := Values{"show": true, "bad": 1}

	if !v.Bool("show", false) {
		t.Error("Bool(show) = false, want true")
	}
	if v.Bool("bad", false) {
		t.Error("Bool(bad) coerced from int, want default")
	}
	if !v.Bool("missing", true) {
		t.Error("Bool(missing) = false, want default true")
	}
}

func TestValues_String(t *testing.T) {
	v := Values{"mode": "wireframe", "bad": 3}

	if got := v.String("mode", "solid"); got != "wireframe" {
		t.Errorf("String = %q, want wireframe", got)
	}
	if got := v.String("bad", "solid"); got != "solid" {
		t.Errorf("String(bad) = %q, want default", got)
	}
}

func TestValues_Matrix(t *testing.T) {
	want := geom.Mat2{{0, -1}, {1, 0}}

	tests := []struct {
		name string
		v    Values
		want geom.Mat2
	}{
		{"mat2", Values{"A": want}, want},
		{"array", Values{"A": [2][2]float64{{0, -1}, {1, 0}}}, want},
		{"nested slices", Values{"A": [][]float64{{0, -1}, {1, 0}}}, want},
		{"ragged slices", Values{"A": [][]float64{{0, -1}, {1}}}, geom.Identity()},
		{"missing", Values{}, geom.Identity()},
		{"wrong type", Values{"A": "id"}, geom.Identity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Matrix("A", geom.Identity()); got != tt.want {
				t.Errorf("Matrix = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValues_Clone(t *testing.T) {
	v := Values{"n": 3, "t": 0.5}
	c := v.Clone()

	c["n"] = 99
	if v.Int("n", 0) != 3 {
		t.Error("Clone shares map with original")
	}

	if got := Values(nil).Clone(); got != nil {
		t.Errorf("nil Clone = %v, want nil", got)
	}
}
