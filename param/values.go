package param

import (
	"math"

	"github.com/vizkit/explorer/geom"
)

// Values maps parameter names to their current values. Readers coerce
// compatible numeric types and fall back to the given default when the key
// is absent or holds an incompatible value, so a misbehaving producer
// degrades to defaults instead of panicking mid-frame.
type Values map[string]any

// Float reads a float parameter.
func (v Values) Float(name string, def float64) float64 {
	if f, ok := asFloat(v[name]); ok {
		return f
	}
	return def
}

// Int reads an int parameter. Float values are rounded to nearest.
func (v Values) Int(name string, def int) int {
	if n, ok := asInt(v[name]); ok {
		return n
	}
	return def
}

// Bool reads a bool parameter.
func (v Values) Bool(name string, def bool) bool {
	if b, ok := v[name].(bool); ok {
		return b
	}
	return def
}

// String reads an enum or free-form string parameter.
func (v Values) String(name, def string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return def
}

// Matrix reads a 2x2 matrix parameter.
func (v Values) Matrix(name string, def geom.Mat2) geom.Mat2 {
	if m, ok := asMatrix(v[name]); ok {
		return m
	}
	return def
}

// Clone returns a copy of the map. Entries are value types, so a shallow
// copy suffices.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		return int(math.Round(x)), true
	case float32:
		return int(math.Round(float64(x))), true
	}
	return 0, false
}

func asMatrix(v any) (geom.Mat2, bool) {
	switch x := v.(type) {
	case geom.Mat2:
		return x, true
	case [2][2]float64:
		return geom.Mat2(x), true
	case [][]float64:
		if len(x) != 2 || len(x[0]) != 2 || len(x[1]) != 2 {
			return geom.Mat2{}, false
		}
		return geom.Mat2{{x[0][0], x[0][1]}, {x[1][0], x[1][1]}}, true
	}
	return geom.Mat2{}, false
}
