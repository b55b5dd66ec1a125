package param

import (
	"github.com/vizkit/explorer/errors"
	"github.com/vizkit/explorer/geom"
)

// Kind identifies the value type of a parameter.
type Kind string

const (
	KindFloat     Kind = "float"
	KindInt       Kind = "int"
	KindBool      Kind = "bool"
	KindEnum      Kind = "enum"
	KindMatrix2x2 Kind = "matrix2x2"
)

// Spec declares a single tunable parameter: its identity, value kind,
// default, and optional UI hints. Min, Max, and Step are nil when the
// parameter is unbounded.
type Spec struct {
	Name    string
	Kind    Kind
	Default any
	Min     *float64
	Max     *float64
	Step    *float64
	Options []string
	Label   string
}

// Float builds a bounded float spec.
func Float(name, label string, def, min, max, step float64) Spec {
	return Spec{
		Name:    name,
		Kind:    KindFloat,
		Default: def,
		Min:     ptr(min),
		Max:     ptr(max),
		Step:    ptr(step),
		Label:   label,
	}
}

// Int builds a bounded integer spec.
func Int(name, label string, def, min, max int) Spec {
	return Spec{
		Name:    name,
		Kind:    KindInt,
		Default: def,
		Min:     ptr(float64(min)),
		Max:     ptr(float64(max)),
		Step:    ptr(1),
		Label:   label,
	}
}

// Bool builds a boolean spec.
func Bool(name, label string, def bool) Spec {
	return Spec{
		Name:    name,
		Kind:    KindBool,
		Default: def,
		Label:   label,
	}
}

// Enum builds a string choice spec. The default must be one of the options.
func Enum(name, label, def string, options ...string) Spec {
	return Spec{
		Name:    name,
		Kind:    KindEnum,
		Default: def,
		Options: options,
		Label:   label,
	}
}

// Matrix builds a 2x2 matrix spec with per-cell bounds.
func Matrix(name, label string, def geom.Mat2, min, max, step float64) Spec {
	return Spec{
		Name:    name,
		Kind:    KindMatrix2x2,
		Default: def,
		Min:     ptr(min),
		Max:     ptr(max),
		Step:    ptr(step),
		Label:   label,
	}
}

func ptr(v float64) *float64 { return &v }

// DisplayLabel returns the label to show next to the control, falling back
// to the parameter name.
func (s Spec) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// MinOr returns the lower bound, or def when the spec has none.
func (s Spec) MinOr(def float64) float64 {
	if s.Min != nil {
		return *s.Min
	}
	return def
}

// MaxOr returns the upper bound, or def when the spec has none.
func (s Spec) MaxOr(def float64) float64 {
	if s.Max != nil {
		return *s.Max
	}
	return def
}

// StepOr returns the step increment, or def when the spec has none.
func (s Spec) StepOr(def float64) float64 {
	if s.Step != nil {
		return *s.Step
	}
	return def
}

// Validate checks the spec for internal consistency.
func (s Spec) Validate() error {
	if s.Name == "" {
		return errors.InvalidParam(s.Name, "empty parameter name")
	}

	switch s.Kind {
	case KindFloat, KindInt, KindBool, KindEnum, KindMatrix2x2:
	default:
		return errors.InvalidParam(s.Name, "unknown kind "+string(s.Kind))
	}

	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		return errors.New(errors.PhaseSchema, errors.KindInvalidParam).
			Param(s.Name).
			Detail("min %g greater than max %g", *s.Min, *s.Max).
			Build()
	}
	if s.Step != nil && *s.Step <= 0 {
		return errors.New(errors.PhaseSchema, errors.KindInvalidParam).
			Param(s.Name).
			Value(*s.Step).
			Detail("step must be positive").
			Build()
	}

	switch s.Kind {
	case KindFloat:
		if _, ok := asFloat(s.Default); !ok {
			return errors.TypeMismatch(errors.PhaseSchema, s.Name, "float default", s.Default)
		}
	case KindInt:
		if _, ok := asInt(s.Default); !ok {
			return errors.TypeMismatch(errors.PhaseSchema, s.Name, "int default", s.Default)
		}
	case KindBool:
		if _, ok := s.Default.(bool); !ok {
			return errors.TypeMismatch(errors.PhaseSchema, s.Name, "bool default", s.Default)
		}
	case KindEnum:
		def, ok := s.Default.(string)
		if !ok {
			return errors.TypeMismatch(errors.PhaseSchema, s.Name, "string default", s.Default)
		}
		if len(s.Options) == 0 {
			return errors.InvalidParam(s.Name, "enum without options")
		}
		found := false
		for _, opt := range s.Options {
			if opt == def {
				found = true
				break
			}
		}
		if !found {
			return errors.New(errors.PhaseSchema, errors.KindInvalidParam).
				Param(s.Name).
				Value(def).
				Detail("default %q not among options", def).
				Build()
		}
	case KindMatrix2x2:
		if _, ok := asMatrix(s.Default); !ok {
			return errors.TypeMismatch(errors.PhaseSchema, s.Name, "matrix default", s.Default)
		}
	}

	if s.Min != nil || s.Max != nil {
		if v, ok := asFloat(s.Default); ok {
			if s.Min != nil && v < *s.Min || s.Max != nil && v > *s.Max {
				return errors.OutOfRange(s.Name, v, s.MinOr(v), s.MaxOr(v))
			}
		}
	}
	return nil
}

// Schema is the ordered parameter list a module publishes.
type Schema []Spec

// Validate checks every spec and rejects duplicate names.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, spec := range s {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, dup := seen[spec.Name]; dup {
			return errors.New(errors.PhaseSchema, errors.KindInvalidSchema).
				Param(spec.Name).
				Detail("duplicate parameter name").
				Build()
		}
		seen[spec.Name] = struct{}{}
	}
	return nil
}

// Defaults builds the value map a fresh form would report.
func (s Schema) Defaults() Values {
	out := make(Values, len(s))
	for _, spec := range s {
		out[spec.Name] = spec.Default
	}
	return out
}

// Find returns the spec with the given name.
func (s Schema) Find(name string) (Spec, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}
