package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the module lifecycle the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // module registration
	PhaseActivate Phase = "activate" // module activation
	PhaseSchema   Phase = "schema"   // parameter schema validation
	PhaseSetup    Phase = "setup"    // module setup
	PhaseUpdate   Phase = "update"   // parameter application
	PhaseTeardown Phase = "teardown" // module teardown
	PhaseRender   Phase = "render"   // scene rendering and export
	PhaseConfig   Phase = "config"   // environment configuration
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownModule   Kind = "unknown_module"
	KindDuplicateModule Kind = "duplicate_module"
	KindInvalidSchema   Kind = "invalid_schema"
	KindInvalidParam    Kind = "invalid_param"
	KindTypeMismatch    Kind = "type_mismatch"
	KindOutOfRange      Kind = "out_of_range"
	KindInvalidValue    Kind = "invalid_value"
	KindNoViewer        Kind = "no_viewer"
	KindNotActive       Kind = "not_active"
	KindIO              Kind = "io"
)

// Error is the structured error type used throughout the explorer
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Module string
	Param  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Module != "" || e.Param != "" {
		b.WriteString(" at ")
		if e.Module != "" && e.Param != "" {
			b.WriteString(e.Module)
			b.WriteByte('.')
			b.WriteString(e.Param)
		} else if e.Module != "" {
			b.WriteString(e.Module)
		} else {
			b.WriteString(e.Param)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Module sets the module id the error belongs to
func (b *Builder) Module(id string) *Builder {
	b.err.Module = id
	return b
}

// Param sets the parameter name the error belongs to
func (b *Builder) Param(name string) *Builder {
	b.err.Param = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownModule creates an error for an id with no registered factory
func UnknownModule(id string) *Error {
	return &Error{
		Phase:  PhaseActivate,
		Kind:   KindUnknownModule,
		Module: id,
		Detail: fmt.Sprintf("module %q not registered", id),
	}
}

// DuplicateModule creates an error for a second registration under one id
func DuplicateModule(id string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindDuplicateModule,
		Module: id,
		Detail: fmt.Sprintf("module %q already registered", id),
	}
}

// InvalidSchema creates an error for a malformed parameter schema
func InvalidSchema(module, detail string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidSchema,
		Module: module,
		Detail: detail,
	}
}

// InvalidParam creates an error for a malformed parameter spec
func InvalidParam(param, detail string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidParam,
		Param:  param,
		Detail: detail,
	}
}

// TypeMismatch creates an error for a value of the wrong parameter kind
func TypeMismatch(phase Phase, param, want string, got any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Param:  param,
		Detail: fmt.Sprintf("want %s, got %T", want, got),
		Value:  got,
	}
}

// OutOfRange creates an error for a value outside its declared bounds
func OutOfRange(param string, value any, min, max float64) *Error {
	return &Error{
		Phase:  PhaseUpdate,
		Kind:   KindOutOfRange,
		Param:  param,
		Detail: fmt.Sprintf("value %v outside [%g, %g]", value, min, max),
		Value:  value,
	}
}

// InvalidValue creates an error for a value that cannot be parsed or applied
func InvalidValue(phase Phase, param string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Param:  param,
		Detail: detail,
		Value:  value,
	}
}

// NoViewer creates an error for a module used before setup wired a viewer
func NoViewer(module string) *Error {
	return &Error{
		Phase:  PhaseSetup,
		Kind:   KindNoViewer,
		Module: module,
		Detail: "no viewer attached",
	}
}

// NotActive creates an error for an operation that needs an active module
func NotActive(op string) *Error {
	return &Error{
		Phase:  PhaseUpdate,
		Kind:   KindNotActive,
		Detail: fmt.Sprintf("%s requires an active module", op),
	}
}

// Setup wraps a module setup failure
func Setup(module string, cause error) *Error {
	return &Error{
		Phase:  PhaseSetup,
		Kind:   KindInvalidValue,
		Module: module,
		Detail: "module setup",
		Cause:  cause,
	}
}

// Update wraps a parameter application failure
func Update(module string, cause error) *Error {
	return &Error{
		Phase:  PhaseUpdate,
		Kind:   KindInvalidValue,
		Module: module,
		Detail: "apply parameters",
		Cause:  cause,
	}
}

// Teardown wraps a module teardown failure
func Teardown(module string, cause error) *Error {
	return &Error{
		Phase:  PhaseTeardown,
		Kind:   KindInvalidValue,
		Module: module,
		Detail: "module teardown",
		Cause:  cause,
	}
}

// Export wraps a snapshot export failure
func Export(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseRender,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}

// Config wraps an environment configuration failure
func Config(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidValue,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
