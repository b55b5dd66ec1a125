// Package errors provides structured error types for the explorer shell.
//
// Errors are categorized by Phase (where in the module lifecycle the error
// occurred) and Kind (error category). The Error type includes rich context:
// module id, parameter name, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseUpdate, errors.KindOutOfRange).
//		Module("linear_transform_2d").
//		Param("grid_n").
//		Value(99).
//		Detail("value 99 outside [4, 40]").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownModule("no_such_module")
//	err := errors.OutOfRange("grid_n", 99, 4, 40)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
