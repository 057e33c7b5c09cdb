// Package errors provides structured error types for the transcode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category), and carry the numeric diagnostic Code of the conversion
// primitive together with the input offset of the offending sequence.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMeasure, errors.KindConversionFailed).
//		Code(errors.CodeInvalidData).
//		Detail("cannot determine required UTF-16 length").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidUTF8(errors.PhaseMeasure, 2, data[2:])
//	err := errors.Overflow(len(data), math.MaxInt32)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
