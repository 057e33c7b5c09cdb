package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in a conversion the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // pre-conversion input checks
	PhaseMeasure  Phase = "measure"  // output length measurement
	PhaseFill     Phase = "fill"     // destination buffer fill
	PhaseDecode   Phase = "decode"   // UTF-16 to UTF-8
	PhaseOutput   Phase = "output"   // byte-stream serialization
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindInvalidUTF16     Kind = "invalid_utf16"
	KindOverflow         Kind = "overflow"
	KindConversionFailed Kind = "conversion_failed"
	KindOddLength        Kind = "odd_length"
	KindInvalidInput     Kind = "invalid_input"
)

// Code is the numeric diagnostic reported by the conversion primitive.
// The values follow the classic last-error numbering of text-conversion
// subsystems, but here they travel inside the error value instead of a
// thread-local side channel.
type Code uint32

const (
	CodeNone               Code = 0
	CodeInvalidData        Code = 13   // primitive failed for a non-translation reason
	CodeInsufficientBuffer Code = 122  // destination buffer smaller than measured
	CodeNoTranslation      Code = 1113 // input has no valid translation
)

// NoOffset marks an error that is not tied to a position in the input.
const NoOffset = -1

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Code   Code
	Offset int // byte or unit index of the offending sequence, NoOffset if unknown
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset > NoOffset {
		b.WriteString(" at index ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != CodeNone {
		b.WriteString(" (code ")
		b.WriteString(strconv.FormatUint(uint64(e.Code), 10))
		b.WriteByte(')')
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
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Code sets the primitive diagnostic code
func (b *Builder) Code(c Code) *Builder {
	b.err.Code = c
	return b
}

// Offset sets the input position of the failure
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// InvalidUTF8 creates an invalid UTF-8 error for the sequence starting
// at byte offset. A short hex preview of the offending bytes is
// included in the detail.
func InvalidUTF8(phase Phase, offset int, data []byte) *Error {
	preview := data
	if len(preview) > 8 {
		preview = preview[:8]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Code:   CodeNoTranslation,
		Offset: offset,
		Detail: fmt.Sprintf("invalid UTF-8 sequence in input: % x", preview),
	}
}

// InvalidUTF16 creates an error for an unpaired or reversed surrogate
// at the given unit offset.
func InvalidUTF16(offset int, unit uint16) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF16,
		Code:   CodeNoTranslation,
		Offset: offset,
		Detail: fmt.Sprintf("unpaired surrogate 0x%04X", unit),
	}
}

// Overflow creates an error for input too long to pass to the
// conversion primitive.
func Overflow(length, max int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindOverflow,
		Offset: NoOffset,
		Detail: fmt.Sprintf("input length %d exceeds the primitive's signed 32-bit limit %d", length, max),
	}
}

// SizeMismatch creates an error for a fill result inconsistent with
// the preceding measurement.
func SizeMismatch(measured, written int) *Error {
	return &Error{
		Phase:  PhaseFill,
		Kind:   KindConversionFailed,
		Code:   CodeInvalidData,
		Offset: NoOffset,
		Detail: fmt.Sprintf("fill result inconsistent with measurement: wrote %d, measured %d", written, measured),
	}
}

// OddLength creates an error for a UTF-16 byte stream whose length is
// not a whole number of 16-bit units.
func OddLength(n int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOddLength,
		Offset: NoOffset,
		Detail: fmt.Sprintf("byte stream of length %d is not a whole number of 16-bit units", n),
	}
}

// InvalidInput creates a generic invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
