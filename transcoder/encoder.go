package transcoder

import (
	"math"

	"github.com/unitext/transcode/errors"
)

// MaxInput is the largest input length accepted, in bytes for FromUTF8
// and in units for ToUTF8. The conversion primitive sizes its work
// with signed 32-bit arithmetic; anything larger risks a sign-flipped
// length reaching the scan.
const MaxInput = math.MaxInt32

// FromUTF8 converts a UTF-8 byte sequence into a freshly allocated
// sequence of UTF-16 code units.
//
// Validation is strict: any malformed byte sequence fails the
// conversion with a KindInvalidUTF8 error instead of producing U+FFFD.
// Empty input yields an empty output without invoking the conversion
// primitive. src is never mutated; the result shares no memory with it.
func FromUTF8(src []byte) ([]uint16, error) {
	return fromUTF8Bounded(src, MaxInput)
}

// FromString is FromUTF8 for a string input.
func FromString(s string) ([]uint16, error) {
	return FromUTF8([]byte(s))
}

// fromUTF8Bounded is FromUTF8 with an explicit length limit. Tests use
// it to exercise the overflow guard without multi-gigabyte inputs.
func fromUTF8Bounded(src []byte, max int) ([]uint16, error) {
	// The primitive treats zero-length requests as failures, so the
	// empty input short-circuits before reaching it.
	if len(src) == 0 {
		return []uint16{}, nil
	}

	if len(src) > max {
		return nil, errors.Overflow(len(src), max)
	}

	// Phase 1: measure the required destination length.
	n, code, off := widen(src, nil)
	if code != errors.CodeNone {
		if code == errors.CodeNoTranslation {
			return nil, errors.InvalidUTF8(errors.PhaseMeasure, off, src[off:])
		}
		return nil, errors.New(errors.PhaseMeasure, errors.KindConversionFailed).
			Code(code).
			Offset(off).
			Detail("cannot determine required UTF-16 length").
			Build()
	}

	// Phase 2: allocate exactly and fill.
	dst := make([]uint16, n)
	written, code, off := widen(src, dst)
	if code != errors.CodeNone {
		// Unreachable while src is stable between the two scans, but a
		// caller mutating src concurrently must not observe partial
		// output, so the fill failure keeps its own classification.
		if code == errors.CodeNoTranslation {
			return nil, errors.InvalidUTF8(errors.PhaseFill, off, src[off:])
		}
		return nil, errors.New(errors.PhaseFill, errors.KindConversionFailed).
			Code(code).
			Offset(off).
			Detail("cannot convert from UTF-8 to UTF-16").
			Build()
	}
	if written != n {
		return nil, errors.SizeMismatch(n, written)
	}

	return dst, nil
}
