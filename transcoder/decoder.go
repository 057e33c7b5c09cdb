package transcoder

import (
	"github.com/unitext/transcode/errors"
)

// ToUTF8 converts a sequence of UTF-16 code units into a freshly
// allocated UTF-8 byte sequence.
//
// Validation is strict: an unpaired or reversed surrogate half fails
// the conversion with a KindInvalidUTF16 error. Empty input yields an
// empty output without invoking the conversion primitive.
func ToUTF8(units []uint16) ([]byte, error) {
	return toUTF8Bounded(units, MaxInput)
}

// StringFromUTF16 converts UTF-16 code units to a Go string.
func StringFromUTF16(units []uint16) (string, error) {
	b, err := ToUTF8(units)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toUTF8Bounded(units []uint16, max int) ([]byte, error) {
	if len(units) == 0 {
		return []byte{}, nil
	}

	if len(units) > max {
		return nil, errors.Overflow(len(units), max)
	}

	n, code, off := narrow(units, nil)
	if code != errors.CodeNone {
		return nil, decodeError(code, off, units)
	}

	dst := make([]byte, n)
	written, code, off := narrow(units, dst)
	if code != errors.CodeNone {
		return nil, decodeError(code, off, units)
	}
	if written != n {
		return nil, errors.SizeMismatch(n, written)
	}

	return dst, nil
}

func decodeError(code errors.Code, off int, units []uint16) error {
	if code == errors.CodeNoTranslation {
		return errors.InvalidUTF16(off, units[off])
	}
	return errors.New(errors.PhaseDecode, errors.KindConversionFailed).
		Code(code).
		Offset(off).
		Detail("cannot convert from UTF-16 to UTF-8").
		Build()
}
