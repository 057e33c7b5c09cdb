package transcoder

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/unitext/transcode/errors"
)

// Surrogate ranges and the first code point needing a pair.
const (
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

// widen is the conversion primitive shared by the measure and fill
// phases of FromUTF8. With a nil dst it only measures: it scans src
// and returns the exact number of UTF-16 code units the decoded text
// requires. With a non-nil dst it also writes the units and returns
// the number written.
//
// Validation is strict in both modes. The first malformed sequence
// stops the scan; the primitive then returns a zero count, a nonzero
// diagnostic code, and the byte offset of the failure. The diagnostic
// is part of the return value, never thread-local state.
func widen(src []byte, dst []uint16) (int, errors.Code, int) {
	n := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			// Overlong form, stray continuation byte, invalid lead,
			// encoded surrogate half, or truncated tail.
			return 0, errors.CodeNoTranslation, i
		}
		units := 1
		if r >= surrSelf {
			units = 2
		}
		if dst != nil {
			if n+units > len(dst) {
				return 0, errors.CodeInsufficientBuffer, i
			}
			if units == 2 {
				hi, lo := utf16.EncodeRune(r)
				dst[n] = uint16(hi)
				dst[n+1] = uint16(lo)
			} else {
				dst[n] = uint16(r)
			}
		}
		n += units
		i += size
	}
	return n, errors.CodeNone, errors.NoOffset
}

// narrow is the reverse primitive used by ToUTF8: UTF-16 code units to
// UTF-8 bytes, same measure/fill contract as widen. Offsets are unit
// indices, not byte positions.
func narrow(units []uint16, dst []byte) (int, errors.Code, int) {
	n := 0
	for i := 0; i < len(units); {
		var r rune
		switch u := units[i]; {
		case u < surr1, surr3 <= u:
			r = rune(u)
			i++
		case u < surr2:
			// High half; it must be followed by a low half.
			if i+1 >= len(units) || units[i+1] < surr2 || surr3 <= units[i+1] {
				return 0, errors.CodeNoTranslation, i
			}
			r = utf16.DecodeRune(rune(u), rune(units[i+1]))
			i += 2
		default:
			// Low half with no preceding high half.
			return 0, errors.CodeNoTranslation, i
		}
		size := utf8.RuneLen(r)
		if dst != nil {
			if n+size > len(dst) {
				return 0, errors.CodeInsufficientBuffer, i
			}
			utf8.EncodeRune(dst[n:], r)
		}
		n += size
	}
	return n, errors.CodeNone, errors.NoOffset
}
