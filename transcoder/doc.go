// Package transcoder converts text between UTF-8 and UTF-16.
//
// # Conversion Protocol
//
// Output size is unknown until the input has been decoded, so both
// directions follow the measure-then-fill protocol:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Phase 1  measure: scan + strict validation → unit count  │
//	│ Phase 2  fill:    allocate exactly, scan again, write    │
//	└──────────────────────────────────────────────────────────┘
//
// The destination is allocated once, sized exactly to the measured
// length, and handed to the caller. On any failure no output is
// observable.
//
// # Strictness
//
// Validation never substitutes U+FFFD. Rejected on the UTF-8 side:
//
//	Overlong forms          0xC0 0xAF
//	Stray continuations     0x80
//	Invalid lead bytes      0xFF
//	Encoded surrogates      0xED 0xA0 0x80
//	Truncated tails         0xE6 0x97 (3-byte lead cut short)
//
// Rejected on the UTF-16 side: unpaired or reversed surrogate halves.
//
// # Key Functions
//
//	FromUTF8   - UTF-8 bytes → UTF-16 code units
//	FromString - string → UTF-16 code units
//	ToUTF8     - UTF-16 code units → UTF-8 bytes
//	StringFromUTF16 - UTF-16 code units → string
//
// # Thread Safety
//
// The package holds no state. All functions are pure and safe for
// concurrent use on independent inputs; results never share memory
// with inputs or with each other.
//
// # Error Handling
//
// Errors use the structured types from the errors package and carry
// the primitive's diagnostic code and the offset of the offending
// sequence:
//
//	[measure] invalid_utf8 at index 2: invalid UTF-8 sequence in input: ff (code 1113)
//	[validate] overflow: input length 3000000000 exceeds the primitive's signed 32-bit limit 2147483647
package transcoder
