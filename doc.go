// Package transcode provides strict conversion between UTF-8 and UTF-16.
//
// The conversion core validates its input: malformed byte sequences are
// rejected with a typed error rather than silently replaced with U+FFFD.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	transcode/           Root package with version information
//	├── transcoder/      UTF-8 ⇄ UTF-16 conversion core
//	├── console/         Byte-order serialization and terminal helpers
//	├── errors/          Structured error types for diagnostics
//	└── cmd/u16/         Demonstration command-line tool
//
// # Quick Start
//
// Convert a UTF-8 byte sequence to UTF-16 code units:
//
//	units, err := transcoder.FromUTF8([]byte("日本"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// units == []uint16{0x65E5, 0x672C}
//
// And back:
//
//	data, err := transcoder.ToUTF8(units)
//
// # Error Handling
//
// All failures are returned as *errors.Error values carrying the
// conversion phase, an error kind, and the diagnostic code reported by
// the conversion primitive:
//
//	[measure] invalid_utf8 at byte 2: invalid UTF-8 sequence in input (code 1113)
//
// See the errors package for the full taxonomy.
package transcode
