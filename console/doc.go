// Package console serializes UTF-16 code units to byte streams and
// inspects the terminals attached to the process.
//
// The conversion core returns code units; a console or file wants
// bytes in a definite order. Writer performs that serialization with a
// configurable byte order and an optional byte order mark, the
// stream-level counterpart of reconfiguring a console for wide output:
//
//	cw := console.NewWriter(os.Stdout, console.WithByteOrder(binary.LittleEndian), console.WithBOM())
//	cw.WriteString("日本")
//
// Units goes the other way, reinterpreting a UTF-16 byte stream as
// code units for the decoder.
package console
