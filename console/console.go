package console

import (
	"encoding/binary"
	"io"

	"go.uber.org/zap"

	"github.com/unitext/transcode/errors"
	"github.com/unitext/transcode/transcoder"
)

// BOM is the byte order mark emitted ahead of a UTF-16 stream.
const BOM = 0xFEFF

// Option configures a Writer.
type Option func(*Writer)

// WithByteOrder sets the serialization order of the 16-bit units.
// The default is little-endian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(cw *Writer) {
		cw.order = order
	}
}

// WithBOM emits a byte order mark before the first unit written.
func WithBOM() Option {
	return func(cw *Writer) {
		cw.bom = true
	}
}

// Writer serializes UTF-16 code units to an underlying byte stream.
// It is not safe for concurrent use.
type Writer struct {
	w        io.Writer
	order    binary.ByteOrder
	bom      bool
	wroteBOM bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	cw := &Writer{w: w, order: binary.LittleEndian}
	for _, opt := range opts {
		opt(cw)
	}
	return cw
}

// WriteUnits serializes units in the configured byte order and writes
// them to the underlying stream in a single call. It returns the
// number of bytes written.
func (cw *Writer) WriteUnits(units []uint16) (int, error) {
	bufp := getBuf()
	defer putBuf(bufp)
	buf := *bufp

	var tmp [2]byte
	if cw.bom && !cw.wroteBOM {
		cw.order.PutUint16(tmp[:], BOM)
		buf = append(buf, tmp[0], tmp[1])
	}
	for _, u := range units {
		cw.order.PutUint16(tmp[:], u)
		buf = append(buf, tmp[0], tmp[1])
	}
	*bufp = buf

	n, err := cw.w.Write(buf)
	if err != nil {
		return n, errors.Wrap(errors.PhaseOutput, errors.KindInvalidInput, err, "write code units")
	}
	if cw.bom {
		cw.wroteBOM = true
	}
	Logger().Debug("wrote UTF-16 units",
		zap.Int("units", len(units)),
		zap.Int("bytes", n))
	return n, nil
}

// WriteString converts s through the transcoder and writes the
// resulting units. Invalid UTF-8 fails before anything reaches the
// stream.
func (cw *Writer) WriteString(s string) (int, error) {
	units, err := transcoder.FromString(s)
	if err != nil {
		return 0, err
	}
	return cw.WriteUnits(units)
}

// Units reinterprets a UTF-16 byte stream as code units in the given
// byte order. The stream must contain a whole number of units.
func Units(data []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, errors.OddLength(len(data))
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = order.Uint16(data[i*2:])
	}
	return units, nil
}
