package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/unitext/transcode/console"
	"github.com/unitext/transcode/errors"
	"github.com/unitext/transcode/transcoder"
)

// ConvertCmd converts UTF-8 input to UTF-16 and prints the code units
// as hex, or writes the raw byte stream with --raw.
type ConvertCmd struct {
	Text  string `kong:"arg,optional,help='Text to convert. Reads stdin when omitted.'"`
	File  string `kong:"help='Read input from a file instead.',type='existingfile'"`
	Raw   bool   `kong:"help='Write raw UTF-16 bytes instead of hex code units.'"`
	Order string `kong:"default='le',enum='le,be',help='Byte order for --raw output.'"`
	BOM   bool   `kong:"help='Prefix --raw output with a byte order mark.'"`
}

func (c *ConvertCmd) Run(logger *zap.Logger) error {
	src, err := c.input()
	if err != nil {
		return err
	}
	logger.Debug("converting", zap.Int("bytes", len(src)))

	units, err := transcoder.FromUTF8(src)
	if err != nil {
		return err
	}

	if c.Raw {
		var order binary.ByteOrder = binary.LittleEndian
		if c.Order == "be" {
			order = binary.BigEndian
		}
		opts := []console.Option{console.WithByteOrder(order)}
		if c.BOM {
			opts = append(opts, console.WithBOM())
		}
		_, err := console.NewWriter(os.Stdout, opts...).WriteUnits(units)
		return err
	}

	for i, u := range units {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%04X", u)
	}
	fmt.Println()
	return nil
}

func (c *ConvertCmd) input() ([]byte, error) {
	switch {
	case c.File != "":
		return os.ReadFile(c.File)
	case c.Text != "":
		return []byte(c.Text), nil
	default:
		if console.StdinIsTerminal() {
			return nil, errors.InvalidInput(errors.PhaseValidate, "no input: pass text, --file, or pipe stdin")
		}
		return io.ReadAll(os.Stdin)
	}
}
