package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/unitext/transcode/transcoder"
)

// DemoCmd converts the sample strings of the classic "print UTF-8 to
// the console" demonstration and shows their UTF-16 code units.
type DemoCmd struct{}

func (c *DemoCmd) Run(logger *zap.Logger) error {
	// Japanese name for Japan, encoded in UTF-8
	japan := []byte{
		0xE6, 0x97, 0xA5, // U+65E5
		0xE6, 0x9C, 0xAC, // U+672C
	}

	for _, sample := range [][]byte{[]byte("Japan"), japan} {
		units, err := transcoder.FromUTF8(sample)
		if err != nil {
			return err
		}
		logger.Debug("converted sample",
			zap.ByteString("input", sample),
			zap.Int("units", len(units)))

		parts := make([]string, len(units))
		for i, u := range units {
			parts[i] = fmt.Sprintf("%04X", u)
		}
		fmt.Printf("%-8s %s\n", textStyle.Render(string(sample)), unitStyle.Render(strings.Join(parts, " ")))
	}
	return nil
}
