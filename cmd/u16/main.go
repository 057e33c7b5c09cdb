package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/unitext/transcode"
	"github.com/unitext/transcode/console"
)

func main() {
	var cli struct {
		Debug bool `kong:"help='Enable debug logging.'"`

		Convert     ConvertCmd     `kong:"cmd,help='Convert UTF-8 input to UTF-16.'"`
		Demo        DemoCmd        `kong:"cmd,help='Convert and print the classic sample text.'"`
		Interactive InteractiveCmd `kong:"cmd,help='Live conversion viewer.'"`
		Version     VersionCmd     `kong:"cmd,help='Display version information.'"`
	}

	parser := kong.Must(&cli,
		kong.Description("Converts UTF-8 text to UTF-16 code units."),
		kong.UsageOnError())

	app, parseErr := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(parseErr)

	logger := zap.NewNop()
	if cli.Debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	console.SetLogger(logger)

	appErr := app.Run(logger)
	app.FatalIfErrorf(appErr)
}

// VersionCmd prints the library version.
type VersionCmd struct{}

func (c *VersionCmd) Run(_ *zap.Logger) error {
	fmt.Println("u16", transcode.VersionTag())
	return nil
}
