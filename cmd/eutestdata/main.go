// Command eutestdata generates and checks synthetic IBANs and national
// personal identification codes from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	g := &Globals{Out: os.Stdout, Err: os.Stderr}
	ctx := kong.Parse(&cli,
		kong.Name("eutestdata"),
		kong.Description("Synthetic IBANs and personal ID codes for test fixtures"),
		kong.UsageOnError(),
		kong.Bind(g),
	)
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	g.init(level)
	ctx.FatalIfErrorf(ctx.Run(g))
}
