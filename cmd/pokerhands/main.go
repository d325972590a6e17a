package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the command line interface, parsed by kong.
type CLI struct {
	Globals

	Score    ScoreCmd    `cmd:"" help:"Score a file of rounds"`
	Compare  CompareCmd  `cmd:"" help:"Compare two hands"`
	Classify ClassifyCmd `cmd:"" help:"Print the category of a hand"`
	Generate GenerateCmd `cmd:"" help:"Deal random rounds in the round file format"`
	History  HistoryCmd  `cmd:"" help:"List saved tallies"`
	Serve    ServeCmd    `cmd:"" help:"Serve the evaluator over websockets"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Two-player five card poker hand comparator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
