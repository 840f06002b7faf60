package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
)

// Set via -ldflags at release time.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	app := &cli.App{
		Name:  "syns",
		Usage: "build labeled synonym word-pair datasets from a lexical knowledge base",
		Commands: []*cli.Command{
			buildCommand(),
			statCommand(),
			queryCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "syns: %v\n", err)
		os.Exit(1)
	}
}
