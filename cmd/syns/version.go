package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Printf("syns version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
