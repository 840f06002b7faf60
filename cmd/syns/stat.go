package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/rmanak/wordvec-syns/synset"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "print per-category graph statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dict",
				Usage:    "knowledge base directory",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "pos",
				Usage: "grammatical categories to process",
				Value: cli.NewStringSlice(synset.All()...),
			},
		},
		Action: runStat,
	}
}

func runStat(c *cli.Context) error {
	poses := c.StringSlice("pos")
	if err := checkPoses(poses); err != nil {
		return err
	}

	reader, err := newClusterReader(c.String("dict"))
	if err != nil {
		return err
	}

	graphs, err := loadGraphs(reader, poses)
	if err != nil {
		return err
	}

	for _, g := range graphs {
		fmt.Printf("📖 %-6s words=%d pairs=%d\n", g.Pos, g.Order(), g.Size())
	}

	return nil
}
