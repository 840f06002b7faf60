package main

import (
	cli "github.com/urfave/cli/v2"

	"github.com/rmanak/wordvec-syns/query"
	"github.com/rmanak/wordvec-syns/synset"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive synonym lookup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dict",
				Usage:    "knowledge base directory",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "pos",
				Usage: "grammatical categories to load",
				Value: cli.NewStringSlice(synset.All()...),
			},
		},
		Action: runQuery,
	}
}

func runQuery(c *cli.Context) error {
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

	return query.NewHandler(graphs).Run()
}
