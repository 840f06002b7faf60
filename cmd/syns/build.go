package main

import (
	"fmt"
	"math/rand"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/rmanak/wordvec-syns/pair"
	"github.com/rmanak/wordvec-syns/sample"
	"github.com/rmanak/wordvec-syns/split"
	"github.com/rmanak/wordvec-syns/synset"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "build the labeled word-pair dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dict",
				Usage:    "knowledge base directory (WordNet dict dir or JSON cluster dir)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output file (.db/.sqlite for sqlite, anything else for gzip CSV)",
				Value: "dataset.csv.gz",
			},
			&cli.StringSliceFlag{
				Name:  "pos",
				Usage: "grammatical categories to process",
				Value: cli.NewStringSlice(synset.All()...),
			},
			&cli.Float64Flag{
				Name:  "train-frac",
				Usage: "target fraction of vertices in the train split",
				Value: 0.9,
			},
			&cli.StringSliceFlag{
				Name:  "weight",
				Usage: "per-category train threshold multiplier, as pos=multiplier",
			},
			&cli.IntFlag{
				Name:  "negatives",
				Usage: "negative samples per positive pair",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "min-dist",
				Usage: "minimum edit distance between the words of a positive pair",
				Value: 2,
			},
			&cli.BoolFlag{
				Name:  "unique-negatives",
				Usage: "draw negatives without replacement",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed",
				Value: 42,
			},
		},
		Action: runBuild,
	}
}

func runBuild(c *cli.Context) error {
	poses := c.StringSlice("pos")
	if err := checkPoses(poses); err != nil {
		return err
	}

	weights, err := parseWeights(c.StringSlice("weight"))
	if err != nil {
		return err
	}

	frac := c.Float64("train-frac")
	if frac <= 0 || frac > 1 {
		return fmt.Errorf("train-frac must be in (0, 1], got %g", frac)
	}

	reader, err := newClusterReader(c.String("dict"))
	if err != nil {
		return err
	}

	graphs, err := loadGraphs(reader, poses)
	if err != nil {
		return err
	}

	out := c.String("out")
	writer, err := newRecordWriter(out)
	if err != nil {
		return err
	}

	// One seeded source for the whole run; categories draw from it in
	// a fixed order, so the full output is reproducible.
	rnd := rand.New(rand.NewSource(c.Int64("seed")))

	sampler := sample.New(sample.Config{
		Negatives:   c.Int("negatives"),
		MinDistance: c.Int("min-dist"),
		Replacement: !c.Bool("unique-negatives"),
	}, rnd)

	counts := pair.Counts{}
	var total sample.Stats

	for _, g := range graphs {
		sp := split.New(g, frac, weights[g.Pos])

		fmt.Printf("📖 %-6s words=%d pairs=%d train=%d test=%d contaminated=%d\n",
			g.Pos, g.Order(), g.Size(), len(sp.TrainEdges), len(sp.TestEdges), sp.Intersection.Len())

		if g.Size() > 0 && len(sp.TestEdges) == 0 {
			fmt.Fprintf(os.Stderr, "⚠  %s: test split is empty (train-frac=%g weight=%g)\n", g.Pos, frac, weights[g.Pos])
		}

		st, err := sampler.Emit(g, sp, func(r pair.Record) error {
			counts.Add(r)
			return writer.Write(r)
		})
		if err != nil {
			writer.Close()
			return fmt.Errorf("sampling %s: %w", g.Pos, err)
		}

		total.Positives += st.Positives
		total.Negatives += st.Negatives
		total.SkippedClose += st.SkippedClose
		total.SkippedLeaky += st.SkippedLeaky
		total.EmptyPool += st.EmptyPool
	}

	if err := writer.Close(); err != nil {
		return err
	}

	fmt.Println()
	for _, row := range counts.Rows() {
		fmt.Println(row)
	}
	fmt.Printf("\ndropped: %d near-spelling pairs, %d contaminated pairs, %d empty candidate pools\n",
		total.SkippedClose, total.SkippedLeaky, total.EmptyPool)
	fmt.Printf("Successfully wrote %d records to %s\n", counts.Total(), out)

	return nil
}
