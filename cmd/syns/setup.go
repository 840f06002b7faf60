package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"

	"github.com/rmanak/wordvec-syns/graph"
	"github.com/rmanak/wordvec-syns/storage"
	"github.com/rmanak/wordvec-syns/storage/csvgz"
	"github.com/rmanak/wordvec-syns/storage/filesystem"
	"github.com/rmanak/wordvec-syns/storage/sqlite/zombiezen"
	"github.com/rmanak/wordvec-syns/storage/wordnet"
	"github.com/rmanak/wordvec-syns/synset"
)

// newClusterReader picks the knowledge-base backend for dir: a WordNet
// dict directory when the database files are present, a directory of
// <pos>.json cluster files otherwise.
func newClusterReader(dir string) (storage.ClusterReader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("knowledge base not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("knowledge base is not a directory: %s", dir)
	}

	if wordnet.IsDictDir(dir) {
		return wordnet.NewReader(dir), nil
	}

	return filesystem.NewClusterStore(dir), nil
}

// newRecordWriter picks the export backend from the output path: a
// sqlite database for .db/.sqlite, a gzip-compressed CSV otherwise.
func newRecordWriter(path string) (storage.RecordWriter, error) {
	switch filepath.Ext(path) {
	case ".db", ".sqlite":
		return zombiezen.NewPairStore(path)
	}

	return csvgz.NewWriter(path)
}

// loadGraphs builds one synonym graph per requested category, with a
// progress bar over the categories.
func loadGraphs(reader storage.ClusterReader, poses []string) ([]*graph.Graph, error) {
	uiprogress.Start()
	bar := uiprogress.AddBar(len(poses))
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if b.Current() == 0 {
			return ""
		}
		return poses[b.Current()-1]
	})

	graphs := make([]*graph.Graph, 0, len(poses))
	for _, pos := range poses {
		clusters, err := reader.Clusters(pos)
		if err != nil {
			uiprogress.Stop()
			return nil, fmt.Errorf("failed to load %s clusters: %w", pos, err)
		}

		graphs = append(graphs, graph.Build(pos, clusters))
		bar.Incr()
	}
	uiprogress.Stop()

	return graphs, nil
}

// checkPoses validates the category list from the command line.
func checkPoses(poses []string) error {
	for _, pos := range poses {
		if !synset.Valid(pos) {
			return fmt.Errorf("unknown category %q (want one of %s)", pos, strings.Join(synset.All(), ", "))
		}
	}
	return nil
}

// parseWeights parses repeated "pos=multiplier" flags. Unlisted
// categories default to 1.0.
func parseWeights(entries []string) (map[string]float64, error) {
	weights := map[string]float64{}
	for _, pos := range synset.All() {
		weights[pos] = 1.0
	}

	for _, entry := range entries {
		pos, val, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("bad weight %q (want pos=multiplier)", entry)
		}
		if !synset.Valid(pos) {
			return nil, fmt.Errorf("bad weight %q: unknown category %q", entry, pos)
		}

		m, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %w", entry, err)
		}

		weights[pos] = m
	}

	return weights, nil
}
