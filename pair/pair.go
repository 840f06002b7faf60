package pair

import (
	"fmt"
	"sort"
)

// Split partition names.
const (
	Train = "train"
	Test  = "test"
)

// Record is one labeled word pair of the output dataset.
//
// Synonym is 1 when (Word1, Word2) is an edge of the category's synonym
// graph, 0 when Word2 was negative-sampled for Word1. Records are
// immutable once emitted.
type Record struct {
	Word1   string
	Word2   string
	Synonym int
	Pos     string
	Split   string
}

// CountKey groups records for the sanity report printed before export.
type CountKey struct {
	Pos     string
	Split   string
	Synonym int
}

// Counts aggregates emitted records by (pos, split, synonym).
type Counts map[CountKey]int

func (c Counts) Add(r Record) {
	c[CountKey{Pos: r.Pos, Split: r.Split, Synonym: r.Synonym}]++
}

// Rows returns the aggregated counts as printable lines in a fixed order
// (pos, then split, then label), so two identical runs report identically.
func (c Counts) Rows() []string {
	keys := make([]CountKey, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Pos != keys[j].Pos {
			return keys[i].Pos < keys[j].Pos
		}
		if keys[i].Split != keys[j].Split {
			return keys[i].Split < keys[j].Split
		}
		return keys[i].Synonym < keys[j].Synonym
	})

	rows := make([]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, fmt.Sprintf("%-6s %-6s synonym=%d %8d", k.Pos, k.Split, k.Synonym, c[k]))
	}

	return rows
}

// Total returns the number of aggregated records.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
