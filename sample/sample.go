// Package sample turns a synonym graph and its split into labeled
// word-pair records.
package sample

import (
	"math/rand"

	"github.com/xrash/smetrics"

	"github.com/rmanak/wordvec-syns/graph"
	"github.com/rmanak/wordvec-syns/pair"
	"github.com/rmanak/wordvec-syns/split"
)

// Config carries the sampling knobs.
type Config struct {
	// Negatives is the number of label=0 records drawn per retained
	// positive edge.
	Negatives int

	// MinDistance is the minimum Levenshtein distance between the two
	// words of a positive pair. Pairs below it are spelling variants
	// ("run"/"runs"), not a semantic signal, and are dropped entirely.
	MinDistance int

	// Replacement selects drawing with replacement (repeats possible
	// across the k draws). Set false to deduplicate negatives per
	// positive edge.
	Replacement bool
}

// Stats are the per-run diagnostics of one Emit pass.
type Stats struct {
	Positives int
	Negatives int

	// SkippedClose counts edges dropped by the edit-distance filter.
	SkippedClose int

	// SkippedLeaky counts edges dropped because an endpoint sits in
	// the split intersection.
	SkippedLeaky int

	// EmptyPool counts positives emitted without negatives because no
	// candidate word was left after removing the anchor's synonyms.
	EmptyPool int
}

// Sampler emits pair records for a graph and its split. The random
// source is injected so a run is reproducible from its seed.
type Sampler struct {
	cfg Config
	rnd *rand.Rand
}

func New(cfg Config, rnd *rand.Rand) *Sampler {
	return &Sampler{cfg: cfg, rnd: rnd}
}

// Emit walks the train edges, then the test edges, and hands every
// produced record to fn in a fixed order: per edge the positive record
// first, then its negatives. An error from fn aborts the pass.
//
// Per edge (w1, w2): the edge is dropped when the edit distance is
// below MinDistance or when either endpoint is contaminated; otherwise
// one positive is emitted and Negatives draws are taken from the
// split's pool minus {w1} and the neighbors of w1. An empty candidate
// pool skips the negatives for that edge and the pass continues; one
// exhausted pool must not invalidate the rest of the dataset.
func (s *Sampler) Emit(g *graph.Graph, sp *split.Split, fn func(pair.Record) error) (Stats, error) {
	var st Stats

	if err := s.emitSplit(g, sp, pair.Train, sp.TrainEdges, sp.TrainPool, &st, fn); err != nil {
		return st, err
	}
	if err := s.emitSplit(g, sp, pair.Test, sp.TestEdges, sp.TestPool, &st, fn); err != nil {
		return st, err
	}

	return st, nil
}

func (s *Sampler) emitSplit(g *graph.Graph, sp *split.Split, name string, edges []graph.Edge, pool *split.WordSet, st *Stats, fn func(pair.Record) error) error {
	for _, e := range edges {
		if smetrics.WagnerFischer(e.A, e.B, 1, 1, 1) < s.cfg.MinDistance {
			st.SkippedClose++
			continue
		}

		if sp.Intersection.Has(e.A) || sp.Intersection.Has(e.B) {
			st.SkippedLeaky++
			continue
		}

		st.Positives++
		if err := fn(pair.Record{Word1: e.A, Word2: e.B, Synonym: 1, Pos: g.Pos, Split: name}); err != nil {
			return err
		}

		candidates := s.candidates(g, pool, e.A)
		if len(candidates) == 0 {
			st.EmptyPool++
			continue
		}

		for _, w := range s.draw(candidates) {
			st.Negatives++
			if err := fn(pair.Record{Word1: e.A, Word2: w, Synonym: 0, Pos: g.Pos, Split: name}); err != nil {
				return err
			}
		}
	}

	return nil
}

// candidates returns the pool minus the anchor and everything
// graph-adjacent to it, in pool order.
func (s *Sampler) candidates(g *graph.Graph, pool *split.WordSet, anchor string) []string {
	neighbors := g.Neighbors(anchor)

	out := make([]string, 0, pool.Len())
	for _, w := range pool.Words() {
		if w == anchor {
			continue
		}
		if neighbors[w] {
			continue
		}
		out = append(out, w)
	}

	return out
}

// draw takes Negatives words from candidates, with or without
// replacement per config. Without replacement the draw count is capped
// by the pool size.
func (s *Sampler) draw(candidates []string) []string {
	k := s.cfg.Negatives

	if s.cfg.Replacement {
		out := make([]string, 0, k)
		for i := 0; i < k; i++ {
			out = append(out, candidates[s.rnd.Intn(len(candidates))])
		}
		return out
	}

	if k > len(candidates) {
		k = len(candidates)
	}

	perm := s.rnd.Perm(len(candidates))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, candidates[idx])
	}
	return out
}
