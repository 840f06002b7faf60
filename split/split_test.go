package split

import (
	"testing"

	"github.com/rmanak/wordvec-syns/graph"
	"github.com/rmanak/wordvec-syns/synset"
)

// chain builds a path graph a-b, b-c, c-d, ... over the given words.
func chain(words ...string) *graph.Graph {
	g := graph.New(synset.Verb)
	for i := 0; i < len(words)-1; i++ {
		g.AddEdge(words[i], words[i+1])
	}
	return g
}

func TestEdgesArePartitionedExactly(t *testing.T) {
	g := chain("a", "b", "c", "d", "e", "f")

	s := New(g, 0.5, 1.0)

	if len(s.TrainEdges)+len(s.TestEdges) != g.Size() {
		t.Fatalf("train (%d) + test (%d) != all edges (%d)", len(s.TrainEdges), len(s.TestEdges), g.Size())
	}

	seen := map[graph.Edge]bool{}
	for _, e := range s.TrainEdges {
		seen[e] = true
	}
	for _, e := range s.TestEdges {
		if seen[e] {
			t.Errorf("edge %v in both splits", e)
		}
	}
}

func TestThresholdCrossing(t *testing.T) {
	// 6 vertices, threshold 0.5 => train grows until it holds >= 3
	// words, i.e. exactly the first two chain edges.
	g := chain("a", "b", "c", "d", "e", "f")

	s := New(g, 0.5, 1.0)

	if len(s.TrainEdges) != 2 {
		t.Errorf("expected 2 train edges, got %d", len(s.TrainEdges))
	}
	if len(s.TestEdges) != 3 {
		t.Errorf("expected 3 test edges, got %d", len(s.TestEdges))
	}
}

func TestIntersectionTracksSharedWords(t *testing.T) {
	// After threshold crossing, edge (c, d) lands in test while c is
	// already a train word.
	g := chain("a", "b", "c", "d", "e", "f")

	s := New(g, 0.5, 1.0)

	if !s.Intersection.Has("c") {
		t.Error("expected c in the intersection")
	}

	if s.Intersection.Has("a") || s.Intersection.Has("f") {
		t.Error("pure train/test words must not be in the intersection")
	}
}

func TestPoolsExcludeIntersection(t *testing.T) {
	g := chain("a", "b", "c", "d", "e", "f")

	s := New(g, 0.5, 1.0)

	for _, w := range s.Intersection.Words() {
		if s.TrainPool.Has(w) {
			t.Errorf("train pool contains contaminated word %q", w)
		}
		if s.TestPool.Has(w) {
			t.Errorf("test pool contains contaminated word %q", w)
		}
	}

	for _, w := range s.TrainPool.Words() {
		if !s.TrainWords.Has(w) {
			t.Errorf("train pool word %q not a train word", w)
		}
	}
}

func TestFullTrainFraction(t *testing.T) {
	g := chain("a", "b", "c", "d")

	s := New(g, 1.0, 1.0)

	if len(s.TestEdges) != 0 {
		t.Errorf("expected empty test split, got %d edges", len(s.TestEdges))
	}
	if s.Intersection.Len() != 0 {
		t.Errorf("expected empty intersection, got %d words", s.Intersection.Len())
	}
	if s.TrainPool.Len() != g.Order() {
		t.Errorf("expected all %d words in the train pool, got %d", g.Order(), s.TrainPool.Len())
	}
}

func TestEmptyGraph(t *testing.T) {
	s := New(graph.New(synset.Noun), 0.9, 1.0)

	if len(s.TrainEdges) != 0 || len(s.TestEdges) != 0 {
		t.Error("expected no edges for an empty graph")
	}
}

func TestWordSetOrder(t *testing.T) {
	s := NewWordSet()
	for _, w := range []string{"c", "a", "b", "a"} {
		s.Add(w)
	}

	want := []string{"c", "a", "b"}
	got := s.Words()

	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWordSetDiffIntersect(t *testing.T) {
	a := NewWordSet()
	b := NewWordSet()
	for _, w := range []string{"x", "y", "z"} {
		a.Add(w)
	}
	for _, w := range []string{"y", "z", "w"} {
		b.Add(w)
	}

	inter := a.Intersect(b)
	if inter.Len() != 2 || !inter.Has("y") || !inter.Has("z") {
		t.Errorf("unexpected intersection: %v", inter.Words())
	}

	diff := a.Diff(b)
	if diff.Len() != 1 || !diff.Has("x") {
		t.Errorf("unexpected diff: %v", diff.Words())
	}
}
