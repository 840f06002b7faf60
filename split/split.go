// Package split partitions a synonym graph into train and test subsets
// without word leakage.
//
// Edges are partitioned exactly; vertices are not. An edge routed to
// test can touch a word already claimed by train, so the overlap is
// tracked as Intersection and removed from both sampling pools instead
// of re-partitioning the graph. Contaminated words are dropped, the
// split itself is never redone.
package split

import (
	"github.com/rmanak/wordvec-syns/graph"
)

// Split is the train/test partition of one category's graph.
type Split struct {
	TrainEdges []graph.Edge
	TestEdges  []graph.Edge

	TrainWords *WordSet
	TestWords  *WordSet

	// Intersection holds the words that ended up on both sides of the
	// partition. They are excluded from sampling downstream.
	Intersection *WordSet

	// TrainPool and TestPool are the vertex pools eligible for
	// negative sampling: the split's words minus the intersection.
	TrainPool *WordSet
	TestPool  *WordSet
}

// New partitions g with a single forward pass over its edges. Edges are
// routed to train until the train vertex set reaches frac*weight of the
// graph's order, and to test afterwards. The threshold is crossed once;
// edges are never revisited.
//
// A weight >= 1 combined with uneven vertex growth can leave the test
// side empty. That is allowed here; callers that care should check
// len(TestEdges) and warn.
func New(g *graph.Graph, frac, weight float64) *Split {
	s := &Split{
		TrainWords: NewWordSet(),
		TestWords:  NewWordSet(),
	}

	threshold := frac * weight * float64(g.Order())

	for _, e := range g.Edges() {
		if float64(s.TrainWords.Len()) < threshold {
			s.TrainEdges = append(s.TrainEdges, e)
			s.TrainWords.Add(e.A)
			s.TrainWords.Add(e.B)
			continue
		}

		s.TestEdges = append(s.TestEdges, e)
		s.TestWords.Add(e.A)
		s.TestWords.Add(e.B)
	}

	s.Intersection = s.TrainWords.Intersect(s.TestWords)
	s.TrainPool = s.TrainWords.Diff(s.Intersection)
	s.TestPool = s.TestWords.Diff(s.Intersection)

	return s
}
