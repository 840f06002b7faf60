package graph

import (
	"strings"

	"github.com/rmanak/wordvec-syns/synset"
)

// Edge is an unordered synonym pair. A is the form that was seen first
// while expanding the cluster clique.
type Edge struct {
	A string
	B string
}

// Graph is the undirected synonym graph of one grammatical category.
//
// The adjacency map answers neighbor queries; the edge slice preserves
// first-insertion order, which the splitter and the sampler rely on for
// reproducible runs. A Graph is built once and read-only afterwards.
type Graph struct {
	Pos string

	adj   map[string]map[string]bool
	edges []Edge
}

// New returns an empty graph for the category.
func New(pos string) *Graph {
	return &Graph{
		Pos: pos,
		adj: map[string]map[string]bool{},
	}
}

// Build assembles the synonym graph of one category from its sense
// clusters. Every cluster contributes a clique over its single-token
// forms; forms containing a word separator are phrases, not lemmas, and
// are excluded as vertices. Clusters left with fewer than 2 forms
// contribute nothing. An empty cluster list yields an empty graph.
func Build(pos string, clusters []synset.Cluster) *Graph {
	g := New(pos)

	for _, cl := range clusters {
		forms := singleTokens(cl.Forms)
		if len(forms) < 2 {
			continue
		}

		for i := 0; i < len(forms); i++ {
			for j := i + 1; j < len(forms); j++ {
				g.AddEdge(forms[i], forms[j])
			}
		}
	}

	return g
}

// AddEdge inserts the undirected edge (a, b). Re-inserting an existing
// edge is a no-op, and self-loops are refused.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}

	if g.adj[a][b] {
		return
	}

	g.addNeighbor(a, b)
	g.addNeighbor(b, a)
	g.edges = append(g.edges, Edge{A: a, B: b})
}

func (g *Graph) addNeighbor(from, to string) {
	n, ok := g.adj[from]
	if !ok {
		n = map[string]bool{}
		g.adj[from] = n
	}
	n[to] = true
}

// Edges returns the edges in insertion order. Callers must not mutate
// the returned slice.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	return len(g.edges)
}

// Has reports whether w is a vertex.
func (g *Graph) Has(w string) bool {
	_, ok := g.adj[w]
	return ok
}

// HasEdge reports whether (a, b) is an edge, in either direction.
func (g *Graph) HasEdge(a, b string) bool {
	return g.adj[a][b]
}

// Neighbors returns the words adjacent to w, i.e. all its known
// synonyms. The map is the graph's own; callers must not mutate it.
func (g *Graph) Neighbors(w string) map[string]bool {
	return g.adj[w]
}

// Words returns the vertex set in first-seen order, derived from the
// edge slice so that iteration is stable across runs.
func (g *Graph) Words() []string {
	seen := make(map[string]bool, len(g.adj))
	words := make([]string, 0, len(g.adj))

	for _, e := range g.edges {
		if !seen[e.A] {
			seen[e.A] = true
			words = append(words, e.A)
		}
		if !seen[e.B] {
			seen[e.B] = true
			words = append(words, e.B)
		}
	}

	return words
}

// singleTokens filters out multi-word forms. WordNet collocations use
// "_" as the separator; hyphenated compounds and stray spaces are
// excluded for the same reason.
func singleTokens(forms []string) []string {
	out := forms[:0:0]
	for _, f := range forms {
		if f == "" {
			continue
		}
		if strings.ContainsAny(f, "-_ ") {
			continue
		}
		out = append(out, f)
	}
	return out
}
