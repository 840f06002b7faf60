package synset

// Grammatical categories processed by the pipeline.
const (
	Verb = "verb"
	Noun = "noun"
	Adj  = "adj"
)

// Cluster is one sense cluster: a set of word forms that are
// interchangeable in a single lexical sense of the given category.
//
// Clusters are produced by a storage.ClusterReader and consumed once by
// graph.Build. Forms are kept exactly as the source delivers them;
// multi-token forms are filtered later, at graph construction.
type Cluster struct {
	Pos   string
	Forms []string
}

// All returns the default category list.
func All() []string {
	return []string{Verb, Noun, Adj}
}

// Valid reports whether pos is a known grammatical category.
func Valid(pos string) bool {
	switch pos {
	case Verb, Noun, Adj:
		return true
	}
	return false
}
