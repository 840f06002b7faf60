package split

// WordSet is an insertion-ordered set of word forms. Order matters:
// sampling pools are iterated when candidate slices are built, and that
// iteration must be identical between runs with the same input.
type WordSet struct {
	member map[string]bool
	order  []string
}

func NewWordSet() *WordSet {
	return &WordSet{member: map[string]bool{}}
}

// Add inserts w, keeping first-insertion order. Re-adding is a no-op.
func (s *WordSet) Add(w string) {
	if s.member[w] {
		return
	}
	s.member[w] = true
	s.order = append(s.order, w)
}

// Has reports membership.
func (s *WordSet) Has(w string) bool {
	return s.member[w]
}

// Len returns the number of members.
func (s *WordSet) Len() int {
	return len(s.order)
}

// Words returns the members in insertion order. Callers must not
// mutate the returned slice.
func (s *WordSet) Words() []string {
	return s.order
}

// Intersect returns the members present in both sets, ordered by s.
func (s *WordSet) Intersect(other *WordSet) *WordSet {
	out := NewWordSet()
	for _, w := range s.order {
		if other.Has(w) {
			out.Add(w)
		}
	}
	return out
}

// Diff returns the members of s absent from other, ordered by s.
func (s *WordSet) Diff(other *WordSet) *WordSet {
	out := NewWordSet()
	for _, w := range s.order {
		if !other.Has(w) {
			out.Add(w)
		}
	}
	return out
}
