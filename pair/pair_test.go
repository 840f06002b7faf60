package pair

import (
	"strings"
	"testing"
)

func TestCountsRowsOrdered(t *testing.T) {
	c := Counts{}
	c.Add(Record{Word1: "a", Word2: "b", Synonym: 1, Pos: "verb", Split: Train})
	c.Add(Record{Word1: "a", Word2: "c", Synonym: 0, Pos: "verb", Split: Train})
	c.Add(Record{Word1: "a", Word2: "d", Synonym: 0, Pos: "verb", Split: Train})
	c.Add(Record{Word1: "x", Word2: "y", Synonym: 1, Pos: "noun", Split: Test})

	rows := c.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 aggregated rows, got %d", len(rows))
	}

	// noun sorts before verb, label 0 before label 1
	if !strings.HasPrefix(rows[0], "noun") {
		t.Errorf("expected noun first, got %q", rows[0])
	}
	if !strings.Contains(rows[1], "synonym=0") || !strings.Contains(rows[1], "2") {
		t.Errorf("expected 2 verb/train negatives, got %q", rows[1])
	}

	if c.Total() != 4 {
		t.Errorf("expected 4 records total, got %d", c.Total())
	}
}
