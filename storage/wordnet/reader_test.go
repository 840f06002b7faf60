package wordnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmanak/wordvec-syns/synset"
)

const verbData = `  1 This software and database is a fake header line.
  2 More header text, indented with two spaces.
00001740 29 v 04 breathe 0 take_a_breath 0 respire 0 suspire 3 002 @ 00001740 v 0000 ~ 00002573 v 0000 01 + 02 00 | draw air into the lungs
00002573 29 v 02 respire 0 suspire 1 001 @ 00001740 v 0000 | undergo the biomedical process of respiration
`

const adjData = `  1 Fake header.
00001740 00 a 02 able 0 capable 0 000 | having the necessary means
00002098 00 s 03 excess(a) 0 extra 0 supernumerary 0 000 | more than needed
`

func writeDict(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"data.verb": verbData,
		"data.adj":  adjData,
		"data.noun": "00001740 03 n 01 entity 0 000 | that which is perceived\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	return dir
}

func TestClustersVerb(t *testing.T) {
	r := NewReader(writeDict(t))

	clusters, err := r.Clusters(synset.Verb)
	if err != nil {
		t.Fatalf("clusters failed: %v", err)
	}

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}

	want := []string{"breathe", "take_a_breath", "respire", "suspire"}
	got := clusters[0].Forms
	if len(got) != len(want) {
		t.Fatalf("expected %d forms, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("form %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if clusters[0].Pos != synset.Verb {
		t.Errorf("expected category %q, got %q", synset.Verb, clusters[0].Pos)
	}
}

func TestClustersAdjKeepsSatellites(t *testing.T) {
	r := NewReader(writeDict(t))

	clusters, err := r.Clusters(synset.Adj)
	if err != nil {
		t.Fatalf("clusters failed: %v", err)
	}

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters (head + satellite), got %d", len(clusters))
	}

	// the satellite line also carries a syntactic marker to strip
	forms := clusters[1].Forms
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %v", forms)
	}
	if forms[0] != "excess" {
		t.Errorf("expected marker stripped from excess(a), got %q", forms[0])
	}
}

func TestClustersUnknownCategory(t *testing.T) {
	r := NewReader(writeDict(t))

	if _, err := r.Clusters("adverb"); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestClustersMissingFile(t *testing.T) {
	r := NewReader(t.TempDir())

	if _, err := r.Clusters(synset.Verb); err == nil {
		t.Fatal("expected an error for a missing data file")
	}
}

func TestIsDictDir(t *testing.T) {
	dir := writeDict(t)

	if !IsDictDir(dir) {
		t.Error("expected a populated dict dir to be detected")
	}
	if IsDictDir(t.TempDir()) {
		t.Error("expected an empty dir not to be detected")
	}
}

func TestParseLineHexWordCount(t *testing.T) {
	// 0x0b = 11 words
	line := "00000001 00 n 0b a0 0 a1 0 a2 0 a3 0 a4 0 a5 0 a6 0 a7 0 a8 0 a9 0 aa 0 000 | gloss"

	forms, err := parseLine(line)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(forms) != 11 {
		t.Errorf("expected 11 forms, got %d", len(forms))
	}
}

func TestParseLineTruncated(t *testing.T) {
	if _, err := parseLine("00000001 00 n 02 lonely 0"); err == nil {
		t.Fatal("expected an error for a line shorter than its word count")
	}
}
