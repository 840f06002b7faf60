// Package wordnet reads sense clusters from the WordNet database files
// (data.noun, data.verb, data.adj).
//
// Only the word-form part of each synset line is consumed; pointers,
// verb frames and glosses are skipped. The file format is documented in
// wndb(5).
package wordnet

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmanak/wordvec-syns/storage"
	"github.com/rmanak/wordvec-syns/synset"
)

// dataFiles maps a grammatical category to its database file. The adj
// file carries both head ("a") and satellite ("s") synsets; both are
// plain sense clusters for our purposes.
var dataFiles = map[string]string{
	synset.Noun: "data.noun",
	synset.Verb: "data.verb",
	synset.Adj:  "data.adj",
}

// Reader reads clusters from a WordNet dict directory.
type Reader struct {
	dir string
}

var _ storage.ClusterReader = (*Reader)(nil)

// NewReader creates a reader for the given dict directory.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// IsDictDir reports whether dir looks like a WordNet dict directory.
// Used by the CLI to pick this backend over the JSON one.
func IsDictDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, dataFiles[synset.Noun]))
	return err == nil
}

// Clusters parses the category's data file into sense clusters, one per
// synset line, in file order.
func (r *Reader) Clusters(pos string) ([]synset.Cluster, error) {
	name, ok := dataFiles[pos]
	if !ok {
		return nil, fmt.Errorf("unknown category: %s", pos)
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordnet data file: %w", err)
	}
	defer f.Close()

	var clusters []synset.Cluster

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// The copyright header is a block of lines indented with two
		// spaces.
		if strings.HasPrefix(line, "  ") || line == "" {
			continue
		}

		forms, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}

		clusters = append(clusters, synset.Cluster{Pos: pos, Forms: forms})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return clusters, nil
}

// parseLine extracts the word forms of one synset line:
//
//	offset lex_filenum ss_type w_cnt word lex_id [word lex_id]... ...
//
// w_cnt is two-digit hexadecimal; each word is followed by a one-digit
// hex lex id.
func parseLine(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, fmt.Errorf("truncated synset line")
	}

	wcnt, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad word count %q: %w", fields[3], err)
	}

	if len(fields) < 4+2*int(wcnt) {
		return nil, fmt.Errorf("synset line shorter than its word count")
	}

	forms := make([]string, 0, wcnt)
	for i := 0; i < int(wcnt); i++ {
		forms = append(forms, stripMarker(fields[4+2*i]))
	}

	return forms, nil
}

// stripMarker removes the adjective syntactic marker suffix, one of
// "(p)", "(a)", "(ip)".
func stripMarker(w string) string {
	if !strings.HasSuffix(w, ")") {
		return w
	}
	if i := strings.LastIndex(w, "("); i > 0 {
		return w[:i]
	}
	return w
}
