// Package csvgz writes the dataset as a gzip-compressed CSV file.
package csvgz

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rmanak/wordvec-syns/pair"
	"github.com/rmanak/wordvec-syns/storage"
)

var header = []string{"word1", "word2", "synonym", "pos", "split"}

type Writer struct {
	f   *os.File
	gz  *gzip.Writer
	csv *csv.Writer
}

var _ storage.RecordWriter = (*Writer)(nil)

// NewWriter creates the target file and writes the CSV header.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	gz := gzip.NewWriter(f)
	w := &Writer{f: f, gz: gz, csv: csv.NewWriter(gz)}

	if err := w.csv.Write(header); err != nil {
		f.Close()
		return nil, err
	}

	return w, nil
}

func (w *Writer) Write(r pair.Record) error {
	return w.csv.Write([]string{r.Word1, r.Word2, strconv.Itoa(r.Synonym), r.Pos, r.Split})
}

// Close flushes the CSV buffer and the gzip stream before closing the
// underlying file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.f.Close()
		return err
	}
	if err := w.gz.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
