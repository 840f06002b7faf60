package storage

import (
	"github.com/rmanak/wordvec-syns/pair"
	"github.com/rmanak/wordvec-syns/synset"
)

// ClusterReader is the iteration capability the pipeline needs from a
// lexical knowledge base: all sense clusters of one grammatical
// category. No file-format or network contract is imposed here.
type ClusterReader interface {
	// Clusters returns every sense cluster of the category.
	Clusters(pos string) ([]synset.Cluster, error)
}

// RecordWriter persists the flat record sequence produced by the
// sampler. Close flushes; a writer is single-use.
type RecordWriter interface {
	Write(r pair.Record) error
	Close() error
}
