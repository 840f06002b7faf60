// Package filesystem reads sense clusters from plain JSON files, one
// file per grammatical category: <dir>/<pos>.json containing an array
// of string arrays.
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmanak/wordvec-syns/storage"
	"github.com/rmanak/wordvec-syns/synset"
)

type ClusterStore struct {
	dir string
}

var _ storage.ClusterReader = (*ClusterStore)(nil)

func NewClusterStore(dir string) *ClusterStore {
	return &ClusterStore{dir: dir}
}

func (s *ClusterStore) Clusters(pos string) ([]synset.Cluster, error) {
	path := filepath.Join(s.dir, pos+".json")

	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var raw [][]string
	if err := json.Unmarshal(f, &raw); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	clusters := make([]synset.Cluster, 0, len(raw))
	for _, forms := range raw {
		clusters = append(clusters, synset.Cluster{Pos: pos, Forms: forms})
	}

	return clusters, nil
}
