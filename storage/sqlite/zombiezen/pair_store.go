package zombiezen

import (
	"context"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/rmanak/wordvec-syns/pair"
	"github.com/rmanak/wordvec-syns/storage"
)

// PairStore writes dataset records into the pairs table.
type PairStore struct {
	pool *sqlitex.Pool
}

var _ storage.RecordWriter = (*PairStore)(nil)

// NewPairStore opens the database at path and ensures the schema.
func NewPairStore(path string) (*PairStore, error) {
	pool, err := NewPool(path)
	if err != nil {
		return nil, err
	}

	if err := CreatePairTables(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PairStore{pool: pool}, nil
}

func (s *PairStore) Write(r pair.Record) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	return sqlitex.Execute(conn,
		"INSERT INTO pairs (word1, word2, synonym, pos, split) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{r.Word1, r.Word2, r.Synonym, r.Pos, r.Split},
		})
}

func (s *PairStore) Close() error {
	return s.pool.Close()
}
