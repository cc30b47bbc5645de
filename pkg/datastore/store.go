// Package datastore persists assembled datasets in BadgerDB so a
// preprocessing run can be inspected and consumed later without
// re-reading the corpus.
//
// Each dataset is stored under two keys: a small msgpack meta record for
// cheap listing, and the full msgpack blob with the id sequences and the
// vocabulary in id order.
package datastore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kimberly-brown/bach-propagation/pkg/dataset"
	"github.com/kimberly-brown/bach-propagation/pkg/vocab"
)

// ErrNotFound is returned when a dataset does not exist in the store.
var ErrNotFound = errors.New("datastore: not found")

// Options configures the store.
type Options struct {
	// Dir is the directory for BadgerDB data files.
	// Required unless InMemory is set.
	Dir string

	// InMemory runs BadgerDB in memory-only mode (no disk persistence).
	// Useful for testing with a real badger engine.
	InMemory bool

	// Logger sets the badger logger. If nil, a quiet default is used.
	Logger badger.Logger
}

// Store is a BadgerDB-backed dataset store.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store.
func Open(opts Options) (*Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("datastore: Options.Dir is required for on-disk mode")
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = dbOpts.WithInMemory(true)
	}
	if opts.Logger != nil {
		dbOpts = dbOpts.WithLogger(opts.Logger)
	} else {
		dbOpts = dbOpts.WithLogger(quietLogger{})
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Meta summarizes a stored dataset for listing.
type Meta struct {
	Name      string    `msgpack:"name"`
	CreatedAt time.Time `msgpack:"created_at"`
	Pieces    int       `msgpack:"pieces"`
	TrainLen  int       `msgpack:"train_len"`
	TestLen   int       `msgpack:"test_len"`
	VocabSize int       `msgpack:"vocab_size"`
}

// record is the full stored form of a dataset. The vocabulary is kept as
// its token list in id order and rebuilt on load.
type record struct {
	TrainInputs []int    `msgpack:"train_inputs"`
	TrainLabels []int    `msgpack:"train_labels"`
	TestInputs  []int    `msgpack:"test_inputs"`
	TestLabels  []int    `msgpack:"test_labels"`
	Starters    [][]int  `msgpack:"starters"`
	VocabTokens []string `msgpack:"vocab_tokens"`
}

func metaKey(name string) []byte { return []byte("meta:" + name) }
func blobKey(name string) []byte { return []byte("blob:" + name) }

// Save stores d under name, overwriting any previous dataset with the
// same name. Pieces is recorded in the meta for diagnostics.
func (s *Store) Save(_ context.Context, name string, d *dataset.Dataset, pieces int) error {
	if name == "" {
		return errors.New("datastore: empty dataset name")
	}
	meta := Meta{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Pieces:    pieces,
		TrainLen:  len(d.TrainInputs),
		TestLen:   len(d.TestInputs),
		VocabSize: d.Vocab.Size(),
	}
	metaBytes, err := msgpack.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("datastore: encode meta: %w", err)
	}
	blobBytes, err := msgpack.Marshal(&record{
		TrainInputs: d.TrainInputs,
		TrainLabels: d.TrainLabels,
		TestInputs:  d.TestInputs,
		TestLabels:  d.TestLabels,
		Starters:    d.Starters,
		VocabTokens: d.Vocab.Tokens(),
	})
	if err != nil {
		return fmt.Errorf("datastore: encode dataset: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(metaKey(name), metaBytes); err != nil {
			return err
		}
		return txn.Set(blobKey(name), blobBytes)
	})
}

// Load reads the named dataset back, rebuilding its vocabulary.
func (s *Store) Load(_ context.Context, name string) (*dataset.Dataset, *Meta, error) {
	var rec record
	var meta Meta
	err := s.db.View(func(txn *badger.Txn) error {
		if err := getMsgpack(txn, metaKey(name), &meta); err != nil {
			return err
		}
		return getMsgpack(txn, blobKey(name), &rec)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil, fmt.Errorf("datastore: dataset %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	d := &dataset.Dataset{
		TrainInputs: rec.TrainInputs,
		TrainLabels: rec.TrainLabels,
		TestInputs:  rec.TestInputs,
		TestLabels:  rec.TestLabels,
		Starters:    rec.Starters,
		Vocab:       vocab.Build(rec.VocabTokens),
	}
	return d, &meta, nil
}

// List returns the meta records of all stored datasets, in name order.
func (s *Store) List(_ context.Context) ([]Meta, error) {
	prefix := []byte("meta:")
	var metas []Meta
	err := s.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.Prefix = prefix
		it := txn.NewIterator(iterOpts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m Meta
			err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &m)
			})
			if err != nil {
				return err
			}
			metas = append(metas, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return metas, nil
}

// Delete removes the named dataset. Deleting a missing dataset is a
// no-op.
func (s *Store) Delete(_ context.Context, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(metaKey(name)); err != nil {
			return err
		}
		return txn.Delete(blobKey(name))
	})
}

func getMsgpack(txn *badger.Txn, key []byte, v interface{}) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return msgpack.Unmarshal(val, v)
	})
}

// quietLogger wraps the standard log package for badger, suppressing
// debug and info level messages.
type quietLogger struct{}

func (quietLogger) Errorf(f string, v ...interface{})   { log.Printf("[badger] ERROR: "+f, v...) }
func (quietLogger) Warningf(f string, v ...interface{}) { log.Printf("[badger] WARN: "+f, v...) }
func (quietLogger) Infof(string, ...interface{})        {}
func (quietLogger) Debugf(string, ...interface{})       {}
