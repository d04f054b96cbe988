// Package docstore persists each collection as a single JSON document on
// local disk, compatible with the data files the legacy portal tooling
// reads and writes (students.json, companies.json, ...). The only two
// operations are whole-collection load and whole-collection overwrite.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Collection names used by the portal
const (
	CollectionStudents      = "students"
	CollectionCompanies     = "companies"
	CollectionNotifications = "notifications"
	CollectionQueries       = "queries"
	CollectionResponses     = "responses"
)

// Store is a whole-collection JSON document store rooted at a directory.
// A missing or corrupt collection file loads as an empty collection:
// availability is preferred over strictness so one bad file never takes
// the portal down. Writers are serialized per collection within the
// process; the file format itself offers no cross-process locking.
type Store struct {
	dir    string
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed
func New(dir string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the directory the store is rooted at
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path backing a collection
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// collectionLock returns the mutex guarding a collection
func (s *Store) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}

// WithLock runs fn while holding the collection's mutex, so a
// load-mutate-save cycle is not interleaved with another writer in
// this process.
func (s *Store) WithLock(collection string, fn func() error) error {
	lock := s.collectionLock(collection)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// LoadRaw loads every record of a collection as raw JSON. An absent
// file or an unparseable document yields an empty collection, not an
// error.
func (s *Store) LoadRaw(collection string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Str("collection", collection).Msg("Collection file is corrupt, treating as empty")
		return nil, nil
	}

	return records, nil
}

// Save overwrites a collection with the given records. The document is
// written to a temporary file first and renamed into place so a reader
// never observes a partial write. Records are indented with four spaces
// to stay diff-compatible with documents written by the legacy tooling.
func (s *Store) Save(collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	if string(data) == "null" {
		data = []byte("[]")
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for collection %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for collection %s: %w", collection, err)
	}

	if err := os.Rename(tmpName, s.Path(collection)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}

	return nil
}

// Load decodes every record of a collection into T. A record that does
// not decode is skipped with a warning rather than failing the load.
func Load[T any](s *Store, collection string) ([]T, error) {
	raw, err := s.LoadRaw(collection)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(raw))
	for i, r := range raw {
		var record T
		if err := json.Unmarshal(r, &record); err != nil {
			s.logger.Warn().Err(err).Str("collection", collection).Int("index", i).Msg("Skipping undecodable record")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
