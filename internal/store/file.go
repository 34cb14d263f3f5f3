package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the DB in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Load reads the backing file. If it does not exist yet, an empty DB
// with default settings is persisted first and then returned, so a
// first session always starts from a real file.
func (s *FileStore) Load() (*DB, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		db := &DB{Notes: nil, Settings: DefaultSettings()}
		if err := s.Save(db); err != nil {
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var db DB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, &CorruptStateError{Path: s.path, Err: err}
	}
	return &db, nil
}

// Save rewrites the entire DB. The document is written to a temp file
// in the same directory and renamed over the target, so the backing
// state is always decodable as either the old or the new value. A
// failed save leaves the previous state intact.
func (s *FileStore) Save(db *DB) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".driftnotes-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
