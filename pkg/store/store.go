// Package store implements the persisted key-value mapping behind clipstash.
// The whole mapping lives in memory and is written back to a single flat JSON
// object file after each mutation.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"clipstash/pkg/errors"
)

// Store is the in-memory snippet mapping bound to its file on disk.
type Store struct {
	path string
	data map[string]string
}

// New returns an empty store bound to path without touching the disk.
func New(path string) *Store {
	return &Store{
		path: path,
		data: make(map[string]string),
	}
}

// Load reads the store file at path. A missing file yields an empty store and
// no error. An unreadable or malformed file yields an empty usable store
// together with a recoverable error the caller should report as a warning.
func Load(path string) (*Store, error) {
	s := New(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.FileError("failed to read store file", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
		return s, errors.FileError("store file does not contain valid JSON", err)
	}

	return s, nil
}

// Save writes the mapping back to disk. The file is written to a temp file in
// the same directory and renamed over the target, which is atomic enough for
// single-process use.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.FileError("failed to create store directory", err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.FileError("failed to serialize store", err)
	}

	tmp, err := os.CreateTemp(dir, ".clipstash-*.json")
	if err != nil {
		return errors.FileError("failed to create temp store file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.FileError("failed to write store file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.FileError("failed to write store file", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.FileError("failed to replace store file", err)
	}

	return nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key. Empty keys are rejected and leave the mapping
// unchanged.
func (s *Store) Set(key, value string) error {
	if key == "" {
		return errors.ValidationError("key cannot be empty")
	}
	s.data[key] = value
	return nil
}

// Delete removes key and reports whether it was present.
func (s *Store) Delete(key string) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns a copy of the mapping.
func (s *Store) Items() map[string]string {
	items := make(map[string]string, len(s.data))
	for k, v := range s.data {
		items[k] = v
	}
	return items
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	return len(s.data)
}
