// Package snippets implements the save, load, list and delete operations
// over the persisted store and the system clipboard.
package snippets

import (
	"fmt"
	"io"

	"clipstash/pkg/errors"
	"clipstash/pkg/filter"
	"clipstash/pkg/history"
	"clipstash/pkg/logger"
	"clipstash/pkg/store"
)

// Clipboard is the capability the service needs from the OS clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Recorder receives one event per completed mutation or load.
type Recorder interface {
	Record(op, key string, size int) error
}

// ConfirmFunc is asked before overwriting an existing key. Returning false
// cancels the save.
type ConfirmFunc func(key string) (bool, error)

// Service runs snippet operations. The store is loaded once by the caller and
// persisted after each mutation.
type Service struct {
	store *store.Store
	clip  Clipboard
	hist  Recorder
}

func NewService(st *store.Store, clip Clipboard) *Service {
	return &Service{
		store: st,
		clip:  clip,
	}
}

// WithRecorder enables operation history. A nil recorder disables it.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.hist = r
	return s
}

// Store exposes the underlying store for read-only inspection.
func (s *Service) Store() *store.Store {
	return s.store
}

// Save stores the current clipboard contents under key and persists the
// store. When key already exists, confirm decides whether to overwrite; a
// declined confirmation leaves the stored value unchanged.
func (s *Service) Save(key string, confirm ConfirmFunc) error {
	if key == "" {
		return errors.ValidationError("key cannot be empty")
	}

	if s.store.Has(key) && confirm != nil {
		ok, err := confirm(key)
		if err != nil {
			return errors.Wrap(err, "overwrite confirmation failed")
		}
		if !ok {
			return errors.CanceledError("save")
		}
	}

	text, err := s.clip.Read()
	if err != nil {
		return errors.Wrap(err, "failed to read clipboard")
	}

	if err := s.store.Set(key, text); err != nil {
		return err
	}
	if err := s.store.Save(); err != nil {
		return err
	}

	s.record(history.OpSave, key, len(text))
	return nil
}

// Load copies the value stored under key to the clipboard.
func (s *Service) Load(key string) error {
	if key == "" {
		return errors.ValidationError("key cannot be empty")
	}

	value, ok := s.store.Get(key)
	if !ok {
		return s.notFound(key)
	}

	if err := s.clip.Write(value); err != nil {
		return errors.Wrap(err, "failed to write clipboard")
	}

	s.record(history.OpLoad, key, len(value))
	return nil
}

// List writes one line per stored key/value pair to w, keys sorted.
func (s *Service) List(w io.Writer) error {
	items := s.store.Items()
	for _, key := range s.store.Keys() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", key, items[key]); err != nil {
			return errors.FileError("failed to write listing", err)
		}
	}
	return nil
}

// Delete removes key from the store and persists the change.
func (s *Service) Delete(key string) error {
	if key == "" {
		return errors.ValidationError("key cannot be empty")
	}

	if !s.store.Delete(key) {
		return s.notFound(key)
	}
	if err := s.store.Save(); err != nil {
		return err
	}

	s.record(history.OpDelete, key, 0)
	return nil
}

func (s *Service) notFound(key string) error {
	return errors.KeyNotFoundErrorWithSuggestions(key, filter.Suggest(key, s.store.Keys(), 3))
}

func (s *Service) record(op, key string, size int) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(op, key, size); err != nil {
		logger.Debug().Err(err).Str("op", op).Str("key", key).Msg("failed to record history event")
	}
}
