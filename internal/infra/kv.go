package infra

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// KVStore is a file-backed key-value store holding one JSON document per key.
// It is the persistence gateway for the whole application: products, settings
// and the transaction log each live under a single key and are replaced
// wholesale on every save, so there are no partial-write concerns.
//
// Malformed data on disk is treated as absence, never as a fatal error.
type KVStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenKVStore loads the data file at path, creating parent directories as
// needed. A missing or unparseable file yields an empty store.
func OpenKVStore(path string) (*KVStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kv: create data dir: %w", err)
	}

	s := &KVStore{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("kv: read data file: %w", err)
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("data file unreadable, starting empty")
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get unmarshals the value stored under key into out. It returns false when
// the key is absent or the stored value does not parse into out.
func (s *KVStore) Get(key string, out interface{}) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("stored value unreadable, treating as absent")
		return false
	}
	return true
}

// Set marshals value and persists it under key.
func (s *KVStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: marshal %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// Remove deletes key and persists the change. Removing an absent key is a no-op.
func (s *KVStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush writes the full document atomically (tmp file + rename).
// Must be called under s.mu.
func (s *KVStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("kv: marshal store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("kv: write tmp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("kv: rename tmp file: %w", err)
	}
	return nil
}
