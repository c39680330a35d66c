package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewProvider picks the backend from the path extension: ".json" selects the
// JSON file store, anything else the SQLite store.
func NewProvider(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ReadJSON decodes the blob under key into v. It reports false, leaving v
// untouched, when the key is missing or holds only whitespace.
func ReadJSON(p Provider, key string, v any) (bool, error) {
	data, err := p.Get(key)
	if err != nil {
		return false, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %q: %w", key, err)
	}
	return true, nil
}

// WriteJSON serializes v and stores it under key.
func WriteJSON(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %q: %w", key, err)
	}
	return p.Put(key, data)
}
