// Package filestore persists the adaptive feedback cache as one JSON file.
// Writes replace the whole file atomically so a crash mid-write can never
// leave a truncated cache behind.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/banglish-backend/internal/domain"
)

// Store reads and writes the feedback cache file.
type Store struct {
	path string
}

// New creates a store for the given file path. The file does not have to
// exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// LoadAll reads the whole cache map. A missing file is not an error and
// yields an empty map; a file that exists but cannot be parsed is.
func (s *Store) LoadAll(ctx context.Context) (map[string]domain.FeedbackEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.FeedbackEntry{}, nil
		}
		return nil, fmt.Errorf("read feedback cache %s: %w", s.path, err)
	}

	entries := map[string]domain.FeedbackEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse feedback cache %s: %w", s.path, err)
	}

	return entries, nil
}

// SaveAll replaces the cache file with the given map. The data is written
// to a temp file in the same directory, synced, and renamed over the target
// so readers always observe either the old or the new complete file.
func (s *Store) SaveAll(ctx context.Context, entries map[string]domain.FeedbackEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feedback cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create feedback cache dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp feedback cache: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp feedback cache: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp feedback cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp feedback cache: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace feedback cache %s: %w", s.path, err)
	}

	return nil
}
