package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

// FileStore keeps the document as a JSON file on disk. Saves go through a
// temporary file plus rename so a crash never leaves a half-written document.
type FileStore struct {
	path string
}

// NewFileStore builds a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the document file.
func (s *FileStore) Load(_ context.Context) (ledger.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger.Document{}, ErrNoDocument
		}
		return ledger.Document{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return ledger.Document{}, ErrNoDocument
	}

	var doc ledger.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ledger.Document{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return doc, nil
}

// Save serializes the document and atomically replaces the file.
func (s *FileStore) Save(_ context.Context, doc ledger.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
