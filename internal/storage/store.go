// Package storage persists resume snapshots: a single JSON document under a
// fixed path, a debounced autosaver, portable export/import files, and a
// change watcher for externally rewritten snapshots.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"careerpro/internal/errors"
	"careerpro/internal/resume"
)

// Store reads and writes the single persisted snapshot.
type Store interface {
	// Save writes the document wholesale, replacing any prior snapshot.
	Save(doc *resume.Document) error
	// Load returns the persisted document, or ok=false when no snapshot
	// exists. A corrupt snapshot is logged and reported as absent so the
	// session falls back to a fresh document instead of crashing.
	Load() (doc *resume.Document, ok bool, err error)
	// Clear removes the snapshot, as on reset.
	Clear() error
	// Path returns the snapshot location, for the change watcher.
	Path() string
}

// FileStore is the production store: one JSON file under the data dir.
type FileStore struct {
	path   string
	logger *errors.Logger
}

// NewFileStore creates a store writing to path, creating parent directories
// on first save.
func NewFileStore(path string, logger *errors.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (fs *FileStore) Path() string { return fs.path }

func (fs *FileStore) Save(doc *resume.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeFileWriteFailed,
			"Cannot serialize resume snapshot", err)
	}

	dir := filepath.Dir(fs.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.NewIOError(errors.ErrCodeFileWriteFailed,
				fmt.Sprintf("Cannot create data directory: %s", dir), err)
		}
	}

	// Write-then-rename so a crash mid-write never corrupts the snapshot.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.NewIOError(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("Cannot write snapshot: %s", tmp), err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return errors.NewIOError(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("Cannot replace snapshot: %s", fs.path), err)
	}
	return nil
}

func (fs *FileStore) Load() (*resume.Document, bool, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read snapshot: %s", fs.path), err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		// Corrupt or foreign data: report absent, keep the bad file around
		// for inspection rather than deleting user data.
		if fs.logger != nil {
			fs.logger.LogError(err, "Discarding corrupt resume snapshot",
				"path", fs.path)
		}
		return nil, false, nil
	}
	return doc, true, nil
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.NewIOError(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("Cannot remove snapshot: %s", fs.path), err)
	}
	return nil
}

// DecodeDocument deserializes a snapshot, rejecting payloads that are not a
// JSON object carrying at least one known resume key. A shape like
// {"not":"a resume"} parses as JSON but is not a resume and must not
// silently replace the current document.
func DecodeDocument(data []byte) (*resume.Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeSnapshotCorrupt,
			"Snapshot is not valid JSON", err)
	}

	known := []string{"personalInfo", "summary", "experience", "education", "skills", "projects"}
	recognized := false
	for _, key := range known {
		if _, ok := probe[key]; ok {
			recognized = true
			break
		}
	}
	if !recognized {
		return nil, errors.NewValidationError(errors.ErrCodeSnapshotCorrupt,
			"JSON object does not look like a resume snapshot", nil)
	}

	var doc resume.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeSnapshotCorrupt,
			"Snapshot does not match the resume shape", err)
	}
	doc.Normalize()
	return &doc, nil
}
