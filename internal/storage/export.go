package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"careerpro/internal/errors"
	"careerpro/internal/resume"
)

// ExportFallbackName is used when the candidate has no name yet.
const ExportFallbackName = "builder"

// ExportFileName derives the portable file name from the candidate's full
// name: whitespace collapsed to underscores, lower-cased, with a fixed
// fallback when the name is empty.
func ExportFileName(doc *resume.Document) string {
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		name = ExportFallbackName
	}
	name = strings.ToLower(strings.Join(strings.Fields(name), "_"))
	return fmt.Sprintf("resume_%s.json", name)
}

// Export writes the document as a pretty-printed portable JSON file. An
// empty path derives the file name from the document into the current
// directory. Returns the path written.
func Export(doc *resume.Document, path string) (string, error) {
	if path == "" {
		path = ExportFileName(doc)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeFileWriteFailed,
			"Cannot serialize resume for export", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", errors.NewIOError(errors.ErrCodeFileWriteFailed,
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("Cannot write export file: %s", path), err)
	}
	return path, nil
}

// Import reads a portable JSON file and returns the decoded document.
// Malformed or unrecognizable content is an error; the caller keeps its
// current document.
func Import(path string) (*resume.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("File not found: %s", path), err)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", path), err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeImportInvalid,
			fmt.Sprintf("Not a valid resume file: %s", path), err)
	}
	return doc, nil
}
