package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
)

// FileExport serializes a collection and writes it to the given path. The
// file is only touched after serialization succeeds. The written bytes are
// returned so callers can record them.
func FileExport(collection *model.Collection, filename string) ([]byte, error) {
	data, err := SerializeCollection(collection)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection: %w", err)
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	return data, nil
}

// FileImport reads a storyline file and parses it into a collection. The
// returned collection carries the source path.
func FileImport(filename string) (*model.Collection, error) {
	// Read the file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	collection, err := ParseCollection(data)
	if err != nil {
		return nil, err
	}
	collection.FilePath = filename

	return collection, nil
}
