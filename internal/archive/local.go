package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalArchive stores analysis records as files in a local directory
type LocalArchive struct {
	basePath string
}

// Ensure LocalArchive implements Archiver
var _ Archiver = (*LocalArchive)(nil)

// NewLocalArchive creates a new local directory archive
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{basePath: basePath}, nil
}

// Store writes an analysis record to the archive directory
func (a *LocalArchive) Store(name string, data []byte) error {
	fullPath := filepath.Join(a.basePath, name)

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

// Retrieve reads an archived record from the archive directory
func (a *LocalArchive) Retrieve(name string) ([]byte, error) {
	fullPath := filepath.Join(a.basePath, name)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("record not found: %s", name)
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	return data, nil
}

// List returns the names of archived records matching the prefix
func (a *LocalArchive) List(prefix string) ([]string, error) {
	entries, err := os.ReadDir(a.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// Delete removes an archived record from the archive directory
func (a *LocalArchive) Delete(name string) error {
	fullPath := filepath.Join(a.basePath, name)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
