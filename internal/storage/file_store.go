package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkhalil/studenthub/internal/constants"
)

// FileStore persists one JSON snapshot file per user inside a data directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at the given data directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Init creates the data directory if it does not exist.
func (s *FileStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, constants.SnapshotFilePrefix+userID+".json")
}

// Load reads the stored snapshot for a user. A missing file loads as an
// empty snapshot; malformed contents decode defensively to empty collections.
func (s *FileStore) Load(userID string) (Snapshot, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return EmptySnapshot(), nil
		}
		return EmptySnapshot(), fmt.Errorf("failed to read snapshot: %w", err)
	}
	return decodeSnapshot(data, userID), nil
}

// Save overwrites the stored snapshot for a user with a single full write.
func (s *FileStore) Save(userID string, snap Snapshot) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := encodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(s.path(userID), data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}
