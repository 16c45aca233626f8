package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"summitgen/internal/level"
)

// FileStore persists one JSON level file per id under a root directory,
// the same on-disk convention the game layer reads from.
type FileStore struct {
	dir string
}

// NewFileStore creates the root directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create level directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// SaveLevel writes the level as <dir>/<id>.json.
func (fs *FileStore) SaveLevel(lvl *level.LevelDefinition) error {
	if lvl.ID == "" {
		return fmt.Errorf("level has no id")
	}
	return level.Save(lvl, fs.path(lvl.ID))
}

// LoadLevel reads the level stored under id. Errors carry the level codec's
// taxonomy: level.ErrNotFound for a missing file, *level.ParseError for
// malformed content.
func (fs *FileStore) LoadLevel(id string) (*level.LevelDefinition, error) {
	return level.Load(fs.path(id))
}

// ListLevels reports the ids of every stored level, sorted.
func (fs *FileStore) ListLevels() ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("read level directory %s: %w", fs.dir, err)
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Close closes the store (no-op for the file store).
func (fs *FileStore) Close() error {
	return nil
}

func (fs *FileStore) path(id string) string {
	return filepath.Join(fs.dir, id+".json")
}
