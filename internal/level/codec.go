package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound marks a level file that does not exist on disk.
var ErrNotFound = errors.New("level file not found")

// ParseError wraps a malformed persisted level.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse level %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and validates a persisted level definition.
//
// A missing file yields ErrNotFound, malformed content a *ParseError, and
// well-formed content violating the grid invariants an
// *InvalidDimensionsError.
func Load(path string) (*LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}

	var lvl LevelDefinition
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Save writes the level definition to path, creating parent directories as
// needed. The content is written to a temp file and renamed into place so a
// failed save never leaves a truncated file behind.
func Save(lvl *LevelDefinition, path string) error {
	if err := lvl.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(lvl, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal level %s: %w", lvl.ID, err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create level directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write level %s: %w", lvl.ID, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace level %s: %w", lvl.ID, err)
	}
	return nil
}
