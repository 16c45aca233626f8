package store

import "summitgen/internal/level"

// Store defines the interface for level persistence backends.
type Store interface {
	SaveLevel(lvl *level.LevelDefinition) error
	LoadLevel(id string) (*level.LevelDefinition, error)
	ListLevels() ([]string, error)
	Close() error
}
