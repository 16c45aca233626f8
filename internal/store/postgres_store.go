package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"summitgen/internal/level"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore persists level definitions in a PostgreSQL table, keyed by
// level id with the full definition as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the connection and initializes the schema.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS levels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		definition JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// SaveLevel upserts the level definition.
func (ps *PostgresStore) SaveLevel(lvl *level.LevelDefinition) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	definition, err := json.Marshal(lvl)
	if err != nil {
		return fmt.Errorf("marshal level %s: %w", lvl.ID, err)
	}

	query := `
	INSERT INTO levels (id, name, width, height, definition)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id)
	DO UPDATE SET
		name = $2, width = $3, height = $4, definition = $5,
		updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, lvl.ID, lvl.Name, lvl.Width, lvl.Height, string(definition)); err != nil {
		return fmt.Errorf("save level %s: %w", lvl.ID, err)
	}
	return nil
}

// LoadLevel reads and validates the level stored under id. A missing row
// maps to level.ErrNotFound, a corrupt definition to *level.ParseError.
func (ps *PostgresStore) LoadLevel(id string) (*level.LevelDefinition, error) {
	var definition string
	err := ps.db.QueryRow(`SELECT definition FROM levels WHERE id = $1`, id).Scan(&definition)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", level.ErrNotFound, id)
		}
		return nil, fmt.Errorf("load level %s: %w", id, err)
	}

	var lvl level.LevelDefinition
	if err := json.Unmarshal([]byte(definition), &lvl); err != nil {
		return nil, &level.ParseError{Path: "levels/" + id, Err: err}
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// ListLevels reports the ids of every stored level, sorted.
func (ps *PostgresStore) ListLevels() ([]string, error) {
	rows, err := ps.db.Query(`SELECT id FROM levels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan level id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
