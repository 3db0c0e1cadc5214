package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/floormap/mapfile"
)

// Sentinel errors for catalogue operations.
var (
	// ErrNotFound is returned when no map has the requested id.
	ErrNotFound = errors.New("store: map not found")

	// ErrClosed is returned by every method after Close.
	ErrClosed = errors.New("store: closed")
)

// schema.sql creates the maps table and its title index.
//
//go:embed schema.sql
var schemaSQL string

// Summary is the listing view of a stored map.
type Summary struct {
	ID         uuid.UUID
	Title      string
	Width      int
	Height     int
	Resolution float64
	Walls      int
	HasField   bool
}

// Store wraps a SQLite handle holding the maps table.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

// Open connects to dsn (a file path or ":memory:") and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dsn, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *Store) check() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

// Put inserts m or replaces the stored version with the same id.
func (s *Store) Put(ctx context.Context, m *mapfile.Map) error {
	if err := s.check(); err != nil {
		return err
	}
	doc, err := mapfile.Marshal(m)
	if err != nil {
		return err
	}
	g, err := m.Grid()
	if err != nil {
		return err
	}
	query := `
		INSERT INTO maps (id, title, width, height, resolution, walls, has_field, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, UNIXEPOCH('subsec'))
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			width = excluded.width,
			height = excluded.height,
			resolution = excluded.resolution,
			walls = excluded.walls,
			has_field = excluded.has_field,
			document = excluded.document,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		m.ID.String(), m.Title, m.Spec.Width, m.Spec.Height, m.Spec.Resolution,
		g.WallCount(), boolInt(m.Field() != nil), string(doc))
	if err != nil {
		return fmt.Errorf("store: put %s: %w", m.ID, err)
	}
	return nil
}

// Get returns the map stored under id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*mapfile.Map, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM maps WHERE id = ?`, id.String()).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	return mapfile.Unmarshal([]byte(doc))
}

// List returns summaries of all maps ordered by title, then id.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, width, height, resolution, walls, has_field
		FROM maps ORDER BY title, id
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum      Summary
			rawID    string
			hasField int
		)
		if err := rows.Scan(&rawID, &sum.Title, &sum.Width, &sum.Height, &sum.Resolution, &sum.Walls, &hasField); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		if sum.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("store: list: bad id %q: %w", rawID, err)
		}
		sum.HasField = hasField != 0
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

// Delete removes the map stored under id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.check(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM maps WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Import copies every document of a mapfile directory into the store and
// returns how many were imported.
func (s *Store) Import(ctx context.Context, dir *mapfile.Dir) (int, error) {
	ids, err := dir.List()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		m, err := dir.Load(id)
		if err != nil {
			return n, err
		}
		if err := s.Put(ctx, m); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
