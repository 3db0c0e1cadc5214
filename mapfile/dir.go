package mapfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const docExt = ".json"

// Dir keeps one document per map in a single directory.
type Dir struct {
	root string
}

// OpenDir returns a Dir rooted at root, creating the directory if needed.
func OpenDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return &Dir{root: root}, nil
}

// Path returns the file that holds map id.
func (d *Dir) Path(id uuid.UUID) string {
	return filepath.Join(d.root, encodeID(id)+docExt)
}

// Save stores m under its id, replacing any previous version.
func (d *Dir) Save(m *Map) error {
	return Save(d.Path(m.ID), m)
}

// Load returns the map stored under id, or ErrNotFound.
func (d *Dir) Load(id uuid.UUID) (*Map, error) {
	m, err := Load(d.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return m, err
}

// List returns the ids of all stored maps in ascending order. Files whose
// base name is not a uuid are ignored.
func (d *Dir) List() ([]uuid.UUID, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	var ids []uuid.UUID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), docExt) {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

// Delete removes the map stored under id. Deleting a missing map is not an
// error.
func (d *Dir) Delete(id uuid.UUID) error {
	err := os.Remove(d.Path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
