package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Decode reads one document from r.
// Read failures wrap ErrIO; everything else wraps ErrContent.
func Decode(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Unmarshal(data)
}

// Unmarshal parses a document held in memory.
func Unmarshal(data []byte) (*Map, error) {
	m := &Map{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, classify(err)
	}
	return m, nil
}

// Marshal renders m as an indented document with sorted keys.
func Marshal(m *Map) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		if errors.Is(err, ErrContent) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrContent, err)
	}
	return append(data, '\n'), nil
}

// Encode writes m to w.
func Encode(w io.Writer, m *Map) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Load reads the document stored at path. A missing file yields an error
// matching both ErrIO and fs.ErrNotExist.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Unmarshal(data)
}

// Save writes m to path atomically: the document is written to a temporary
// file in the same directory and renamed over the target.
func Save(path string, m *Map) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
