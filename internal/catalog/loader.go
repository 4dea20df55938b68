package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads and unmarshals a JSON file from the given filesystem.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for generation to work.
func MustLoad[T any](fsys fs.FS, filename string) T {
	result, err := Load[T](fsys, filename)
	if err != nil {
		panic(err)
	}
	return result
}

// LoadDefault builds the catalog shipped inside the binary.
func LoadDefault() (*Catalog, error) {
	file, err := Load[File](dataFS, defaultFile)
	if err != nil {
		return nil, err
	}
	return New(file)
}

// MustLoadDefault builds the embedded catalog, panicking on error.
func MustLoadDefault() *Catalog {
	c, err := New(MustLoad[File](dataFS, defaultFile))
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile builds a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	file, err := Load[File](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return New(file)
}
