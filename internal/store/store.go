// Package store persists exported dungeons keyed by expedition id.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/samdwyer/roomchain/internal/export"
)

// ErrNotFound is returned when no document exists for an expedition.
var ErrNotFound = errors.New("expedition not found")

const fileExt = ".json"

// Store is a directory of expedition documents.
type Store struct {
	dir      string
	maxTries uint
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{dir: dir, maxTries: 5}, nil
}

func (s *Store) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+fileExt)
}

// Put writes the document under its expedition id, retrying transient
// filesystem errors with exponential backoff.
func (s *Store) Put(ctx context.Context, doc export.Document) error {
	if doc.ExpeditionID == uuid.Nil {
		return errors.New("document has no expedition id")
	}
	data, err := export.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode expedition %s: %w", doc.ExpeditionID, err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.writeAtomic(s.path(doc.ExpeditionID), data)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.maxTries))
	if err != nil {
		return fmt.Errorf("failed to store expedition %s: %w", doc.ExpeditionID, err)
	}
	return nil
}

// writeAtomic writes through a temp file and renames it into place.
func (s *Store) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".expedition-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Get reads and verifies the document for an expedition.
func (s *Store) Get(id uuid.UUID) (export.Document, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return export.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return export.Document{}, err
	}
	return export.Decode(data)
}

// List returns the stored expedition ids in lexical order.
func (s *Store) List() ([]uuid.UUID, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(name, fileExt))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}
