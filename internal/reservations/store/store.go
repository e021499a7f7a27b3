package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tessera/pkg/model"
)

// Store is the durable, append-only booking record set. Snapshot returns a
// consistent point-in-time copy in commit order; Append persists a new
// record atomically, with no partial state visible if it fails.
type Store interface {
	Snapshot(ctx context.Context) ([]model.BookingRecord, error)
	Append(ctx context.Context, record model.BookingRecord) error
	Ping(ctx context.Context) error
}

// bookingFile is the on-disk layout, a single object wrapping the ordered
// record list. Save-then-load reproduces the records in the same order.
type bookingFile struct {
	Records []model.BookingRecord `json:"records"`
}

// FileStore keeps the authoritative record list in a JSON file and a copy in
// memory. The file is read once at construction; appends rewrite it through
// a temp file and rename so a crash mid-write never corrupts the store. The
// in-memory copy only advances after the rename succeeds.
type FileStore struct {
	path string

	mu      sync.Mutex
	records []model.BookingRecord
}

// NewFileStore loads the store from path. A missing file is an empty store;
// a present but unparsable file is an error, not silent data loss.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}

	var file bookingFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bookings file %s: %w", path, err)
	}

	s.records = file.Records
	return s, nil
}

func (s *FileStore) Snapshot(ctx context.Context) ([]model.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.BookingRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *FileStore) Append(ctx context.Context, record model.BookingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.BookingRecord, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, record)

	if err := s.persist(next); err != nil {
		return err
	}

	s.records = next
	return nil
}

// persist rewrites the whole store as one unit. The temp file lives in the
// same directory so the rename stays on one filesystem.
func (s *FileStore) persist(records []model.BookingRecord) error {
	data, err := json.MarshalIndent(bookingFile{Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp bookings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp bookings file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp bookings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp bookings file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit bookings file: %w", err)
	}

	return nil
}

// Ping verifies the store's directory is still reachable.
func (s *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}
