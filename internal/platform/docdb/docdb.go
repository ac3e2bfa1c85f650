package docdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "focal/internal/platform/errors"
	"focal/internal/platform/lockfile"
)

// Row is a single flat record inside a table.
type Row = map[string]any

// Database is the in-memory form of the document file: named tables of rows.
// It is only ever observed as a whole-file snapshot inside Update or View.
type Database struct {
	tables map[string][]Row
}

func (d *Database) Table(name string) []Row {
	return d.tables[name]
}

func (d *Database) SetTable(name string, rows []Row) {
	if d.tables == nil {
		d.tables = map[string][]Row{}
	}
	d.tables[name] = rows
}

func (d *Database) Append(name string, row Row) {
	d.SetTable(name, append(d.tables[name], row))
}

// Store is a JSON document database backed by a single file. Every call
// re-reads from disk under the file lock; nothing is cached across calls.
type Store struct {
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Update runs one lock-guarded read-modify-write cycle: the whole file is
// read, fn mutates the snapshot, and the whole file is written back.
func (s *Store) Update(fn func(*Database) error) error {
	return lockfile.WithLock(s.path, func() error {
		db, err := s.read()
		if err != nil {
			return err
		}
		if err := fn(db); err != nil {
			return err
		}
		return s.write(db)
	})
}

// View runs fn against a consistent snapshot without writing anything back.
// It still takes the lock so listings never observe a partial rewrite.
func (s *Store) View(fn func(*Database) error) error {
	return lockfile.WithLock(s.path, func() error {
		db, err := s.read()
		if err != nil {
			return err
		}
		return fn(db)
	})
}

func (s *Store) read() (*Database, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Database{tables: map[string][]Row{}}, nil
		}
		return nil, fmt.Errorf("read document database: %w", err)
	}
	tables := map[string][]Row{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &tables); err != nil {
			return nil, fmt.Errorf("decode document database %s: %w", s.path, apperrors.ErrCorruptData)
		}
	}
	return &Database{tables: tables}, nil
}

func (s *Store) write(db *Database) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create database dir: %w", err)
	}
	payload, err := json.MarshalIndent(db.tables, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document database: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write document database: %w", err)
	}
	return nil
}
