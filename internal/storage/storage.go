package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Fixed keys under which the entity collections are persisted. Each value
// is a self-describing JSON array of the collection's entities.
const (
	KeyMaterials      = "materials"
	KeySales          = "sales"
	KeyBOQs           = "boqs"
	KeyProductions    = "productions"
	KeyStockMovements = "stockMovements"
	KeyCustomers      = "customers"
)

// ErrStorage wraps any underlying persistence failure so callers can
// recognize the class without depending on driver errors.
var ErrStorage = errors.New("storage error")

// Store is durable key/value persistence for serialized collections.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key is absent (which is not an error).
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// InitializeIfEmpty seeds the store with defaults when the materials
	// marker key is absent. All defaults are written in one transaction,
	// so a crash cannot leave the store partially seeded.
	InitializeIfEmpty(defaults map[string]string) error
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

// New opens (creating if needed) the local store at path.
func New(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStorage, path, err)
	}

	// A single writer keeps collection write-backs strictly ordered.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating kv_store table: %v", ErrStorage, err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: reading %s: %v", ErrStorage, key, err)
	}
	return value, true, nil
}

func (s *sqliteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (s *sqliteStore) InitializeIfEmpty(defaults map[string]string) error {
	_, seeded, err := s.Get(KeyMaterials)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: starting seed transaction: %v", ErrStorage, err)
	}
	defer tx.Rollback()

	for key, value := range defaults {
		if _, err := tx.Exec("INSERT INTO kv_store (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("%w: seeding %s: %v", ErrStorage, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing seed transaction: %v", ErrStorage, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
