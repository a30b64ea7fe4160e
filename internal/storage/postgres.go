package storage

import (
	"database/sql"
	"fmt"
)

// PostgresStore maps slots onto a single key/value table. It deliberately
// keeps the last-save-wins contract of the other backends: one row per
// slot, whole-value overwrite, no optimistic concurrency.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	stmt := "CREATE TABLE IF NOT EXISTS slots (name TEXT PRIMARY KEY, value BYTEA NOT NULL)"
	if _, err := s.DB.Exec(stmt); err != nil {
		return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
	}
	return nil
}

func (s *PostgresStore) Load(slot string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRow("SELECT value FROM slots WHERE name = $1", slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Save(slot string, value []byte) error {
	_, err := s.DB.Exec(
		"INSERT INTO slots (name, value) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value",
		slot, value)
	return err
}

func (s *PostgresStore) Delete(slot string) error {
	_, err := s.DB.Exec("DELETE FROM slots WHERE name = $1", slot)
	return err
}

var _ SlotStore = (*PostgresStore)(nil)
