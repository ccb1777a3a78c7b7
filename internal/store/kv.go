// Package store persists budget state in a SQLite-backed key/value table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// KV is a string key/value table in a SQLite database.
type KV struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*KV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	// A single connection keeps every write visible to the next read.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &KV{db: db}, nil
}

// Close closes the database.
func (kv *KV) Close() error {
	return kv.db.Close()
}

// Get returns the value for key. ok is false when the key is absent.
func (kv *KV) Get(key string) (value string, ok bool, err error) {
	err = kv.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (kv *KV) Set(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := kv.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now)
	return err
}

// SetMany stores several pairs in one transaction.
func (kv *KV) SetMany(pairs map[string]string) error {
	tx, err := kv.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range pairs {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
			k, v, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes key. Deleting a missing key is not an error.
func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys returns every stored key in sorted order.
func (kv *KV) Keys() ([]string, error) {
	rows, err := kv.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
