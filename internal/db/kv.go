package db

import (
	"database/sql"
	"errors"
)

// StorageSchema creates the key/value table used for application storage.
const StorageSchema = `
	CREATE TABLE IF NOT EXISTS storage (
		key TEXT PRIMARY KEY,
		value TEXT
	);
`

// Get returns the value stored under key. ok is false when the key is absent.
func Get(q Queryer, key string) (value string, ok bool, err error) {
	var v sql.NullString
	err = q.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return NullStringValue(v), true, nil
}

// Set stores value under key, replacing any previous value.
func Set(q Queryer, key, value string) error {
	_, err := q.Exec(`
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func Delete(q Queryer, key string) error {
	_, err := q.Exec(`DELETE FROM storage WHERE key = ?`, key)
	return err
}

// NullStringValue returns the string value or empty string if not valid.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
