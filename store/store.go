/*
Package store keeps a library of named layout documents in a SQLite database.

Documents are stored verbatim along with the SHA-1 of their contents so that
saving an unchanged layout is a no-op.
*/
package store

import (
	"crypto/sha1"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when no layout has the requested name.
var ErrNotFound = errors.New("store: layout not found")

// Entry summarises a stored layout.
type Entry struct {
	Name     string
	SHA1     string
	Modified time.Time
}

// Store is a layout library.
type Store struct {
	db *sql.DB
}

// Open opens, creating if necessary, the library at file.
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS layout (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, document BLOB NOT NULL, modified INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

// Close closes the library.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores document under name, replacing any previous version. It
// reports whether anything changed.
func (s *Store) Put(name string, document []byte) (bool, error) {
	if name == "" {
		return false, errors.New("store: empty name")
	}
	sha := fmt.Sprintf("%X", sha1.Sum(document))

	var current string
	switch err := s.db.QueryRow("SELECT sha1 FROM layout WHERE name = ?", name).Scan(&current); err {
	case sql.ErrNoRows:
		if _, err := s.db.Exec("INSERT INTO layout (name, sha1, document, modified) VALUES (?, ?, ?, ?)", name, sha, document, time.Now().Unix()); err != nil {
			return false, err
		}
		return true, nil
	case nil:
		if current == sha {
			return false, nil
		}
		if _, err := s.db.Exec("UPDATE layout SET sha1 = ?, document = ?, modified = ? WHERE name = ?", sha, document, time.Now().Unix(), name); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// Get returns the document stored under name.
func (s *Store) Get(name string) ([]byte, error) {
	var document []byte
	switch err := s.db.QueryRow("SELECT document FROM layout WHERE name = ?", name).Scan(&document); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	case nil:
		return document, nil
	default:
		return nil, err
	}
}

// Delete removes the layout stored under name.
func (s *Store) Delete(name string) error {
	result, err := s.db.Exec("DELETE FROM layout WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// List returns every stored layout ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT name, sha1, modified FROM layout ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var modified int64
		if err := rows.Scan(&e.Name, &e.SHA1, &modified); err != nil {
			return nil, err
		}
		e.Modified = time.Unix(modified, 0)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
