package app

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// openDatabase removes any database file left over from a previous run and
// opens a fresh single-file store. The run owns the file exclusively, so the
// pool is pinned to one connection.
func openDatabase(path string) (*sqlx.DB, error) {
	if err := removeStaleDatabase(path); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

func removeStaleDatabase(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale database %s: %w", path, err)
	}
	return nil
}
