package store

import (
	"database/sql"
)

// NewTestDB creates a DB for testing on an existing connection, running
// migrations. This is only intended for use in tests.
func NewTestDB(sqlDB *sql.DB) (*DB, error) {
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	if err := migrate(sqlDB); err != nil {
		return nil, err
	}
	return &DB{sqlDB}, nil
}
