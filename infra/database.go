// Package infra bootstraps infrastructure: the database connection and
// schema migration.
package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/infra/repository"
)

// NewDBConnection opens the postgres connection and migrates the schema.
func NewDBConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&repository.User{},
		&repository.Account{},
		&repository.Goal{},
		&repository.LedgerEntry{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
