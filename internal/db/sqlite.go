package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lingua/internal/model"
)

// NewSQLite opens (creating if needed) the single-file store backing all
// tables. TranslateError is on so a unique-index violation comes back as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates the three tables if absent. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Message{},
		&model.CourseRegistration{},
	)
}

// Reset drops all tables. Used behind the RESET_DB switch for local demos.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&model.CourseRegistration{},
		&model.Message{},
		&model.User{},
	)
}
