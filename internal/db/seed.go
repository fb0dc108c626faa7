package db

import (
	"fmt"

	"gorm.io/gorm"

	"lingua/internal/model"
)

// DefaultUsers are the two demo accounts inserted at first bootstrap.
var DefaultUsers = []model.User{
	{Name: "Admin User", Email: "admin@language.com", Password: "admin123", Role: model.RoleAdmin},
	{Name: "Ahmed Hassan", Email: "student@language.com", Password: "student123", Role: model.RoleStudent},
}

// SeedUsers inserts the default accounts if their emails are absent.
// Idempotent: restarting the process never duplicates or overwrites them.
func SeedUsers(db *gorm.DB) error {
	for _, u := range DefaultUsers {
		var existing model.User
		err := db.Where(&model.User{Email: u.Email}).
			Attrs(u).
			FirstOrCreate(&existing).Error
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}
