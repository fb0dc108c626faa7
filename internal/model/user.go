package model

import "time"

// User roles. New signups are always students; admins come from the seed
// data or the import CLI.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a login account. Rows are append-only: nothing in the API
// updates or deletes a user once created.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255"` // stored verbatim, never serialized
	Role      string    `json:"role" gorm:"size:50;default:'student'"`
	CreatedAt time.Time `json:"created_at"`
}
