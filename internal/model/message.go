package model

import "time"

// Message is a contact-form submission. Append-only, no uniqueness rules.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Body      string    `json:"message" gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
