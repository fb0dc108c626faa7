package model

import "time"

// CourseRegistration records an enrollment request. The course title and the
// registrant email are denormalized copies; there is no courses table and no
// foreign key back to users.
type CourseRegistration struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserName    string    `json:"user_name" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	Phone       string    `json:"phone,omitempty" gorm:"size:50"`
	CourseID    string    `json:"course_id" gorm:"size:255;not null"`
	CourseTitle string    `json:"course_title" gorm:"size:255;not null"`
	Experience  string    `json:"experience,omitempty" gorm:"type:text"`
	Goals       string    `json:"goals,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}
