package models

import "gorm.io/gorm"

// User is a staff account. Guests never get a User row.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Phone    string `gorm:"size:50" json:"phone"`
	Role     string `gorm:"size:50;default:STAFF" json:"role"`
	Image    string `gorm:"size:500" json:"image"`
}
