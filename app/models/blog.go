package models

import "gorm.io/gorm"

// Blog is a published article on the public site.
type Blog struct {
	gorm.Model
	Title    string `gorm:"size:255;not null" json:"title"`
	Slug     string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Excerpt  string `gorm:"size:500" json:"excerpt"`
	Body     string `gorm:"type:text" json:"body"`
	Image    string `gorm:"size:500" json:"image"`
	AuthorID uint   `gorm:"index" json:"authorId"`
}
