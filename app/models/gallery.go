package models

import "gorm.io/gorm"

// GalleryItem is a media record; the file itself lives on a storage disk
// and Path is its key there.
type GalleryItem struct {
	gorm.Model
	Title   string `gorm:"size:255;not null" json:"title"`
	Caption string `gorm:"size:500" json:"caption"`
	Path    string `gorm:"size:500;not null" json:"path"`
	Disk    string `gorm:"size:20;default:local" json:"disk"`
	URL     string `gorm:"size:500" json:"url"`
}
