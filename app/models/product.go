package models

import "gorm.io/gorm"

// Product is a catalogue entry with two price points. The order workflow
// reads products but never mutates them.
type Product struct {
	gorm.Model
	Name           string  `gorm:"size:255;not null;index" json:"name"`
	Size           string  `gorm:"size:100" json:"size"`
	Image          string  `gorm:"size:500" json:"image"`
	WholesalePrice float64 `gorm:"not null;default:0" json:"wholesalePrice"`
	RetailPrice    float64 `gorm:"not null;default:0" json:"retailPrice"`
}
