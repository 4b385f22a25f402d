package models

import "gorm.io/gorm"

// Business types controlling which product price applies.
const (
	BusinessTypeWholesale = "WHOLESALE"
	BusinessTypeRetail    = "RETAIL"
)

// NormalizeBusinessType maps the human-facing form value ("Wholesale",
// "Retail") to the stored enum. Anything unrecognised defaults to wholesale.
func NormalizeBusinessType(s string) string {
	switch s {
	case "Wholesale", BusinessTypeWholesale:
		return BusinessTypeWholesale
	case "Retail", BusinessTypeRetail:
		return BusinessTypeRetail
	default:
		return BusinessTypeWholesale
	}
}

// Customer is created lazily on first order, keyed by email, and never
// deleted by the order workflow.
type Customer struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	BusinessName string `gorm:"size:255" json:"businessName"`
	Location     string `gorm:"size:255" json:"location"`
	Address      string `gorm:"size:500" json:"address"`
	BusinessType string `gorm:"size:20;default:WHOLESALE" json:"businessType"`
}
