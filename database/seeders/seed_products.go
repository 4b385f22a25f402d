package seeders

import (
	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts loads the starter catalogue. Skipped when products already
// exist so re-running seed is safe.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Classic Cola", Size: "330ml", WholesalePrice: 0.55, RetailPrice: 0.90},
		{Name: "Classic Cola", Size: "1.5L", WholesalePrice: 1.40, RetailPrice: 2.20},
		{Name: "Sparkling Orange", Size: "330ml", WholesalePrice: 0.60, RetailPrice: 0.95},
		{Name: "Still Water", Size: "500ml", WholesalePrice: 0.25, RetailPrice: 0.50},
		{Name: "Still Water", Size: "19L", WholesalePrice: 4.50, RetailPrice: 6.00},
		{Name: "Energy Boost", Size: "250ml", WholesalePrice: 1.10, RetailPrice: 1.80},
	}
	return db.Create(&products).Error
}
