package services

import "github.com/jackmarxreacher-creator/rby-sub000/app/models"

// ResolvePrice selects the unit price for a product based on the customer's
// business type. Callers normalise the business type first; anything other
// than wholesale resolves to the retail price.
func ResolvePrice(p models.Product, businessType string) float64 {
	if businessType == models.BusinessTypeWholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}
