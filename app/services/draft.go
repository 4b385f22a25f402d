package services

import (
	"errors"
	"fmt"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/collection"
)

// ErrLineNotFound is returned for an out-of-range line index.
var ErrLineNotFound = errors.New("draft: no line item at that index")

// DraftLine is one product+quantity entry held in a draft order. UnitPrice
// is locked when the line is added: edits recompute Amount from the stored
// price and never re-resolve against the catalogue.
type DraftLine struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}

// OrderDraft is the serializable draft a client accumulates before
// submission. It is a plain value object: no hidden state, safe to round-trip
// through JSON between requests.
type OrderDraft struct {
	CustomerName string      `json:"customerName"`
	BusinessName string      `json:"businessName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Location     string      `json:"location"`
	Address      string      `json:"address"`
	BusinessType string      `json:"businessType"`
	Lines        []DraftLine `json:"lines"`
}

// Add appends a line for product with the given quantity. The unit price is
// resolved once, here, from the draft's business type.
func (d *OrderDraft) Add(product models.Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("draft: quantity must be positive, got %d", quantity)
	}

	price := ResolvePrice(product, models.NormalizeBusinessType(d.BusinessType))
	d.Lines = append(d.Lines, DraftLine{
		ProductID: product.ID,
		Name:      product.Name,
		Size:      product.Size,
		Quantity:  quantity,
		UnitPrice: price,
		Amount:    price * float64(quantity),
	})
	return nil
}

// EditQuantity changes the quantity of the line at index, recomputing Amount
// from the locked unit price.
func (d *OrderDraft) EditQuantity(index, quantity int) error {
	if index < 0 || index >= len(d.Lines) {
		return ErrLineNotFound
	}
	if quantity <= 0 {
		return fmt.Errorf("draft: quantity must be positive, got %d", quantity)
	}

	line := &d.Lines[index]
	line.Quantity = quantity
	line.Amount = line.UnitPrice * float64(quantity)
	return nil
}

// Remove deletes the line at index.
func (d *OrderDraft) Remove(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return ErrLineNotFound
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// Total sums the line amounts. Always recomputed, never cached.
func (d *OrderDraft) Total() float64 {
	return collection.SumBy(d.Lines, func(l DraftLine) float64 { return l.Amount })
}

// Assemble produces the typed submission payload. For edits, status carries
// the order's current lifecycle value; leave it empty on creation.
func (d *OrderDraft) Assemble(status string) RequestPayload {
	return RequestPayload{
		CustomerName: d.CustomerName,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Phone:        d.Phone,
		Location:     d.Location,
		Address:      d.Address,
		BusinessType: d.BusinessType,
		TotalAmount:  d.Total(),
		Status:       status,
		Items: collection.Map(d.Lines, func(l DraftLine) PayloadItem {
			return PayloadItem{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				Price:     l.UnitPrice,
				Amount:    l.Amount,
			}
		}),
	}
}
