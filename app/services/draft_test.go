package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
)

func wholesaleDraft() OrderDraft {
	return OrderDraft{
		CustomerName: "Ama Mensah",
		BusinessName: "Mensah Stores",
		Email:        "ama@example.com",
		Phone:        "+233201234567",
		Location:     "Accra",
		Address:      "12 Ring Road",
		BusinessType: "Wholesale",
	}
}

func TestDraftAddComputesAmountFromBusinessType(t *testing.T) {
	p1 := models.Product{Name: "Classic Cola", WholesalePrice: 10.00, RetailPrice: 15.00}
	p1.ID = 1
	p2 := models.Product{Name: "Still Water", WholesalePrice: 3.00, RetailPrice: 5.00}
	p2.ID = 2

	d := wholesaleDraft()
	require.NoError(t, d.Add(p1, 3))
	require.NoError(t, d.Add(p2, 1))

	// Wholesale customer gets the wholesale price on every product, even
	// when the retail price would be higher.
	assert.Equal(t, 10.00, d.Lines[0].UnitPrice)
	assert.Equal(t, 30.00, d.Lines[0].Amount)
	assert.Equal(t, 3.00, d.Lines[1].UnitPrice)
	assert.Equal(t, 3.00, d.Lines[1].Amount)
	assert.Equal(t, 33.00, d.Total())
}

func TestDraftRetailPricing(t *testing.T) {
	p := models.Product{Name: "Energy Boost", WholesalePrice: 1.10, RetailPrice: 1.80}
	p.ID = 7

	d := wholesaleDraft()
	d.BusinessType = "Retail"
	require.NoError(t, d.Add(p, 2))

	assert.Equal(t, 1.80, d.Lines[0].UnitPrice)
	assert.Equal(t, 3.60, d.Lines[0].Amount)
}

func TestDraftRejectsNonPositiveQuantity(t *testing.T) {
	p := models.Product{Name: "Classic Cola", WholesalePrice: 10}
	p.ID = 1

	d := wholesaleDraft()
	assert.Error(t, d.Add(p, 0))
	assert.Error(t, d.Add(p, -4))
	assert.Empty(t, d.Lines)
}

func TestDraftEditLocksUnitPrice(t *testing.T) {
	p := models.Product{Name: "Classic Cola", WholesalePrice: 10.00, RetailPrice: 15.00}
	p.ID = 1

	d := wholesaleDraft()
	require.NoError(t, d.Add(p, 2))

	// Catalogue price changes after the line was added; the locked price
	// must survive the quantity edit.
	p.WholesalePrice = 99.00
	require.NoError(t, d.EditQuantity(0, 5))

	assert.Equal(t, 10.00, d.Lines[0].UnitPrice)
	assert.Equal(t, 50.00, d.Lines[0].Amount)
	assert.Equal(t, 50.00, d.Total())
}

func TestDraftEditAndRemoveBounds(t *testing.T) {
	d := wholesaleDraft()
	assert.ErrorIs(t, d.EditQuantity(0, 2), ErrLineNotFound)
	assert.ErrorIs(t, d.Remove(0), ErrLineNotFound)

	p := models.Product{Name: "Classic Cola", WholesalePrice: 10}
	p.ID = 1
	require.NoError(t, d.Add(p, 1))
	assert.Error(t, d.EditQuantity(0, 0))
	require.NoError(t, d.Remove(0))
	assert.Empty(t, d.Lines)
	assert.Equal(t, 0.00, d.Total())
}

func TestDraftAssemble(t *testing.T) {
	p1 := models.Product{Name: "Classic Cola", Size: "330ml", WholesalePrice: 10.00, RetailPrice: 15.00}
	p1.ID = 1
	p2 := models.Product{Name: "Still Water", Size: "500ml", WholesalePrice: 3.00, RetailPrice: 5.00}
	p2.ID = 2

	d := wholesaleDraft()
	require.NoError(t, d.Add(p1, 3))
	require.NoError(t, d.Add(p2, 4))

	payload := d.Assemble("")

	assert.Equal(t, "Ama Mensah", payload.CustomerName)
	assert.Equal(t, "ama@example.com", payload.Email)
	require.Len(t, payload.Items, 2)
	for i, item := range payload.Items {
		assert.Equal(t, d.Lines[i].UnitPrice*float64(item.Quantity), item.Amount)
	}
	assert.Equal(t, 42.00, payload.TotalAmount)
	assert.Equal(t, payload.Items[0].Amount+payload.Items[1].Amount, payload.TotalAmount)
	assert.Empty(t, validatePayload(payload))
}

func TestDraftSurvivesJSONRoundTrip(t *testing.T) {
	p := models.Product{Name: "Classic Cola", WholesalePrice: 10}
	p.ID = 1

	d := wholesaleDraft()
	require.NoError(t, d.Add(p, 2))

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var restored OrderDraft
	require.NoError(t, json.Unmarshal(raw, &restored))

	assert.Equal(t, d, restored)
	assert.Equal(t, 20.00, restored.Total())
}
