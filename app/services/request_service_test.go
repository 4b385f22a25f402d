package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/database"
)

// setupDB points the shared handle at a fresh in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.Product{},
		&models.Order{}, &models.OrderItem{}, &models.Activity{},
	))

	database.DB = db
	return db
}

func validPayload() RequestPayload {
	return RequestPayload{
		CustomerName: "Kofi Boateng",
		BusinessName: "Boateng Drinks",
		Email:        "kofi@example.com",
		Phone:        "+233244000000",
		Location:     "Kumasi",
		Address:      "5 Market Lane",
		BusinessType: "Wholesale",
		TotalAmount:  20,
		Items: []PayloadItem{
			{ProductID: 1, Quantity: 2, Price: 10, Amount: 20},
		},
	}
}

func TestCreateRequestPersistsOrderWithItems(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	res := svc.CreateRequest(validPayload(), nil)
	require.True(t, res.OK, res.Message)
	assert.Contains(t, res.Message, "Kofi Boateng")

	var order models.Order
	require.NoError(t, db.Preload("Items").Preload("Customer").First(&order).Error)
	assert.Equal(t, models.StatusReceived, order.Status)
	assert.Equal(t, 20.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint(1), order.Items[0].ProductID)
	assert.Equal(t, "kofi@example.com", order.Customer.Email)
	assert.Equal(t, models.BusinessTypeWholesale, order.Customer.BusinessType)
}

func TestCreateRequestGuestHasNoAttribution(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	res := svc.CreateRequest(validPayload(), nil)
	require.True(t, res.OK, res.Message)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Nil(t, order.CreatedByID)
}

func TestCreateRequestStaffAttributionInSameInsert(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	res := svc.CreateRequest(validPayload(), &Actor{ID: 9, Role: "STAFF"})
	require.True(t, res.OK, res.Message)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	require.NotNil(t, order.CreatedByID)
	assert.Equal(t, uint(9), *order.CreatedByID)
}

func TestCreateRequestUpsertsCustomerByEmail(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	require.True(t, svc.CreateRequest(validPayload(), nil).OK)

	second := validPayload()
	second.CustomerName = "Kofi B."
	second.Phone = "+233244111111"
	require.True(t, svc.CreateRequest(second, nil).OK)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var c models.Customer
	require.NoError(t, db.First(&c).Error)
	assert.Equal(t, "Kofi B.", c.Name)
	assert.Equal(t, "+233244111111", c.Phone)
}

func TestCreateRequestRejectsBadShapes(t *testing.T) {
	setupDB(t)
	svc := NewRequestService()

	noItems := validPayload()
	noItems.Items = nil
	noItems.TotalAmount = 0
	res := svc.CreateRequest(noItems, nil)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "line item")

	badAmount := validPayload()
	badAmount.Items[0].Amount = 35 // price 10 × qty 2 ≠ 35
	badAmount.TotalAmount = 35
	res = svc.CreateRequest(badAmount, nil)
	assert.False(t, res.OK)

	badTotal := validPayload()
	badTotal.TotalAmount = 99
	res = svc.CreateRequest(badTotal, nil)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "totalAmount")

	noEmail := validPayload()
	noEmail.Email = ""
	res = svc.CreateRequest(noEmail, nil)
	assert.False(t, res.OK)
}

func TestUpdateRequestReplacesItemSetAtomically(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()
	staff := &Actor{ID: 3, Role: "MANAGER"}

	create := validPayload()
	create.Items = []PayloadItem{
		{ProductID: 1, Quantity: 2, Price: 10, Amount: 20},
		{ProductID: 2, Quantity: 1, Price: 5, Amount: 5},
	}
	create.TotalAmount = 25
	require.True(t, svc.CreateRequest(create, staff).OK)

	var order models.Order
	require.NoError(t, db.First(&order).Error)

	edit := validPayload()
	edit.Items = []PayloadItem{
		{ProductID: 3, Quantity: 4, Price: 2.5, Amount: 10},
	}
	edit.TotalAmount = 10
	res := svc.UpdateRequest(order.ID, edit, staff)
	require.True(t, res.OK, res.Message)

	var updated models.Order
	require.NoError(t, db.Preload("Items").First(&updated, order.ID).Error)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, uint(3), updated.Items[0].ProductID)
	assert.Equal(t, 10.0, updated.TotalAmount)
	require.NotNil(t, updated.EditedByID)
	assert.Equal(t, uint(3), *updated.EditedByID)

	// No leftovers from the previous item set, soft-deleted or otherwise.
	var itemCount int64
	require.NoError(t, db.Unscoped().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 1, itemCount)
}

func TestUpdateRequestRejectsUnknownStatusValue(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()
	staff := &Actor{ID: 3, Role: "MANAGER"}

	require.True(t, svc.CreateRequest(validPayload(), staff).OK)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	edit := validPayload()
	edit.Status = "BOGUS"
	res := svc.UpdateRequest(order.ID, edit, staff)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "Invalid status")

	var unchanged models.Order
	require.NoError(t, db.Preload("Items").First(&unchanged, order.ID).Error)
	assert.Equal(t, models.StatusReceived, unchanged.Status)
	assert.Len(t, unchanged.Items, 1)
}

func TestUpdateRequestRequiresStaff(t *testing.T) {
	setupDB(t)
	svc := NewRequestService()

	res := svc.UpdateRequest(1, validPayload(), nil)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "Unauthorized")
}

func TestDeleteRequestRemovesOrderAndItems(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()
	staff := &Actor{ID: 2, Role: "ADMIN"}

	require.True(t, svc.CreateRequest(validPayload(), staff).OK)

	var order models.Order
	require.NoError(t, db.First(&order).Error)

	res := svc.DeleteRequest(order.ID, staff)
	require.True(t, res.OK, res.Message)
	assert.Contains(t, res.Message, "Kofi Boateng")

	// Hard deletes on both tables: nothing left behind, scoped or not.
	var orderCount, itemCount int64
	require.NoError(t, db.Unscoped().Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}

func TestUpdateRequestStatus(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()
	staff := &Actor{ID: 4, Role: "STAFF"}

	require.True(t, svc.CreateRequest(validPayload(), staff).OK)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	res := svc.UpdateRequestStatus(order.ID, models.StatusShipped, staff)
	require.True(t, res.OK, res.Message)

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.StatusShipped, updated.Status)
}

func TestUpdateRequestStatusRejectsUnknownValue(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()
	staff := &Actor{ID: 4, Role: "STAFF"}

	require.True(t, svc.CreateRequest(validPayload(), staff).OK)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	res := svc.UpdateRequestStatus(order.ID, "BOGUS", staff)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "Invalid status")

	var unchanged models.Order
	require.NoError(t, db.First(&unchanged, order.ID).Error)
	assert.Equal(t, models.StatusReceived, unchanged.Status)
}

func TestUpdateRequestStatusForbiddenRole(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	require.True(t, svc.CreateRequest(validPayload(), &Actor{ID: 4, Role: "STAFF"}).OK)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	res := svc.UpdateRequestStatus(order.ID, models.StatusShipped, &Actor{ID: 5, Role: "VIEWER"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "Forbidden")

	var unchanged models.Order
	require.NoError(t, db.First(&unchanged, order.ID).Error)
	assert.Equal(t, models.StatusReceived, unchanged.Status)
}

func TestCreateRequestAuditsOnSuccess(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	require.True(t, svc.CreateRequest(validPayload(), nil).OK)

	// The audit row is written by the worker pool, so give it a moment.
	assert.Eventually(t, func() bool {
		var rows []models.Activity
		if err := db.Where("action = ?", "request.create").Find(&rows).Error; err != nil {
			return false
		}
		return len(rows) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFailedCreateRequestWritesNoAuditRow(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	bad := validPayload()
	bad.TotalAmount = 99 // does not match the item amounts
	res := svc.CreateRequest(bad, nil)
	require.False(t, res.OK)

	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBusinessTypeNormalization(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	retail := validPayload()
	retail.Email = "retail@example.com"
	retail.BusinessType = "Retail"
	require.True(t, svc.CreateRequest(retail, nil).OK)

	odd := validPayload()
	odd.Email = "odd@example.com"
	odd.BusinessType = "Enterprise"
	require.True(t, svc.CreateRequest(odd, nil).OK)

	var retailCustomer, oddCustomer models.Customer
	require.NoError(t, db.Where("email = ?", "retail@example.com").First(&retailCustomer).Error)
	require.NoError(t, db.Where("email = ?", "odd@example.com").First(&oddCustomer).Error)
	assert.Equal(t, models.BusinessTypeRetail, retailCustomer.BusinessType)
	assert.Equal(t, models.BusinessTypeWholesale, oddCustomer.BusinessType)
}

func TestExportCSV(t *testing.T) {
	db := setupDB(t)
	svc := NewRequestService()

	require.True(t, svc.CreateRequest(validPayload(), nil).OK)
	var order models.Order
	require.NoError(t, db.First(&order).Error)

	data, filename, err := svc.ExportCSV(order.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("order-%d.csv", order.ID), filename)
	assert.Contains(t, string(data), "Kofi Boateng")
	assert.Contains(t, string(data), "20.00")
}
