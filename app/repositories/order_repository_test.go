package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{}, &models.Order{}, &models.OrderItem{},
	))

	database.DB = db
	return db
}

func seedOrder(t *testing.T, repo *OrderRepository) models.Order {
	t.Helper()

	customer := models.Customer{
		Name:         "Akosua Asante",
		Email:        "akosua@example.com",
		Phone:        "+233501234567",
		BusinessType: models.BusinessTypeWholesale,
	}
	order := models.Order{Status: models.StatusReceived, TotalAmount: 20}
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2, Price: 10, Amount: 20},
	}
	require.NoError(t, repo.CreateWithItems(customer, &order, items))
	return order
}

func TestReplaceItemsRollsBackWhenInsertFails(t *testing.T) {
	db := setupDB(t)
	repo := NewOrderRepository()
	order := seedOrder(t, repo)

	// Two replacement rows claiming the same primary key make the bulk
	// insert fail after the old items are already deleted.
	order.TotalAmount = 99
	order.Status = models.StatusProcessing
	replacement := []models.OrderItem{
		{Model: gorm.Model{ID: 999}, ProductID: 2, Quantity: 1, Price: 50, Amount: 50},
		{Model: gorm.Model{ID: 999}, ProductID: 3, Quantity: 7, Price: 7, Amount: 49},
	}
	require.Error(t, repo.ReplaceItems(&order, replacement))

	var reloaded models.Order
	require.NoError(t, db.Preload("Items").First(&reloaded, order.ID).Error)
	assert.Equal(t, 20.0, reloaded.TotalAmount)
	assert.Equal(t, models.StatusReceived, reloaded.Status)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, uint(1), reloaded.Items[0].ProductID)

	var itemCount int64
	require.NoError(t, db.Unscoped().Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.EqualValues(t, 1, itemCount)
}

func TestDeleteWithItemsLeavesNoRows(t *testing.T) {
	db := setupDB(t)
	repo := NewOrderRepository()
	order := seedOrder(t, repo)

	require.NoError(t, repo.DeleteWithItems(order.ID))

	// Hard delete on both tables: nothing survives an unscoped read either.
	var orderCount, itemCount int64
	require.NoError(t, db.Unscoped().Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Unscoped().Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, itemCount)
}
