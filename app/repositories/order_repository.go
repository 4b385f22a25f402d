package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// OrderRepository handles database operations for orders and their items.
// Multi-statement writes always run inside a single transaction so an order
// and its items can never diverge.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID loads an order with its items and customer.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var o models.Order
	err := orm.DB().Model(&models.Order{}).Preload("Items").Preload("Customer").Where("id = ?", id).First(&o)
	return o, err
}

// All returns one page of orders, newest first, with customers preloaded.
func (r *OrderRepository) All(page, limit int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	pagination, err := orm.DB().Model(&models.Order{}).Preload("Customer").Order("id desc").GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// Recent returns the newest orders for the dashboard, read through the
// cache under key.
func (r *OrderRepository) Recent(key string, n int, ttl time.Duration) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Preload("Customer").Order("id desc").Limit(n).Cache(key, ttl, &orders)
	return orders, err
}

// CreateWithItems upserts the customer by email and inserts the order with
// its full item set in one transaction. The order's CustomerID and the staff
// attribution (already set on order by the caller, nil for guests) are part
// of the same insert.
func (r *OrderRepository) CreateWithItems(customer models.Customer, order *models.Order, items []models.OrderItem) error {
	customers := NewCustomerRepository()
	return orm.Transaction(func(tx *gorm.DB) error {
		c, err := customers.UpsertByEmailTx(tx, customer)
		if err != nil {
			return err
		}

		order.CustomerID = c.ID
		order.Items = items
		return tx.Create(order).Error
	})
}

// ReplaceItems deletes every existing item of the order and inserts the new
// set, then updates the order row, all in one transaction. A failure at any
// point rolls the whole edit back.
func (r *OrderRepository) ReplaceItems(order *models.Order, items []models.OrderItem) error {
	return orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"total_amount": order.TotalAmount,
			"status":       order.Status,
			"edited_by_id": order.EditedByID,
		}).Error
	})
}

// DeleteWithItems removes the order and all of its items in one transaction.
// Both deletes are hard so no orphaned order row lingers behind the items.
func (r *OrderRepository) DeleteWithItems(id uint) error {
	return orm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", id).Delete(&models.Order{}).Error
	})
}

// UpdateStatus writes the status field and the editor attribution.
func (r *OrderRepository) UpdateStatus(id uint, status string, editedByID *uint) error {
	return orm.DB().Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "edited_by_id": editedByID})
}
