package migrations

import (
	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_customers_table", &CreateCustomersTable{})
	migration.Register("20260301000002_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000003_create_orders_tables", &CreateOrdersTables{})
	migration.Register("20260301000004_create_content_tables", &CreateContentTables{})
	migration.Register("20260301000005_create_activities_table", &CreateActivitiesTable{})
}

// -------- 0000: staff users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0001: customers --------

type CreateCustomersTable struct{}

func (m *CreateCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *CreateCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: orders + items --------

type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items", "orders")
}

// -------- 0004: blog + gallery --------

type CreateContentTables struct{}

func (m *CreateContentTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Blog{}, &models.GalleryItem{})
}

func (m *CreateContentTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("blogs", "gallery_items")
}

// -------- 0005: audit log --------

type CreateActivitiesTable struct{}

func (m *CreateActivitiesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Activity{})
}

func (m *CreateActivitiesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("activities")
}
