package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// CustomerRepository handles database operations for customers.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindByEmail looks up a customer by email.
func (r *CustomerRepository) FindByEmail(email string) (models.Customer, error) {
	var c models.Customer
	err := orm.DB().Model(&models.Customer{}).Where("email = ?", email).First(&c)
	return c, err
}

// FindByID looks up a customer by primary key.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var c models.Customer
	err := orm.DB().Model(&models.Customer{}).Where("id = ?", id).First(&c)
	return c, err
}

// UpsertByEmailTx finds the customer with fields.Email inside tx, creating
// it when absent. Existing customers get their contact fields refreshed from
// the latest submission.
func (r *CustomerRepository) UpsertByEmailTx(tx *gorm.DB, fields models.Customer) (models.Customer, error) {
	var c models.Customer
	err := tx.Where("email = ?", fields.Email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(&fields).Error; err != nil {
			return models.Customer{}, err
		}
		return fields, nil
	}
	if err != nil {
		return models.Customer{}, err
	}

	c.Name = fields.Name
	c.Phone = fields.Phone
	c.BusinessName = fields.BusinessName
	c.Location = fields.Location
	c.Address = fields.Address
	c.BusinessType = fields.BusinessType
	if err := tx.Save(&c).Error; err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// All returns one page of customers.
func (r *CustomerRepository) All(page, limit int) ([]models.Customer, orm.Pagination, error) {
	var customers []models.Customer
	pagination, err := orm.DB().Model(&models.Customer{}).Order("id desc").GetWithPagination(&customers, page, limit)
	return customers, pagination, err
}
