package repositories

import (
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// CatalogCacheKey is the Redis key holding the product catalogue. Product
// mutations must invalidate it.
const CatalogCacheKey = "catalog:products"

// ProductRepository handles database operations for products.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&p)
	return p, err
}

// Catalog returns every product, served read-through from the cache.
func (r *ProductRepository) Catalog(ttl time.Duration) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("name asc").Cache(CatalogCacheKey, ttl, &products)
	return products, err
}

// All returns one page of products straight from the database.
func (r *ProductRepository) All(page, limit int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().Model(&models.Product{}).Order("name asc").GetWithPagination(&products, page, limit)
	return products, pagination, err
}

// Create persists a new product.
func (r *ProductRepository) Create(p *models.Product) error {
	return orm.DB().Create(p)
}

// Update persists changes to a product.
func (r *ProductRepository) Update(p *models.Product) error {
	return orm.DB().Save(p)
}

// Delete soft-deletes a product.
func (r *ProductRepository) Delete(id uint) error {
	return orm.DB().Where("id = ?", id).Delete(&models.Product{})
}
