package services

import (
	"fmt"
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/app/repositories"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/collection"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

const catalogTTL = 5 * time.Minute

// CatalogEntry is the product shape consumed by the order form's product
// picker: both price points so the client can show the applicable one.
type CatalogEntry struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Size           string  `json:"size"`
	Image          string  `json:"image"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
}

// ProductService owns the catalogue reads and staff product mutations.
type ProductService struct {
	repo     *repositories.ProductRepository
	activity *ActivityService
}

func NewProductService() *ProductService {
	return &ProductService{
		repo:     repositories.NewProductRepository(),
		activity: NewActivityService(),
	}
}

// Catalog returns the product-picker listing, Redis-cached.
func (s *ProductService) Catalog() ([]CatalogEntry, error) {
	products, err := s.repo.Catalog(catalogTTL)
	if err != nil {
		return nil, err
	}
	return collection.Map(products, func(p models.Product) CatalogEntry {
		return CatalogEntry{
			ID:             p.ID,
			Name:           p.Name,
			Size:           p.Size,
			Image:          p.Image,
			WholesalePrice: p.WholesalePrice,
			RetailPrice:    p.RetailPrice,
		}
	}), nil
}

// Get loads one product.
func (s *ProductService) Get(id uint) (models.Product, error) {
	return s.repo.FindByID(id)
}

// List returns one page of products for the admin screens.
func (s *ProductService) List(page, limit int) ([]models.Product, orm.Pagination, error) {
	return s.repo.All(page, limit)
}

// Create stores a product and invalidates the catalogue cache.
func (s *ProductService) Create(p *models.Product, actor *Actor) Result {
	if p.Name == "" {
		return fail("product name is required")
	}
	if err := s.repo.Create(p); err != nil {
		logger.Error("product: create failed", "name", p.Name, "error", err)
		return fail("could not save the product")
	}

	s.invalidate()
	s.audit(actor, "product.create", fmt.Sprintf("Product %q added", p.Name), p.ID)
	return ok(fmt.Sprintf("Product %q added", p.Name))
}

// Update stores changes to a product and invalidates the catalogue cache.
func (s *ProductService) Update(p *models.Product, actor *Actor) Result {
	if err := s.repo.Update(p); err != nil {
		logger.Error("product: update failed", "id", p.ID, "error", err)
		return fail("could not update the product")
	}

	s.invalidate()
	s.audit(actor, "product.update", fmt.Sprintf("Product %q updated", p.Name), p.ID)
	return ok(fmt.Sprintf("Product %q updated", p.Name))
}

// Delete removes a product and invalidates the catalogue cache.
func (s *ProductService) Delete(id uint, actor *Actor) Result {
	if err := s.repo.Delete(id); err != nil {
		logger.Error("product: delete failed", "id", id, "error", err)
		return fail("could not delete the product")
	}

	s.invalidate()
	s.audit(actor, "product.delete", fmt.Sprintf("Product #%d deleted", id), id)
	return ok("Product deleted")
}

func (s *ProductService) invalidate() {
	orm.ForgetCache(repositories.CatalogCacheKey)
}

func (s *ProductService) audit(actor *Actor, action, message string, productID uint) {
	var actorID *uint
	if actor != nil {
		actorID = &actor.ID
	}
	s.activity.Record(actorID, action, message, map[string]interface{}{"productId": productID})
}
