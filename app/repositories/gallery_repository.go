package repositories

import (
	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// GalleryRepository handles database operations for gallery items.
type GalleryRepository struct{}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{}
}

// FindByID looks up a gallery item by primary key.
func (r *GalleryRepository) FindByID(id uint) (models.GalleryItem, error) {
	var g models.GalleryItem
	err := orm.DB().Model(&models.GalleryItem{}).Where("id = ?", id).First(&g)
	return g, err
}

// All returns one page of gallery items, newest first.
func (r *GalleryRepository) All(page, limit int) ([]models.GalleryItem, orm.Pagination, error) {
	var items []models.GalleryItem
	pagination, err := orm.DB().Model(&models.GalleryItem{}).Order("id desc").GetWithPagination(&items, page, limit)
	return items, pagination, err
}

// Create persists a new gallery item.
func (r *GalleryRepository) Create(g *models.GalleryItem) error {
	return orm.DB().Create(g)
}

// Update persists changes to a gallery item.
func (r *GalleryRepository) Update(g *models.GalleryItem) error {
	return orm.DB().Save(g)
}

// Delete soft-deletes a gallery item.
func (r *GalleryRepository) Delete(id uint) error {
	return orm.DB().Where("id = ?", id).Delete(&models.GalleryItem{})
}
