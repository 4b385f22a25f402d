package repositories

import (
	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// BlogRepository handles database operations for blog posts.
type BlogRepository struct{}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

// FindByID looks up a post by primary key.
func (r *BlogRepository) FindByID(id uint) (models.Blog, error) {
	var b models.Blog
	err := orm.DB().Model(&models.Blog{}).Where("id = ?", id).First(&b)
	return b, err
}

// FindBySlug looks up a post by slug.
func (r *BlogRepository) FindBySlug(slug string) (models.Blog, error) {
	var b models.Blog
	err := orm.DB().Model(&models.Blog{}).Where("slug = ?", slug).First(&b)
	return b, err
}

// All returns one page of posts, newest first.
func (r *BlogRepository) All(page, limit int) ([]models.Blog, orm.Pagination, error) {
	var blogs []models.Blog
	pagination, err := orm.DB().Model(&models.Blog{}).Order("id desc").GetWithPagination(&blogs, page, limit)
	return blogs, pagination, err
}

// Create persists a new post.
func (r *BlogRepository) Create(b *models.Blog) error {
	return orm.DB().Create(b)
}

// Update persists changes to a post.
func (r *BlogRepository) Update(b *models.Blog) error {
	return orm.DB().Save(b)
}

// Delete soft-deletes a post.
func (r *BlogRepository) Delete(id uint) error {
	return orm.DB().Where("id = ?", id).Delete(&models.Blog{})
}
