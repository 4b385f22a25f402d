package repositories

import (
	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/orm"
)

// ActivityRepository appends and lists audit-log rows.
type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Create appends one audit row.
func (r *ActivityRepository) Create(a *models.Activity) error {
	return orm.DB().Create(a)
}

// All returns one page of audit rows, newest first.
func (r *ActivityRepository) All(page, limit int) ([]models.Activity, orm.Pagination, error) {
	var rows []models.Activity
	pagination, err := orm.DB().Model(&models.Activity{}).Order("id desc").GetWithPagination(&rows, page, limit)
	return rows, pagination, err
}
