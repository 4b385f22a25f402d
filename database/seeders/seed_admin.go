package seeders

import (
	"gorm.io/gorm"

	"github.com/jackmarxreacher-creator/rby-sub000/app/models"
	"github.com/jackmarxreacher-creator/rby-sub000/config"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdmin)
}

// SeedAdmin creates the initial ADMIN account when no user with the
// configured email exists. Override the defaults with ADMIN_EMAIL and
// ADMIN_PASSWORD before first boot.
func SeedAdmin(db *gorm.DB) error {
	email := config.Get("ADMIN_EMAIL", "admin@rby.example")

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "change-me-now"))
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "RBY Admin",
		Email:    email,
		Password: hash,
		Role:     "ADMIN",
	}).Error
}
