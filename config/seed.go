package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admin-panel-server/models"
)

const seedAdminEmail = "admin@blogplateform.com"

// SeedAdmin creates the bootstrap Admin account when none exists yet.
// Returns (false, nil) when the account was already there.
func SeedAdmin(db *gorm.DB) (bool, error) {
	var existing models.User
	err := db.Where("email = ?", seedAdminEmail).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	password := getenv("ADMIN_SEED_PASSWORD", "12345678")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := models.User{
		Username: "Admin",
		Email:    seedAdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Verified: true,
		IsActive: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return false, err
	}

	return true, nil
}
