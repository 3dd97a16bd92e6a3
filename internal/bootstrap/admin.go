// Package bootstrap holds one-time provisioning steps run from main.
package bootstrap

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/logging"
	"github.com/satellitegroup/printshop/internal/models"
)

// EnsureAdmin promotes the configured email to admin, once. Idempotent:
// it does nothing when no email is configured, when an admin already
// exists, or when the account has not registered yet.
func EnsureAdmin(ctx context.Context, db *gorm.DB, email string) error {
	log := logging.FromContext(ctx)
	if email == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var user models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Info("admin bootstrap: designated account not registered yet", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Model(&user).Update("role", "admin").Error; err != nil {
		return err
	}
	log.Info("admin bootstrap: promoted first admin", "user_id", user.ID)
	return nil
}
