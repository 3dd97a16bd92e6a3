package wishlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

type Repo struct {
	DB *gorm.DB
}

// List returns the user's wishlisted product ids, newest first.
func (r *Repo) List(ctx context.Context, userID uint) ([]string, error) {
	var entries []models.WishlistEntry
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ProductID
	}
	return ids, nil
}

// Toggle inserts the pair if absent, removes it if present, and
// reports which happened so the caller can update optimistically.
func (r *Repo) Toggle(ctx context.Context, userID uint, productID string) (string, error) {
	var existing models.WishlistEntry
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error

	if err == nil {
		if err := r.DB.WithContext(ctx).Delete(&existing).Error; err != nil {
			return "", err
		}
		return ActionRemoved, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	entry := models.WishlistEntry{UserID: userID, ProductID: productID}
	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", err
	}
	return ActionAdded, nil
}
