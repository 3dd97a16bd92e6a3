package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

type Repo struct {
	DB *gorm.DB
}

func (r *Repo) Get(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Replace swaps the user's whole server cart for the given lines.
// Runs as one transaction so a reader never sees the half-deleted
// state; two concurrent replaces still resolve last-write-wins.
func (r *Repo) Replace(ctx context.Context, userID uint, lines []models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range lines {
			line := lines[i]
			if line.ItemID == "" || line.ProductID == "" || line.Quantity < 1 {
				continue
			}
			line.ID = 0
			line.UserID = userID
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
