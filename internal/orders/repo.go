package orders

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) ByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ByNumber(ctx context.Context, number string) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Where("order_number = ?", number).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) ListAll(ctx context.Context, limit, offset int) ([]models.Order, error) {
	var out []models.Order
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) SetStatus(ctx context.Context, id uint, status Status) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *GormRepo) SetReceipt(ctx context.Context, number, url string, at time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_number = ?", number).
		Updates(map[string]interface{}{
			"receipt_url":         url,
			"receipt_uploaded_at": at,
		}).Error
}
