// Package quotes stores custom-job inquiries from the public quote
// form. A quote request is contact details plus a job description;
// admins read the list and follow up off-platform.
package quotes

import (
	"context"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

const (
	DesignStatusHave = "have"
	DesignStatusNeed = "need"
)

func ValidDesignStatus(s string) bool {
	return s == DesignStatusHave || s == DesignStatusNeed
}

type Repo struct {
	DB *gorm.DB
}

func (r *Repo) Create(ctx context.Context, q *models.QuoteRequest) (*models.QuoteRequest, error) {
	if err := r.DB.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// ListAll returns quote requests newest first.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]models.QuoteRequest, error) {
	var out []models.QuoteRequest
	err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
