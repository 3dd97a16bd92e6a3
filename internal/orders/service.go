package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/satellitegroup/printshop/internal/models"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

type Service struct {
	Repo *GormRepo
}

// Create persists a checkout submission. Amounts are recomputed from
// the item snapshot; a payload whose totals disagree is rejected rather
// than silently trusted.
func (s *Service) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.OrderNumber == "" {
		return nil, fmt.Errorf("%w: order number required", ErrValidation)
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	var subtotal int64
	for i := range order.Items {
		it := &order.Items[i]
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		subtotal += it.UnitPrice * int64(it.Quantity)
	}
	if order.Subtotal != subtotal {
		return nil, fmt.Errorf("%w: subtotal %d does not match items (%d)", ErrValidation, order.Subtotal, subtotal)
	}
	if order.DeliveryFee < 0 {
		return nil, fmt.Errorf("%w: negative delivery fee", ErrValidation)
	}
	if order.Total != order.Subtotal+order.DeliveryFee {
		return nil, fmt.Errorf("%w: total must equal subtotal + delivery fee", ErrValidation)
	}

	if order.Status == "" {
		order.Status = string(StatusPending)
	}
	return s.Repo.Create(ctx, order)
}

func (s *Service) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListAll(ctx, limit, offset)
}

// Track resolves an order by its shareable number.
func (s *Service) Track(ctx context.Context, number string) (*models.Order, error) {
	order, err := s.Repo.ByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, number)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus applies an admin transition. Re-applying the current
// status is a no-op, not an error. Admin UIs retry confirm clicks.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status Status) (*models.Order, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be pending, confirmed or cancelled", ErrValidation)
	}

	order, err := s.Repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}

	from := Status(order.Status)
	if from == status {
		return order, nil
	}
	if !CanTransition(from, status) {
		return nil, fmt.Errorf("%w: cannot move %s order to %s", ErrConflict, from, status)
	}

	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = string(status)
	return order, nil
}

// AttachReceipt records an uploaded transfer receipt. Status is not
// touched: confirmation stays a separate admin action because transfers
// are reconciled manually against the bank statement.
func (s *Service) AttachReceipt(ctx context.Context, number, url string, at time.Time) (*models.Order, error) {
	order, err := s.Track(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetReceipt(ctx, number, url, at); err != nil {
		return nil, err
	}
	order.ReceiptURL = url
	order.ReceiptUploadedAt = &at
	return order, nil
}
