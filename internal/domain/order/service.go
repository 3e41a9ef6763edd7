// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSinkUnavailable signals that the order store never came up. Checkout
// logs it and proceeds; the admin API maps it to a 503.
var ErrSinkUnavailable = errors.New("order store unavailable")

// ErrNotFound signals an unknown order id
var ErrNotFound = errors.New("order not found")

// ErrInvalidTransition signals a disallowed status change
var ErrInvalidTransition = errors.New("invalid status transition")

// Service persists and manages orders. The db handle may be nil; every
// operation then reports ErrSinkUnavailable instead of failing hard.
type Service struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewService creates a new order service
func NewService(db *gorm.DB, log *logrus.Logger) *Service {
	return &Service{
		db:  db,
		log: log,
	}
}

// Save persists an order and returns its store-assigned id. The store
// assigns CreatedAt; callers must not set it.
func (s *Service) Save(ctx context.Context, o *Order) (uint, error) {
	if s.db == nil {
		return 0, ErrSinkUnavailable
	}

	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	return o.ID, nil
}

// ListResponse represents a page of orders
type ListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// List retrieves orders newest first
func (s *Service) List(ctx context.Context, page, limit int) (*ListResponse, error) {
	if s.db == nil {
		return nil, ErrSinkUnavailable
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Order{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

// Get retrieves a single order by id
func (s *Service) Get(ctx context.Context, id uint) (*Order, error) {
	if s.db == nil {
		return nil, ErrSinkUnavailable
	}

	var o Order
	err := s.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	return &o, nil
}

// UpdateStatus moves an order to the next status, enforcing that pending
// is the only state orders leave
func (s *Service) UpdateStatus(ctx context.Context, id uint, next Status) (*Order, error) {
	if s.db == nil {
		return nil, ErrSinkUnavailable
	}

	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}

	o.Status = next
	if err := s.db.WithContext(ctx).Save(o).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"component":    "order",
		"order_number": o.OrderNumber,
		"status":       next,
	}).Info("order status updated")

	return o, nil
}
