// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/ikilo/storefront-backend/internal/domain/catalog"
	"github.com/sirupsen/logrus"
)

// ProductCatalog resolves products when lines are added, so the cart can
// snapshot the authoritative name and unit price at add time
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// Service handles cart business logic
type Service struct {
	store   Store
	catalog ProductCatalog
	log     *logrus.Logger
}

// NewService creates a new cart service
func NewService(store Store, productCatalog ProductCatalog, log *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: productCatalog,
		log:     log,
	}
}

// AddLineRequest represents an add-to-cart request
type AddLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Variation string `json:"variation" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateLineRequest represents a quantity update for one cart line.
// Quantity zero removes the line.
type UpdateLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Variation string `json:"variation" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// RemoveLineRequest identifies the cart line to drop
type RemoveLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Variation string `json:"variation" binding:"required"`
}

// Response represents a cart with its derived totals
type Response struct {
	SessionID string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	Totals    Totals    `json:"totals"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return respond(session), nil
}

// Lines returns the current cart lines for a session
func (s *Service) Lines(ctx context.Context, sessionID string) ([]Line, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Lines, nil
}

// AddLine resolves the product variation from the catalog and merges it
// into the cart
func (s *Service) AddLine(ctx context.Context, sessionID string, req *AddLineRequest) (*Response, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	variation := product.FindVariation(req.Variation)
	if variation == nil {
		return nil, fmt.Errorf("variation %q not available for %s", req.Variation, product.Name)
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lines = Add(session.Lines, Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		Variation:   variation.Name,
		Price:       variation.Price,
		Quantity:    req.Quantity,
	})
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return respond(session), nil
}

// UpdateLine sets the quantity of a cart line; zero removes it
func (s *Service) UpdateLine(ctx context.Context, sessionID string, req *UpdateLineRequest) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lines = SetQuantity(session.Lines, req.ProductID, req.Variation, req.Quantity)
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return respond(session), nil
}

// RemoveLine drops a cart line
func (s *Service) RemoveLine(ctx context.Context, sessionID string, req *RemoveLineRequest) (*Response, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lines = Remove(session.Lines, req.ProductID, req.Variation)
	session.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return respond(session), nil
}

// Clear empties the cart for a session
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func respond(session *Session) *Response {
	return &Response{
		SessionID: session.ID,
		Lines:     session.Lines,
		Totals:    Sum(session.Lines),
		UpdatedAt: session.UpdatedAt,
	}
}
