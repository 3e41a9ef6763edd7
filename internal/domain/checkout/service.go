// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/domain/cart"
	"github.com/ikilo/storefront-backend/internal/domain/order"
	"github.com/ikilo/storefront-backend/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// ErrMissingCustomerInfo signals empty required customer fields
var ErrMissingCustomerInfo = errors.New("name, phone and address are required")

// ErrEmptyCart signals a checkout attempt with nothing in the cart
var ErrEmptyCart = errors.New("cart is empty")

// Cart is the slice of the cart service checkout needs: read the current
// lines and clear the session once the handoff material exists
type Cart interface {
	Lines(ctx context.Context, sessionID string) ([]cart.Line, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderSink persists composed orders on a best-effort basis
type OrderSink interface {
	Save(ctx context.Context, o *order.Order) (uint, error)
}

// Service composes orders from carts: it builds the order record, renders
// the outbound message, hands persistence to the sink without waiting for
// it, and produces the messaging-channel URI.
type Service struct {
	carts  Cart
	sink   OrderSink
	config *config.Config
	log    *logrus.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new checkout service
func NewService(carts Cart, sink OrderSink, cfg *config.Config, log *logrus.Logger) *Service {
	loc, err := time.LoadLocation(cfg.Store.Timezone)
	if err != nil {
		log.WithField("timezone", cfg.Store.Timezone).
			Warn("unknown store timezone, using UTC")
		loc = time.UTC
	}

	return &Service{
		carts:  carts,
		sink:   sink,
		config: cfg,
		log:    log,
		loc:    loc,
		now:    time.Now,
	}
}

// Request carries the customer-entered checkout fields
type Request struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	Notes           string `json:"notes"`
}

// Delivery modes for the messaging handoff. Touch-handheld agents navigate
// directly because opening a new browsing context trips their popup
// blockers; everything else opens a new context.
const (
	DeliveryNavigate = "navigate"
	DeliveryPopup    = "popup"
)

// Response represents a completed checkout
type Response struct {
	Order       *order.Order `json:"order"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsapp_url"`
	Delivery    string       `json:"delivery"`
}

// Checkout validates the request, composes the order from the current
// cart, launches the best-effort persistence attempt, renders the message
// and wa.me handoff URI, and clears the cart. The cart is cleared only
// after the snapshot and handoff material exist.
func (s *Service) Checkout(ctx context.Context, sessionID, userAgent string, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	address := strings.TrimSpace(req.CustomerAddress)
	if name == "" || phone == "" || address == "" {
		return nil, ErrMissingCustomerInfo
	}

	lines, err := s.carts.Lines(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	composedAt := s.now().In(s.loc)
	o := composeOrder(lines, name, phone, address, strings.TrimSpace(req.Notes), composedAt)

	// Best-effort persistence, detached from the checkout flow. The copy
	// keeps the sink's writes off the order the response is holding.
	go s.persist(cloneOrder(o))

	message := RenderMessage(o, composedAt, s.config.Store.Name)
	waURL := s.WhatsAppURL(message, "")

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.log.WithField("component", "checkout").WithError(err).
			Warn("failed to clear cart after checkout")
	}

	s.log.WithFields(logrus.Fields{
		"component":    "checkout",
		"order_number": o.OrderNumber,
		"total_price":  o.TotalPrice,
		"items":        len(o.Items),
	}).Info("order composed")

	return &Response{
		Order:       o,
		Message:     message,
		WhatsAppURL: waURL,
		Delivery:    DeliveryMode(userAgent),
	}, nil
}

// WhatsAppURL builds the messaging handoff URI. An empty recipient falls
// back to the configured store number.
func (s *Service) WhatsAppURL(message, recipient string) string {
	if recipient == "" {
		recipient = s.config.Store.WhatsAppNumber
	}

	// encodeURIComponent-style escaping: spaces as %20, not +
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return fmt.Sprintf("%s/%s?text=%s", s.config.Store.WhatsAppBaseURL, recipient, encoded)
}

// DeliveryMode picks the handoff delivery for a user agent
func DeliveryMode(userAgent string) string {
	for _, handheld := range []string{"iPhone", "iPad", "iPod", "Android"} {
		if strings.Contains(userAgent, handheld) {
			return DeliveryNavigate
		}
	}
	return DeliveryPopup
}

// composeOrder snapshots the cart lines by value into a pending order.
// Totals come from the snapshot, never from a catalog re-read.
func composeOrder(lines []cart.Line, name, phone, address, notes string, composedAt time.Time) *order.Order {
	items := make([]order.Item, len(lines))
	var total int64
	for i, l := range lines {
		items[i] = order.Item{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Variation:   l.Variation,
			Price:       l.Price,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		}
		total += items[i].Subtotal
	}

	return &order.Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", composedAt.UnixMilli()),
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Notes:           notes,
		Items:           items,
		TotalPrice:      total,
		Status:          order.StatusPending,
	}
}

func cloneOrder(o *order.Order) *order.Order {
	clone := *o
	clone.Items = make([]order.Item, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}

// persist runs the single best-effort save attempt. Failure is logged and
// swallowed; there is no retry and no queue.
func (s *Service) persist(o *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := s.sink.Save(ctx, o)
	if errors.Is(err, order.ErrSinkUnavailable) {
		metrics.OrdersComposed.WithLabelValues("false").Inc()
		s.log.WithFields(logrus.Fields{
			"component":    "checkout",
			"order_number": o.OrderNumber,
		}).Warn("order store unavailable, order not persisted")
		return
	}
	if err != nil {
		metrics.OrdersComposed.WithLabelValues("false").Inc()
		s.log.WithFields(logrus.Fields{
			"component":    "checkout",
			"order_number": o.OrderNumber,
		}).WithError(err).Warn("failed to persist order")
		return
	}

	metrics.OrdersComposed.WithLabelValues("true").Inc()
	s.log.WithFields(logrus.Fields{
		"component":    "checkout",
		"order_number": o.OrderNumber,
		"order_id":     id,
	}).Info("order persisted")
}
