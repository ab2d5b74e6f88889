package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// PaymentIntentResult is returned when an order is opened for payment.
// ClientSecret is relayed to the payment widget; OrderID identifies the
// pending order awaiting confirmation.
type PaymentIntentResult struct {
	OrderID      string
	ClientSecret string
}

type OrderService interface {
	// CreatePaymentIntent opens a pending order for the gig and requests a
	// payment intent from the provider.
	CreatePaymentIntent(ctx context.Context, gigID, buyerID string) (*PaymentIntentResult, error)
	// Confirm finalises the order matching the payment reference: verifies
	// the charge with the provider, moves the order to in_progress, and
	// increments the gig's sales counter. The charge and the finalisation are
	// two separate calls; a failure here leaves the order pending with the
	// payment reference stored.
	Confirm(ctx context.Context, paymentIntent string) (*domain.Order, error)
	// ListForUser returns the caller's orders: purchases for buyers,
	// received orders for sellers, everything for admins.
	ListForUser(ctx context.Context, userID string, role domain.Role) ([]*domain.Order, error)
	// UpdateStatus applies a status transition on behalf of a participant.
	UpdateStatus(ctx context.Context, orderID, callerID string, next domain.OrderStatus) (*domain.Order, error)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByPaymentIntent(ctx context.Context, paymentIntent string) (*domain.Order, error)
	// ListByParticipant returns orders where userID is buyer or seller,
	// newest first. An empty userID returns all orders (admin).
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
