package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type OrderService struct {
	orders   ports.OrderRepository
	gigs     ports.GigRepository
	payments ports.PaymentProvider
	currency string
	logger   zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	gigs ports.GigRepository,
	payments ports.PaymentProvider,
	currency string,
	logger zerolog.Logger,
) *OrderService {
	if currency == "" {
		currency = "usd"
	}
	return &OrderService{orders: orders, gigs: gigs, payments: payments, currency: currency, logger: logger}
}

// CreatePaymentIntent opens a pending order and requests a payment intent.
// The order is written before the client is charged so a confirmation can
// always find it by payment reference.
func (s *OrderService) CreatePaymentIntent(ctx context.Context, gigID, buyerID string) (*ports.PaymentIntentResult, error) {
	gig, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.UserID == buyerID {
		return nil, domain.ErrForbidden
	}

	intent, err := s.payments.CreateIntent(ctx, int64(gig.Price)*100, s.currency)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		GigID:         gig.ID,
		Img:           gig.Cover,
		Title:         gig.Title,
		Price:         gig.Price,
		SellerID:      gig.UserID,
		BuyerID:       buyerID,
		Status:        domain.OrderPending,
		PaymentIntent: intent.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().Str("order_id", created.ID).Str("gig_id", gigID).Str("buyer_id", buyerID).Msg("order opened for payment")

	return &ports.PaymentIntentResult{OrderID: created.ID, ClientSecret: intent.ClientSecret}, nil
}

// Confirm finalises the order behind paymentIntent. The charge already
// happened on the client; this is the second, non-atomic step. On failure the
// order stays pending with the payment reference stored, so a later retry or
// support intervention can reconcile it.
func (s *OrderService) Confirm(ctx context.Context, paymentIntent string) (*domain.Order, error) {
	order, err := s.orders.FindByPaymentIntent(ctx, paymentIntent)
	if err != nil {
		return nil, err
	}

	ok, err := s.payments.Succeeded(ctx, paymentIntent)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if !ok {
		return nil, domain.ErrPaymentUnconfirmed
	}

	if order.Status != domain.OrderPending {
		// Confirmation replayed after success: idempotent.
		return order, nil
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, domain.OrderInProgress); err != nil {
		return nil, fmt.Errorf("finalize order: %w", err)
	}
	order.Status = domain.OrderInProgress

	if err := s.gigs.IncrementSales(ctx, order.GigID); err != nil {
		// Non-fatal: the order is already confirmed.
		s.logger.Warn().Err(err).Str("gig_id", order.GigID).Msg("failed to bump gig sales")
	}

	metrics.OrdersStatusTotal.WithLabelValues(string(domain.OrderInProgress)).Inc()
	s.logger.Info().Str("order_id", order.ID).Str("payment_intent", paymentIntent).Msg("order confirmed")
	return order, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID string, role domain.Role) ([]*domain.Order, error) {
	if role == domain.RoleAdmin {
		return s.orders.ListByParticipant(ctx, "")
	}
	return s.orders.ListByParticipant(ctx, userID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, callerID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != callerID && order.BuyerID != callerID {
		return nil, domain.ErrForbidden
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}
	if err := checkTransitionActor(order, callerID, next); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next

	metrics.OrdersStatusTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().Str("order_id", orderID).Str("status", string(next)).Msg("order status updated")
	return order, nil
}

// checkTransitionActor enforces which side may drive a transition: the seller
// delivers, the buyer completes, either side may cancel.
func checkTransitionActor(order *domain.Order, callerID string, next domain.OrderStatus) error {
	switch next {
	case domain.OrderDelivered:
		if callerID != order.SellerID {
			return domain.ErrForbidden
		}
	case domain.OrderCompleted:
		if callerID != order.BuyerID {
			return domain.ErrForbidden
		}
	case domain.OrderCancelled:
		// either participant
	default:
		// in_progress is reachable only through payment confirmation
		return domain.ErrForbidden
	}
	return nil
}
