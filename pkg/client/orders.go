package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ErrPaymentConfirmation is returned by ConfirmOrder when the charge could
// not be verified with the payment provider. The charge may have gone
// through; surface this as "contact support" rather than retrying payment.
var ErrPaymentConfirmation = errors.New("payment confirmation failed, contact support")

// PaymentIntentResult is the handle returned when an order is opened for
// payment. ClientSecret feeds the payment widget; OrderID identifies the
// pending order.
type PaymentIntentResult struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

// Orders lists the caller's orders: purchases for buyers, received orders
// for sellers, everything for admins.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreatePaymentIntent opens a pending order for the gig and returns the
// payment widget's client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, gigID string) (*PaymentIntentResult, error) {
	var result PaymentIntentResult
	if err := c.do(ctx, http.MethodPost, "/api/orders/create-payment-intent/"+url.PathEscape(gigID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmOrder finalises the order behind a completed payment. A failed
// confirmation returns ErrPaymentConfirmation (wrapping the API error) so
// callers can distinguish it from a declined charge.
func (c *Client) ConfirmOrder(ctx context.Context, paymentIntent string) (*Order, error) {
	body := map[string]string{"payment_intent": paymentIntent}

	var order Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/confirm", body, &order); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadGateway {
			return nil, errors.Join(ErrPaymentConfirmation, err)
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applies a status transition: "delivered" (seller),
// "completed" (buyer), or "cancelled" (either side).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*Order, error) {
	body := map[string]string{"status": status}

	var order Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/status/"+url.PathEscape(orderID), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
