package ports

import "context"

// PaymentIntent is the provider-side handle for a pending charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProvider abstracts the external payment processor. Amounts are in
// the smallest currency unit (cents).
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (*PaymentIntent, error)
	// Succeeded reports whether the charge behind intentID completed.
	Succeeded(ctx context.Context, intentID string) (bool, error)
}
