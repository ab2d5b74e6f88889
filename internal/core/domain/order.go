package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderDelivered  OrderStatus = "delivered"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// validOrderTransitions defines the allowed state machine transitions.
// An order becomes in_progress only through payment confirmation.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderDelivered, OrderCancelled},
	OrderDelivered:  {OrderCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrPaymentUnconfirmed = errors.New("payment not confirmed")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order records a buyer's purchase of a gig. Title, Img, and Price are
// captured at creation time so the order survives later gig edits.
type Order struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	GigID         string      `json:"gig_id" bson:"gig_id"`
	Img           string      `json:"img" bson:"img"`
	Title         string      `json:"title" bson:"title"`
	Price         int         `json:"price" bson:"price"`
	SellerID      string      `json:"seller_id" bson:"seller_id"`
	BuyerID       string      `json:"buyer_id" bson:"buyer_id"`
	Status        OrderStatus `json:"status" bson:"status"`
	PaymentIntent string      `json:"payment_intent,omitempty" bson:"payment_intent,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}
