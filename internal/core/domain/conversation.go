package domain

import (
	"errors"
	"time"
)

var ErrConversationNotFound = errors.New("conversation not found")
var ErrMessageNotFound = errors.New("message not found")

// ConversationID derives the deterministic conversation identifier for a
// seller/buyer pair. The concatenation order is part of the public contract:
// clients compute the same id locally to open an existing thread.
func ConversationID(sellerID, buyerID string) string {
	return sellerID + buyerID
}

// Conversation is a chat thread between one seller and one buyer.
// LastMessage is denormalised for thread listings.
type Conversation struct {
	ID           string    `json:"id" bson:"_id"`
	SellerID     string    `json:"seller_id" bson:"seller_id"`
	BuyerID      string    `json:"buyer_id" bson:"buyer_id"`
	ReadBySeller bool      `json:"read_by_seller" bson:"read_by_seller"`
	ReadByBuyer  bool      `json:"read_by_buyer" bson:"read_by_buyer"`
	LastMessage  string    `json:"last_message,omitempty" bson:"last_message,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// HasParticipant reports whether userID is a side of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.SellerID == userID || c.BuyerID == userID
}

// Message is a single chat entry, persisted independently of the realtime relay.
type Message struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ConversationID string    `json:"conversation_id" bson:"conversation_id"`
	UserID         string    `json:"user_id" bson:"user_id"`
	Desc           string    `json:"desc" bson:"desc"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
