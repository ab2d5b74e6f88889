package client

import (
	"context"
	"net/http"
	"net/url"
)

// ConversationID computes the deterministic thread id for a seller/buyer
// pair. It matches the server's derivation, so a client can address an
// existing thread without listing first.
func ConversationID(sellerID, buyerID string) string {
	return sellerID + buyerID
}

// Conversations lists the caller's chat threads, most recently active first.
func (c *Client) Conversations(ctx context.Context) ([]Conversation, error) {
	var convs []Conversation
	if err := c.do(ctx, http.MethodGet, "/api/conversations", nil, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// OpenConversation creates (or returns) the thread between the caller and
// the target user.
func (c *Client) OpenConversation(ctx context.Context, to string) (*Conversation, error) {
	body := map[string]string{"to": to}

	var conv Conversation
	if err := c.do(ctx, http.MethodPost, "/api/conversations", body, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// Conversation fetches a single thread by id; participants only.
func (c *Client) Conversation(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, http.MethodGet, "/api/conversations/single/"+url.PathEscape(id), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// MarkConversationRead flips the caller's read flag on the thread.
func (c *Client) MarkConversationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/conversations/"+url.PathEscape(id), nil, nil)
}
