package client

import (
	"context"
	"net/http"
	"net/url"
)

// Messages fetches a conversation's persisted transcript, oldest first.
func (c *Client) Messages(ctx context.Context, conversationID string) ([]Message, error) {
	var msgs []Message
	if err := c.do(ctx, http.MethodGet, "/api/messages/"+url.PathEscape(conversationID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage persists a message in a conversation. Realtime delivery to the
// other participant goes over the chat socket separately; the transcript
// written here is the source of truth.
func (c *Client) SendMessage(ctx context.Context, conversationID, desc string) (*Message, error) {
	body := map[string]string{"conversationId": conversationID, "desc": desc}

	var msg Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
