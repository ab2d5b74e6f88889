package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// ChatMessage is one realtime frame received over the chat socket.
type ChatMessage struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

type wsEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ChatConn is a live connection to the chat relay. Delivery is best-effort
// in both directions: there is no acknowledgement, no queueing for offline
// recipients, and no automatic reconnection — when the connection drops the
// caller dials again and refetches the transcript over REST.
type ChatConn struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
}

// DialChat connects to the relay and announces the session's identity.
// Requires an authenticated session.
func (c *Client) DialChat(ctx context.Context) (*ChatConn, error) {
	s := c.Session()
	if s.Empty() {
		return nil, fmt.Errorf("dial chat: no session")
	}

	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial chat: %w", err)
	}

	cc := &ChatConn{conn: conn}
	if err := cc.writeEvent("join", map[string]string{"userId": s.Identity.ID}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("join chat: %w", err)
	}
	return cc, nil
}

// Send relays a message to recipientID. A nil error means the frame left
// this client, not that the recipient saw it.
func (cc *ChatConn) Send(recipientID, text string) error {
	return cc.writeEvent("sendMessage", map[string]string{
		"recipientId": recipientID,
		"text":        text,
	})
}

// Listen reads incoming messages and invokes fn for each until the
// connection closes or ctx is cancelled. It returns the first read error;
// a deliberate Close returns nil.
func (cc *ChatConn) Listen(ctx context.Context, fn func(ChatMessage)) error {
	go func() {
		<-ctx.Done()
		_ = cc.Close()
	}()

	for {
		var env wsEnvelope
		if err := cc.conn.ReadJSON(&env); err != nil {
			cc.mu.Lock()
			closed := cc.closed
			cc.mu.Unlock()
			if closed || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("chat read: %w", err)
		}

		if env.Event != "getMessage" {
			continue
		}
		var msg ChatMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			continue
		}
		fn(msg)
	}
}

// Close shuts the connection down.
func (cc *ChatConn) Close() error {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.closed {
		return nil
	}
	cc.closed = true
	return cc.conn.Close()
}

func (cc *ChatConn) writeEvent(event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.closed {
		return fmt.Errorf("chat connection closed")
	}
	return cc.conn.WriteJSON(wsEnvelope{Event: event, Data: raw})
}
