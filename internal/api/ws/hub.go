package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
)

const sendBuffer = 32

// envelope is the wire frame for every relay message, inbound and outbound.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinData struct {
	UserID string `json:"userId"`
}

type sendMessageData struct {
	RecipientID string `json:"recipientId"`
	Text        string `json:"text"`
}

type getMessageData struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

// client is one connected websocket. Outbound frames go through a buffered
// channel drained by a dedicated writer goroutine, so a slow reader never
// blocks the hub; when the buffer is full the frame is dropped.
type client struct {
	userID string
	conn   *websocket.Conn
	send   chan envelope
}

// presenceRegistry is the slice of the redis presence store the hub needs.
type presenceRegistry interface {
	Mark(ctx context.Context, userID string) error
	Clear(ctx context.Context, userID string) error
}

// Hub relays chat messages between connected users. Delivery is best-effort:
// an offline recipient or a full send buffer drops the frame, and the
// persisted transcript (written over REST) remains the source of truth.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*client
	presence presenceRegistry
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewHub creates a relay hub. allowedOrigin restricts browser connections;
// an empty value accepts any origin.
func NewHub(presence presenceRegistry, allowedOrigin string, log zerolog.Logger) *Hub {
	return &Hub{
		clients:  make(map[string]*client),
		presence: presence,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		log: log,
	}
}

// Serve handles GET /ws: upgrades the connection and runs the read loop until
// the peer disconnects. The first frame must be a join event; messages sent
// before joining are dropped.
func (h *Hub) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	cl := &client{conn: conn, send: make(chan envelope, sendBuffer)}
	go cl.writeLoop()
	metrics.ChatConnections.Inc()

	defer func() {
		h.unregister(cl)
		metrics.ChatConnections.Dec()
		_ = conn.Close()
	}()

	ctx := c.Request().Context()
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug().Err(err).Str("user_id", cl.userID).Msg("websocket closed unexpectedly")
			}
			return nil
		}

		switch env.Event {
		case "join":
			var data joinData
			if err := json.Unmarshal(env.Data, &data); err != nil || data.UserID == "" {
				continue
			}
			h.register(ctx, cl, data.UserID)
		case "sendMessage":
			if cl.userID == "" {
				continue
			}
			var data sendMessageData
			if err := json.Unmarshal(env.Data, &data); err != nil || data.RecipientID == "" {
				continue
			}
			h.relay(ctx, cl.userID, data.RecipientID, data.Text)
		default:
			h.log.Debug().Str("event", env.Event).Msg("unknown websocket event")
		}
	}
}

// register binds the connection to a user id. A second connection for the
// same user replaces the first; a second join on the same connection under a
// different id releases the old mapping, so no entry ever outlives the
// connection it points at.
func (h *Hub) register(ctx context.Context, cl *client, userID string) {
	h.mu.Lock()
	if cl.userID != "" && cl.userID != userID && h.clients[cl.userID] == cl {
		delete(h.clients, cl.userID)
	}
	cl.userID = userID
	prev := h.clients[userID]
	h.clients[userID] = cl
	h.mu.Unlock()

	if prev != nil && prev != cl {
		_ = prev.conn.Close()
	}

	if err := h.presence.Mark(ctx, userID); err != nil {
		h.log.Warn().Err(err).Str("user_id", userID).Msg("presence mark failed")
	}
}

// unregister removes the connection and closes its send channel. The close
// happens under the hub lock; relay sends under the read lock, so no send can
// race the close. Presence is cleared only when this connection still owned
// the mapping: a connection replaced by a newer one for the same user must
// not mark that user offline.
func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	owned := cl.userID != "" && h.clients[cl.userID] == cl
	if owned {
		delete(h.clients, cl.userID)
	}
	close(cl.send)
	h.mu.Unlock()

	if !owned {
		return
	}

	if err := h.presence.Clear(context.Background(), cl.userID); err != nil {
		h.log.Warn().Err(err).Str("user_id", cl.userID).Msg("presence clear failed")
	}
}

// relay forwards a message to the recipient's connection if one exists. The
// sender never receives an echo of its own message.
func (h *Hub) relay(ctx context.Context, senderID, recipientID, text string) {
	if err := h.presence.Mark(ctx, senderID); err != nil {
		h.log.Warn().Err(err).Str("user_id", senderID).Msg("presence refresh failed")
	}

	data, err := json.Marshal(getMessageData{SenderID: senderID, Text: text})
	if err != nil {
		metrics.ChatMessagesTotal.WithLabelValues("dropped").Inc()
		return
	}

	// Lookup and send happen under the same read lock so the channel cannot
	// be closed between them.
	h.mu.RLock()
	defer h.mu.RUnlock()

	recipient := h.clients[recipientID]
	if recipient == nil {
		metrics.ChatMessagesTotal.WithLabelValues("dropped").Inc()
		return
	}

	select {
	case recipient.send <- envelope{Event: "getMessage", Data: data}:
		metrics.ChatMessagesTotal.WithLabelValues("delivered").Inc()
	default:
		// Recipient's buffer is full; drop rather than block the reader.
		metrics.ChatMessagesTotal.WithLabelValues("dropped").Inc()
	}
}

// Online reports whether userID has a connection on this instance.
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

func (cl *client) writeLoop() {
	for env := range cl.send {
		if err := cl.conn.WriteJSON(env); err != nil {
			return
		}
	}
}
