package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const presenceTTL = 90 * time.Second

// Presence tracks which users currently hold a realtime chat connection.
// Key format: presence:<user_id>. Entries expire on their own so a crashed
// instance never leaves users marked online forever.
type Presence struct {
	client *redis.Client
}

// NewPresence creates a Presence registry wrapping the given Redis client.
func NewPresence(client *redis.Client) *Presence {
	return &Presence{client: client}
}

// Mark records userID as connected (refreshes the TTL when already present).
func (p *Presence) Mark(ctx context.Context, userID string) error {
	return p.client.Set(ctx, p.key(userID), "1", presenceTTL).Err()
}

// Clear removes userID from the registry.
func (p *Presence) Clear(ctx context.Context, userID string) error {
	return p.client.Del(ctx, p.key(userID)).Err()
}

// IsOnline reports whether userID currently holds a connection.
func (p *Presence) IsOnline(ctx context.Context, userID string) (bool, error) {
	n, err := p.client.Exists(ctx, p.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("presence check: %w", err)
	}
	return n > 0, nil
}

func (p *Presence) key(userID string) string {
	return "presence:" + userID
}
