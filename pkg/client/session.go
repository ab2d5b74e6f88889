package client

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of account roles, mirrored from the server.
// A user holds exactly one role; seller and admin are mutually exclusive.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// UserRef is the client-held identity of the authenticated account.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session pairs the authenticated identity with its credential token.
// Invariant: Token is non-empty iff Identity is non-nil. An empty Session
// (both zero) means "not logged in".
type Session struct {
	Identity *UserRef `json:"identity,omitempty"`
	Token    string   `json:"token,omitempty"`
}

// Empty reports whether the session holds no identity.
func (s Session) Empty() bool {
	return s.Identity == nil
}

// Session returns a snapshot of the current session. The snapshot does not
// track later mutations.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session.clone()
}

// SetSession replaces the current session wholesale and persists the new
// state. No merge semantics: the previous session is discarded. It trusts
// the caller with the identity/token pairing except for the structural
// invariant, which it enforces by rejecting half-set sessions.
func (c *Client) SetSession(identity UserRef, token string) error {
	if token == "" {
		return fmt.Errorf("set session: empty token")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := identity
	c.session = Session{Identity: &id, Token: token}
	return c.persistLocked()
}

// ClearSession removes identity and credential and persists the cleared state.
func (c *Client) ClearSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = Session{}
	return c.persistLocked()
}

// persistLocked writes the current session to storage. Caller holds c.mu.
// A cleared session removes the stored key entirely.
func (c *Client) persistLocked() error {
	if c.session.Empty() {
		return c.storage.Clear()
	}

	data, err := json.Marshal(c.session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return c.storage.Save(data)
}

// rehydrate loads the persisted session at construction time. A missing or
// corrupt stored session yields an empty one; a stored session violating the
// token/identity invariant is discarded rather than half-applied.
func (c *Client) rehydrate() {
	data, err := c.storage.Load()
	if err != nil {
		return
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	if s.Identity == nil || s.Token == "" {
		return
	}

	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (s Session) clone() Session {
	out := Session{Token: s.Token}
	if s.Identity != nil {
		id := *s.Identity
		out.Identity = &id
	}
	return out
}
