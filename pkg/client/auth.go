package client

import (
	"context"
	"net/http"
)

// RegisterInput carries the fields for creating a new account.
type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Desc       string `json:"desc,omitempty"`
	ProfilePic string `json:"img,omitempty"`
	IsSeller   bool   `json:"isSeller"`
}

type authPayload struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Register creates a new account. It does not log the account in; call Login
// afterwards.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var resp authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login authenticates and, on success, replaces the session with the new
// identity and token. On failure the session is left untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	body := map[string]string{"username": username, "password": password}

	var resp authPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	if err := c.SetSession(UserRef{
		ID:       resp.User.ID,
		Username: resp.User.Username,
		Role:     Role(resp.User.Role),
	}, resp.Token); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout clears the session. The server call is best-effort: tokens are
// stateless, so the local clear is what ends the session, and a network
// failure does not keep the user logged in.
func (c *Client) Logout(ctx context.Context) error {
	_ = c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return c.ClearSession()
}
