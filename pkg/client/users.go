package client

import (
	"context"
	"net/http"
	"net/url"
)

// ProfileUpdate carries the self-editable profile fields. Empty strings
// leave the stored field unchanged.
type ProfileUpdate struct {
	FullName   string `json:"full_name,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Desc       string `json:"desc,omitempty"`
	ProfilePic string `json:"img,omitempty"`
}

// User fetches a public profile by id.
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users lists every account; admin only.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile edits the authenticated user's own profile.
func (c *Client) UpdateProfile(ctx context.Context, id string, in ProfileUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account; allowed for the owner and for admins.
// Deleting the session's own account does not clear the session; call
// ClearSession (or Logout) afterwards.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}
