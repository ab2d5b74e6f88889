package client

// Route guards: pure, synchronous predicates over the current session
// snapshot. They never call the API and never cache their result — each
// evaluation reads whatever session is current. They are a navigation
// convenience, not a security boundary; the server re-checks every request.

// Authenticated reports whether a session is present.
func (c *Client) Authenticated() bool {
	return !c.Session().Empty()
}

// HasSellerRole reports whether the current session holds the seller role.
func (c *Client) HasSellerRole() bool {
	s := c.Session()
	return s.Identity != nil && s.Identity.Role == RoleSeller
}

// HasAdminRole reports whether the current session holds the admin role.
func (c *Client) HasAdminRole() bool {
	s := c.Session()
	return s.Identity != nil && s.Identity.Role == RoleAdmin
}
