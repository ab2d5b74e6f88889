package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GigFilter narrows a gig listing. Zero values mean "no filter"; Sort is one
// of "sales", "createdAt", "price" (defaults to "sales" server-side).
type GigFilter struct {
	Category string
	Search   string
	UserID   string
	MinPrice int
	MaxPrice int
	Sort     string
}

// GigInput carries the seller-editable fields of a gig.
type GigInput struct {
	Title         string   `json:"title"`
	Desc          string   `json:"desc"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	Cover         string   `json:"cover"`
	Images        []string `json:"images,omitempty"`
	Features      []string `json:"features,omitempty"`
	DeliveryDays  int      `json:"delivery_days"`
	RevisionCount int      `json:"revision_count"`
}

// Gigs lists public gigs matching the filter.
func (c *Client) Gigs(ctx context.Context, filter GigFilter) ([]Gig, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.UserID != "" {
		q.Set("userId", filter.UserID)
	}
	if filter.MinPrice > 0 {
		q.Set("min", strconv.Itoa(filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		q.Set("max", strconv.Itoa(filter.MaxPrice))
	}
	if filter.Sort != "" {
		q.Set("sort", filter.Sort)
	}

	path := "/api/gigs"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var gigs []Gig
	if err := c.do(ctx, http.MethodGet, path, nil, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

// Gig fetches a single gig by id.
func (c *Client) Gig(ctx context.Context, id string) (*Gig, error) {
	var gig Gig
	if err := c.do(ctx, http.MethodGet, "/api/gigs/single/"+url.PathEscape(id), nil, &gig); err != nil {
		return nil, err
	}
	return &gig, nil
}

// MyGigs lists the authenticated seller's own gigs.
func (c *Client) MyGigs(ctx context.Context) ([]Gig, error) {
	var gigs []Gig
	if err := c.do(ctx, http.MethodGet, "/api/gigs/seller/mine", nil, &gigs); err != nil {
		return nil, err
	}
	return gigs, nil
}

// CreateGig creates a new listing for the authenticated seller.
func (c *Client) CreateGig(ctx context.Context, in GigInput) (*Gig, error) {
	var gig Gig
	if err := c.do(ctx, http.MethodPost, "/api/gigs", in, &gig); err != nil {
		return nil, err
	}
	return &gig, nil
}

// UpdateGig replaces the editable fields of a listing.
func (c *Client) UpdateGig(ctx context.Context, id string, in GigInput) (*Gig, error) {
	var gig Gig
	if err := c.do(ctx, http.MethodPut, "/api/gigs/"+url.PathEscape(id), in, &gig); err != nil {
		return nil, err
	}
	return &gig, nil
}

// DeleteGig removes a listing.
func (c *Client) DeleteGig(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/gigs/"+url.PathEscape(id), nil, nil)
}
