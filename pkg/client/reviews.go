package client

import (
	"context"
	"net/http"
	"net/url"
)

// Reviews lists a gig's reviews.
func (c *Client) Reviews(ctx context.Context, gigID string) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/"+url.PathEscape(gigID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview rates a gig 1..5 stars. One review per user per gig; sellers
// cannot review their own listings.
func (c *Client) CreateReview(ctx context.Context, gigID string, star int, desc string) (*Review, error) {
	body := map[string]any{"gigId": gigID, "star": star, "desc": desc}

	var review Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
