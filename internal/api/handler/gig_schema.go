package handler

import (
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type gigRequest struct {
	Title         string   `json:"title"          validate:"required,min=3,max=120"`
	Desc          string   `json:"desc"           validate:"required"`
	Category      string   `json:"category"       validate:"required"`
	Price         int      `json:"price"          validate:"required,gt=0"`
	Cover         string   `json:"cover"          validate:"required"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	DeliveryDays  int      `json:"delivery_days"  validate:"required,gt=0"`
	RevisionCount int      `json:"revision_count" validate:"min=0"`
}

// gigResponse adds the computed rating to the stored gig shape.
type gigResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Title         string   `json:"title"`
	Desc          string   `json:"desc"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	Cover         string   `json:"cover"`
	Images        []string `json:"images"`
	Features      []string `json:"features"`
	DeliveryDays  int      `json:"delivery_days"`
	RevisionCount int      `json:"revision_count"`
	TotalStars    int      `json:"total_stars"`
	StarNumber    int      `json:"star_number"`
	Rating        float64  `json:"rating"`
	Sales         int      `json:"sales"`
	CreatedAt     string   `json:"created_at"`
}

func toGigInput(req gigRequest) ports.GigInput {
	return ports.GigInput{
		Title:         req.Title,
		Desc:          req.Desc,
		Category:      req.Category,
		Price:         req.Price,
		Cover:         req.Cover,
		Images:        req.Images,
		Features:      req.Features,
		DeliveryDays:  req.DeliveryDays,
		RevisionCount: req.RevisionCount,
	}
}

func toGigResponse(g *domain.Gig) gigResponse {
	return gigResponse{
		ID:            g.ID,
		UserID:        g.UserID,
		Title:         g.Title,
		Desc:          g.Desc,
		Category:      g.Category,
		Price:         g.Price,
		Cover:         g.Cover,
		Images:        g.Images,
		Features:      g.Features,
		DeliveryDays:  g.DeliveryDays,
		RevisionCount: g.RevisionCount,
		TotalStars:    g.TotalStars,
		StarNumber:    g.StarNumber,
		Rating:        g.Rating(),
		Sales:         g.Sales,
		CreatedAt:     g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toGigListResponse(gigs []*domain.Gig) []gigResponse {
	out := make([]gigResponse, len(gigs))
	for i, g := range gigs {
		out[i] = toGigResponse(g)
	}
	return out
}
