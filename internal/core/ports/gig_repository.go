package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// GigFilter carries the repository-level listing filters. Zero values mean
// "no filter"; Sort follows the values accepted by ListGigsInput.
type GigFilter struct {
	Category string
	Search   string
	UserID   string
	MinPrice int
	MaxPrice int
	Sort     string
}

// GigRepository defines persistence operations for gigs.
type GigRepository interface {
	Create(ctx context.Context, g *domain.Gig) (*domain.Gig, error)
	FindByID(ctx context.Context, id string) (*domain.Gig, error)
	List(ctx context.Context, filter GigFilter) ([]*domain.Gig, error)
	Update(ctx context.Context, g *domain.Gig) error
	Delete(ctx context.Context, id string) error
	// AddRating atomically bumps the rating counters (total_stars += star,
	// star_number += 1).
	AddRating(ctx context.Context, id string, star int) error
	// IncrementSales atomically bumps the sales counter.
	IncrementSales(ctx context.Context, id string) error
}
