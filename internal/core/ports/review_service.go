package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// CreateReviewInput carries a new review. Star is validated 1..5 at the edge.
type CreateReviewInput struct {
	GigID  string
	UserID string
	Star   int
	Desc   string
}

type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ListByGig(ctx context.Context, gigID string) ([]*domain.Review, error)
}

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	// FindByGigAndUser reports an existing review by this user on this gig.
	FindByGigAndUser(ctx context.Context, gigID, userID string) (*domain.Review, error)
	ListByGig(ctx context.Context, gigID string) ([]*domain.Review, error)
}
