package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type reviewService struct {
	reviews ports.ReviewRepository
	gigs    ports.GigRepository
	log     zerolog.Logger
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(reviews ports.ReviewRepository, gigs ports.GigRepository, log zerolog.Logger) ports.ReviewService {
	return &reviewService{reviews: reviews, gigs: gigs, log: log}
}

// Create stores the review and bumps the gig's rating counters. A seller
// cannot review their own gig, and each user reviews a gig at most once.
func (s *reviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if in.Star < 1 || in.Star > 5 {
		return nil, domain.ErrInvalidStar
	}

	gig, err := s.gigs.FindByID(ctx, in.GigID)
	if err != nil {
		return nil, err
	}
	if gig.UserID == in.UserID {
		return nil, domain.ErrOwnGigReview
	}

	if _, err := s.reviews.FindByGigAndUser(ctx, in.GigID, in.UserID); err == nil {
		return nil, domain.ErrReviewExists
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	review := &domain.Review{
		GigID:     in.GigID,
		UserID:    in.UserID,
		Star:      in.Star,
		Desc:      in.Desc,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.gigs.AddRating(ctx, in.GigID, in.Star); err != nil {
		s.log.Warn().Err(err).Str("gig_id", in.GigID).Msg("failed to update gig rating counters")
	}

	metrics.ReviewsCreatedTotal.Inc()
	return created, nil
}

func (s *reviewService) ListByGig(ctx context.Context, gigID string) ([]*domain.Review, error) {
	return s.reviews.ListByGig(ctx, gigID)
}
