package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type GigService struct {
	repo   ports.GigRepository
	logger zerolog.Logger
}

func NewGigService(repo ports.GigRepository, logger zerolog.Logger) *GigService {
	return &GigService{repo: repo, logger: logger}
}

func (s *GigService) Create(ctx context.Context, sellerID string, in ports.GigInput) (*domain.Gig, error) {
	now := time.Now().UTC()
	gig := &domain.Gig{
		UserID:        sellerID,
		Title:         in.Title,
		Desc:          in.Desc,
		Category:      in.Category,
		Price:         in.Price,
		Cover:         in.Cover,
		Images:        in.Images,
		Features:      in.Features,
		DeliveryDays:  in.DeliveryDays,
		RevisionCount: in.RevisionCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, gig)
	if err != nil {
		s.logger.Error().Err(err).Str("seller_id", sellerID).Msg("failed to create gig")
		return nil, err
	}

	metrics.GigsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("gig_id", created.ID).Str("seller_id", sellerID).Msg("gig created")
	return created, nil
}

func (s *GigService) Get(ctx context.Context, id string) (*domain.Gig, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GigService) List(ctx context.Context, in ports.ListGigsInput) ([]*domain.Gig, error) {
	sort := in.Sort
	switch sort {
	case "sales", "createdAt", "price":
	default:
		sort = "sales"
	}

	return s.repo.List(ctx, ports.GigFilter{
		Category: in.Category,
		Search:   in.Search,
		UserID:   in.UserID,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     sort,
	})
}

func (s *GigService) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Gig, error) {
	return s.repo.List(ctx, ports.GigFilter{UserID: sellerID, Sort: "createdAt"})
}

func (s *GigService) Update(ctx context.Context, id, callerID string, in ports.GigInput) (*domain.Gig, error) {
	gig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gig.UserID != callerID {
		return nil, domain.ErrForbidden
	}

	gig.Title = in.Title
	gig.Desc = in.Desc
	gig.Category = in.Category
	gig.Price = in.Price
	gig.Cover = in.Cover
	gig.Images = in.Images
	gig.Features = in.Features
	gig.DeliveryDays = in.DeliveryDays
	gig.RevisionCount = in.RevisionCount
	gig.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *GigService) Delete(ctx context.Context, id, callerID string, callerRole domain.Role) error {
	gig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if gig.UserID != callerID && callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("gig_id", id).Str("caller_id", callerID).Msg("gig deleted")
	return nil
}
