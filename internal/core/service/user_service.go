package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id, callerID string, in ports.UpdateProfileInput) (*domain.User, error) {
	if id != callerID {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Country != "" {
		user.Country = in.Country
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Desc != "" {
		user.Desc = in.Desc
	}
	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, callerRole domain.Role) ([]*domain.User, error) {
	if callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *userService) Delete(ctx context.Context, id, callerID string, callerRole domain.Role) error {
	if id != callerID && callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Str("caller_id", callerID).Msg("user deleted")
	return nil
}
