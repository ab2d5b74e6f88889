package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// UpdateProfileInput carries the self-editable profile fields.
// Zero-value strings leave the stored field unchanged.
type UpdateProfileInput struct {
	FullName   string
	Country    string
	Phone      string
	Desc       string
	ProfilePic string
}

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile lets a user edit their own profile.
	UpdateProfile(ctx context.Context, id, callerID string, in UpdateProfileInput) (*domain.User, error)
	// List returns all accounts; admin only.
	List(ctx context.Context, callerRole domain.Role) ([]*domain.User, error)
	// Delete removes an account; allowed for admins and for the account owner.
	Delete(ctx context.Context, id, callerID string, callerRole domain.Role) error
}
