package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for accounts. It backs both the auth
// flow and profile/admin operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}
