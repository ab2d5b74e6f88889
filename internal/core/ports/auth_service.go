package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// RegisterInput carries everything a new account needs. IsSeller maps to the
// seller role; admin accounts are never self-registered.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Country    string
	Phone      string
	Desc       string
	ProfilePic string
	IsSeller   bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
