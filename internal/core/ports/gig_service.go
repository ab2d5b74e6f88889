package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// GigInput carries the seller-editable fields of a gig.
type GigInput struct {
	Title         string
	Desc          string
	Category      string
	Price         int
	Cover         string
	Images        []string
	Features      []string
	DeliveryDays  int
	RevisionCount int
}

// ListGigsInput carries the public listing filters. Sort is one of
// "sales", "createdAt", "price"; anything else falls back to "sales".
type ListGigsInput struct {
	Category string
	Search   string
	UserID   string
	MinPrice int
	MaxPrice int
	Sort     string
}

type GigService interface {
	Create(ctx context.Context, sellerID string, in GigInput) (*domain.Gig, error)
	Get(ctx context.Context, id string) (*domain.Gig, error)
	List(ctx context.Context, in ListGigsInput) ([]*domain.Gig, error)
	// ListBySeller returns the gigs owned by sellerID, newest first.
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Gig, error)
	// Update replaces the editable fields. Only the owning seller may update.
	Update(ctx context.Context, id, callerID string, in GigInput) (*domain.Gig, error)
	// Delete removes a gig. Allowed for the owning seller and for admins.
	Delete(ctx context.Context, id, callerID string, callerRole domain.Role) error
}
