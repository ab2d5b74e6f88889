package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index the service relies on.
// Called once at startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexed{
		"users":         NewUserRepository(db),
		"gigs":          NewGigRepository(db),
		"orders":        NewOrderRepository(db),
		"conversations": NewConversationRepository(db),
		"messages":      NewMessageRepository(db),
		"reviews":       NewReviewRepository(db),
	}

	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
