package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	GigID     string             `bson:"gig_id"`
	UserID    string             `bson:"user_id"`
	Star      int                `bson:"star"`
	Desc      string             `bson:"desc"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mr mongoReview) toDomain() *domain.Review {
	return &domain.Review{
		ID:        mr.ID.Hex(),
		GigID:     mr.GigID,
		UserID:    mr.UserID,
		Star:      mr.Star,
		Desc:      mr.Desc,
		CreatedAt: mr.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	doc := mongoReview{
		GigID:     rv.GigID,
		UserID:    rv.UserID,
		Star:      rv.Star,
		Desc:      rv.Desc,
		CreatedAt: rv.CreatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrReviewExists
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *rv
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReviewRepository) FindByGigAndUser(ctx context.Context, gigID, userID string) (*domain.Review, error) {
	var mr mongoReview
	err := r.coll.FindOne(ctx, bson.M{"gig_id": gigID, "user_id": userID}).Decode(&mr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return mr.toDomain(), nil
}

// ListByGig returns reviews newest first.
func (r *ReviewRepository) ListByGig(ctx context.Context, gigID string) ([]*domain.Review, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"gig_id": gigID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var reviews []*domain.Review
	for cur.Next(ctx) {
		var mr mongoReview
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, mr.toDomain())
	}
	return reviews, cur.Err()
}

// EnsureIndexes creates the one-review-per-user-per-gig constraint.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "gig_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
