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
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

const gigsCollection = "gigs"

type GigRepository struct {
	coll *mongo.Collection
}

func NewGigRepository(db *mongo.Database) *GigRepository {
	return &GigRepository{coll: db.Collection(gigsCollection)}
}

type mongoGig struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Title         string             `bson:"title"`
	Desc          string             `bson:"desc"`
	Category      string             `bson:"category"`
	Price         int                `bson:"price"`
	Cover         string             `bson:"cover"`
	Images        []string           `bson:"images"`
	Features      []string           `bson:"features"`
	DeliveryDays  int                `bson:"delivery_days"`
	RevisionCount int                `bson:"revision_count"`
	TotalStars    int                `bson:"total_stars"`
	StarNumber    int                `bson:"star_number"`
	Sales         int                `bson:"sales"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toMongoGig(g *domain.Gig) mongoGig {
	return mongoGig{
		UserID:        g.UserID,
		Title:         g.Title,
		Desc:          g.Desc,
		Category:      g.Category,
		Price:         g.Price,
		Cover:         g.Cover,
		Images:        g.Images,
		Features:      g.Features,
		DeliveryDays:  g.DeliveryDays,
		RevisionCount: g.RevisionCount,
		TotalStars:    g.TotalStars,
		StarNumber:    g.StarNumber,
		Sales:         g.Sales,
		CreatedAt:     g.CreatedAt.UTC(),
		UpdatedAt:     g.UpdatedAt.UTC(),
	}
}

func (mg mongoGig) toDomain() *domain.Gig {
	return &domain.Gig{
		ID:            mg.ID.Hex(),
		UserID:        mg.UserID,
		Title:         mg.Title,
		Desc:          mg.Desc,
		Category:      mg.Category,
		Price:         mg.Price,
		Cover:         mg.Cover,
		Images:        mg.Images,
		Features:      mg.Features,
		DeliveryDays:  mg.DeliveryDays,
		RevisionCount: mg.RevisionCount,
		TotalStars:    mg.TotalStars,
		StarNumber:    mg.StarNumber,
		Sales:         mg.Sales,
		CreatedAt:     mg.CreatedAt,
		UpdatedAt:     mg.UpdatedAt,
	}
}

func (r *GigRepository) Create(ctx context.Context, g *domain.Gig) (*domain.Gig, error) {
	res, err := r.coll.InsertOne(ctx, toMongoGig(g))
	if err != nil {
		return nil, fmt.Errorf("insert gig: %w", err)
	}

	created := *g
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *GigRepository) FindByID(ctx context.Context, id string) (*domain.Gig, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGigNotFound
	}

	var mg mongoGig
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGigNotFound
		}
		return nil, fmt.Errorf("find gig: %w", err)
	}
	return mg.toDomain(), nil
}

// List returns gigs matching filter in the requested sort order.
func (r *GigRepository) List(ctx context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}

	var sort bson.D
	switch filter.Sort {
	case "price":
		sort = bson.D{{Key: "price", Value: 1}}
	case "createdAt":
		sort = bson.D{{Key: "created_at", Value: -1}}
	default: // "sales"
		sort = bson.D{{Key: "sales", Value: -1}}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}
	defer cur.Close(ctx)

	var gigs []*domain.Gig
	for cur.Next(ctx) {
		var mg mongoGig
		if err := cur.Decode(&mg); err != nil {
			return nil, fmt.Errorf("decode gig: %w", err)
		}
		gigs = append(gigs, mg.toDomain())
	}
	return gigs, cur.Err()
}

func (r *GigRepository) Update(ctx context.Context, g *domain.Gig) error {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return domain.ErrGigNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoGig(g))
	if err != nil {
		return fmt.Errorf("update gig: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

func (r *GigRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGigNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete gig: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

// AddRating atomically bumps the denormalised rating counters.
func (r *GigRepository) AddRating(ctx context.Context, id string, star int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGigNotFound
	}

	update := bson.M{"$inc": bson.M{"total_stars": star, "star_number": 1}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("add rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

// IncrementSales atomically bumps the sales counter.
func (r *GigRepository) IncrementSales(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGigNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"sales": 1}})
	if err != nil {
		return fmt.Errorf("increment sales: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

// EnsureIndexes creates the listing indexes.
func (r *GigRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "sales", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
