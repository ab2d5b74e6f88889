package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const conversationsCollection = "conversations"

// ConversationRepository stores chat threads. The _id is the deterministic
// sellerID+buyerID string, not an ObjectID.
type ConversationRepository struct {
	coll *mongo.Collection
}

func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{coll: db.Collection(conversationsCollection)}
}

func (r *ConversationRepository) Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with the other participant; return the stored thread.
			return r.FindByID(ctx, c.ID)
		}
		return nil, fmt.Errorf("insert conversation: %w", err)
	}
	return c, nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return &c, nil
}

func (r *ConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	query := bson.M{"$or": bson.A{
		bson.M{"seller_id": userID},
		bson.M{"buyer_id": userID},
	}}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer cur.Close(ctx)

	var convs []*domain.Conversation
	for cur.Next(ctx) {
		var c domain.Conversation
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode conversation: %w", err)
		}
		convs = append(convs, &c)
	}
	return convs, cur.Err()
}

func (r *ConversationRepository) SetRead(ctx context.Context, id string, seller bool, read bool) error {
	field := "read_by_buyer"
	if seller {
		field = "read_by_seller"
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: read}})
	if err != nil {
		return fmt.Errorf("set read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

// EnsureIndexes creates the participant listing indexes.
func (r *ConversationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "seller_id", Value: 1}, {Key: "updated_at", Value: -1}}},
		{Keys: bson.D{{Key: "buyer_id", Value: 1}, {Key: "updated_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create conversation indexes: %w", err)
	}
	return nil
}

// Touch records a new last message and marks the recipient side unread.
func (r *ConversationRepository) Touch(ctx context.Context, id, lastMessage string, senderIsSeller bool) error {
	set := bson.M{
		"last_message":   lastMessage,
		"updated_at":     time.Now().UTC(),
		"read_by_seller": senderIsSeller,
		"read_by_buyer":  !senderIsSeller,
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}
