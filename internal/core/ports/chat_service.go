package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type ChatService interface {
	// OpenConversation creates (or returns) the thread between the caller and
	// the target user. Exactly one side must be a seller.
	OpenConversation(ctx context.Context, callerID string, callerRole domain.Role, to string) (*domain.Conversation, error)
	// GetConversation returns the thread only to its participants.
	GetConversation(ctx context.Context, id, callerID string) (*domain.Conversation, error)
	ListConversations(ctx context.Context, callerID string) ([]*domain.Conversation, error)
	// MarkRead flips the caller's read flag on the thread.
	MarkRead(ctx context.Context, id, callerID string) error
	// SendMessage persists a message, updates the thread's last message, and
	// marks the other side unread.
	SendMessage(ctx context.Context, conversationID, senderID, desc string) (*domain.Message, error)
	ListMessages(ctx context.Context, conversationID, callerID string) ([]*domain.Message, error)
}

// ConversationRepository defines persistence for chat threads.
type ConversationRepository interface {
	Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	FindByID(ctx context.Context, id string) (*domain.Conversation, error)
	ListByParticipant(ctx context.Context, userID string) ([]*domain.Conversation, error)
	// SetRead updates one side's read flag.
	SetRead(ctx context.Context, id string, seller bool, read bool) error
	// Touch records a new last message: updates last_message/updated_at and
	// marks the recipient side unread.
	Touch(ctx context.Context, id, lastMessage string, senderIsSeller bool) error
}

// MessageRepository defines persistence for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListByConversation(ctx context.Context, conversationID string) ([]*domain.Message, error)
}
