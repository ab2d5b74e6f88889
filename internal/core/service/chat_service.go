package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

type chatService struct {
	conversations ports.ConversationRepository
	messages      ports.MessageRepository
	log           zerolog.Logger
}

// NewChatService returns a ChatService implementation.
func NewChatService(
	conversations ports.ConversationRepository,
	messages ports.MessageRepository,
	log zerolog.Logger,
) ports.ChatService {
	return &chatService{conversations: conversations, messages: messages, log: log}
}

// OpenConversation creates the thread between the caller and the target, or
// returns the existing one. The side holding the seller role determines the
// id ordering (sellerID+buyerID), matching what clients compute locally.
func (s *chatService) OpenConversation(ctx context.Context, callerID string, callerRole domain.Role, to string) (*domain.Conversation, error) {
	if to == "" || to == callerID {
		return nil, domain.ErrConversationNotFound
	}

	sellerID, buyerID := to, callerID
	readBySeller, readByBuyer := false, true
	if callerRole == domain.RoleSeller {
		sellerID, buyerID = callerID, to
		readBySeller, readByBuyer = true, false
	}

	id := domain.ConversationID(sellerID, buyerID)
	if existing, err := s.conversations.FindByID(ctx, id); err == nil {
		return existing, nil
	}

	now := time.Now().UTC()
	conv := &domain.Conversation{
		ID:           id,
		SellerID:     sellerID,
		BuyerID:      buyerID,
		ReadBySeller: readBySeller,
		ReadByBuyer:  readByBuyer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.conversations.Create(ctx, conv)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("conversation_id", id).Msg("conversation opened")
	return created, nil
}

func (s *chatService) GetConversation(ctx context.Context, id, callerID string) (*domain.Conversation, error) {
	conv, err := s.conversations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(callerID) {
		return nil, domain.ErrForbidden
	}
	return conv, nil
}

func (s *chatService) ListConversations(ctx context.Context, callerID string) ([]*domain.Conversation, error) {
	return s.conversations.ListByParticipant(ctx, callerID)
}

func (s *chatService) MarkRead(ctx context.Context, id, callerID string) error {
	conv, err := s.conversations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(callerID) {
		return domain.ErrForbidden
	}
	return s.conversations.SetRead(ctx, id, callerID == conv.SellerID, true)
}

func (s *chatService) SendMessage(ctx context.Context, conversationID, senderID, desc string) (*domain.Message, error) {
	conv, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, domain.ErrForbidden
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		UserID:         senderID,
		Desc:           desc,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	// Denormalised thread state; failure is non-fatal for the message itself.
	if err := s.conversations.Touch(ctx, conversationID, desc, senderID == conv.SellerID); err != nil {
		s.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to touch conversation")
	}

	return created, nil
}

func (s *chatService) ListMessages(ctx context.Context, conversationID, callerID string) ([]*domain.Message, error) {
	conv, err := s.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(callerID) {
		return nil, domain.ErrForbidden
	}
	return s.messages.ListByConversation(ctx, conversationID)
}
