package service

import (
	"context"
	"errors"
	"testing"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

func newTestChatService() (*chatService, *stubConversationRepo, *stubMessageRepo) {
	convs := newStubConversationRepo()
	msgs := newStubMessageRepo()
	svc := NewChatService(convs, msgs, testLogger).(*chatService)
	return svc, convs, msgs
}

func TestChatService_OpenConversation_IDOrdering(t *testing.T) {
	svc, _, _ := newTestChatService()

	// Buyer opens: the target is the seller side of the id.
	conv, err := svc.OpenConversation(context.Background(), "buyer_1", domain.RoleBuyer, "seller_1")
	if err != nil {
		t.Fatalf("OpenConversation returned error: %v", err)
	}
	if conv.ID != "seller_1buyer_1" {
		t.Fatalf("expected id seller_1buyer_1, got %s", conv.ID)
	}
	if conv.SellerID != "seller_1" || conv.BuyerID != "buyer_1" {
		t.Fatalf("unexpected participants: %+v", conv)
	}
	if conv.ReadBySeller || !conv.ReadByBuyer {
		t.Fatalf("expected opener side read, other unread: %+v", conv)
	}

	// Seller opening towards the same buyer lands on the same thread.
	same, err := svc.OpenConversation(context.Background(), "seller_1", domain.RoleSeller, "buyer_1")
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	if same.ID != conv.ID {
		t.Fatalf("expected same thread, got %s vs %s", same.ID, conv.ID)
	}
}

func TestChatService_OpenConversation_SelfDenied(t *testing.T) {
	svc, _, _ := newTestChatService()

	if _, err := svc.OpenConversation(context.Background(), "u1", domain.RoleBuyer, "u1"); !errors.Is(err, domain.ErrConversationNotFound) {
		t.Fatalf("expected error opening conversation with self, got %v", err)
	}
}

func TestChatService_ParticipantChecks(t *testing.T) {
	svc, _, _ := newTestChatService()

	conv, err := svc.OpenConversation(context.Background(), "buyer_1", domain.RoleBuyer, "seller_1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := svc.GetConversation(context.Background(), conv.ID, "stranger"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden getting as stranger, got %v", err)
	}
	if err := svc.MarkRead(context.Background(), conv.ID, "stranger"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden marking read as stranger, got %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), conv.ID, "stranger", "hi"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden sending as stranger, got %v", err)
	}
	if _, err := svc.ListMessages(context.Background(), conv.ID, "stranger"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden listing as stranger, got %v", err)
	}
}

func TestChatService_SendMessage_TouchesThread(t *testing.T) {
	svc, convs, _ := newTestChatService()

	conv, err := svc.OpenConversation(context.Background(), "buyer_1", domain.RoleBuyer, "seller_1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	msg, err := svc.SendMessage(context.Background(), conv.ID, "buyer_1", "hello there")
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if msg.ID == "" || msg.UserID != "buyer_1" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	after, _ := convs.FindByID(context.Background(), conv.ID)
	if after.LastMessage != "hello there" {
		t.Fatalf("expected last message denormalised, got %q", after.LastMessage)
	}
	// Buyer sent: seller side flips unread, buyer side reads.
	if after.ReadBySeller || !after.ReadByBuyer {
		t.Fatalf("unexpected read flags after send: %+v", after)
	}
}

func TestChatService_MarkRead(t *testing.T) {
	svc, convs, _ := newTestChatService()

	conv, _ := svc.OpenConversation(context.Background(), "buyer_1", domain.RoleBuyer, "seller_1")
	if _, err := svc.SendMessage(context.Background(), conv.ID, "buyer_1", "ping"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.MarkRead(context.Background(), conv.ID, "seller_1"); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	after, _ := convs.FindByID(context.Background(), conv.ID)
	if !after.ReadBySeller {
		t.Fatalf("expected seller side read after MarkRead")
	}
}

func TestChatService_Transcript(t *testing.T) {
	svc, _, _ := newTestChatService()

	conv, _ := svc.OpenConversation(context.Background(), "buyer_1", domain.RoleBuyer, "seller_1")
	if _, err := svc.SendMessage(context.Background(), conv.ID, "buyer_1", "first"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), conv.ID, "seller_1", "second"); err != nil {
		t.Fatalf("send: %v", err)
	}

	msgs, err := svc.ListMessages(context.Background(), conv.ID, "seller_1")
	if err != nil {
		t.Fatalf("ListMessages returned error: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Desc != "first" || msgs[1].Desc != "second" {
		t.Fatalf("unexpected transcript: %+v", msgs)
	}
}
