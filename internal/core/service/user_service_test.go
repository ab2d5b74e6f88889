package service

import (
	"context"
	"errors"
	"testing"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string, role domain.Role) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_UpdateProfile_SelfOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger)
	user := seedUser(t, repo, "alice", domain.RoleBuyer)

	if _, err := svc.UpdateProfile(context.Background(), user.ID, "someone_else", ports.UpdateProfileInput{Country: "DE"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, ports.UpdateProfileInput{Country: "DE", Desc: "hi"})
	if err != nil {
		t.Fatalf("self update failed: %v", err)
	}
	if updated.Country != "DE" || updated.Desc != "hi" {
		t.Fatalf("unexpected profile: %+v", updated)
	}
	// Untouched fields keep their stored values.
	if updated.Username != "alice" {
		t.Fatalf("username must not change, got %s", updated.Username)
	}
}

func TestUserService_UpdateProfile_ZeroValuesUnchanged(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger)
	user := seedUser(t, repo, "bob", domain.RoleSeller)

	if _, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, ports.UpdateProfileInput{FullName: "Bob B."}); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := svc.UpdateProfile(context.Background(), user.ID, user.ID, ports.UpdateProfileInput{Country: "FR"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Bob B." {
		t.Fatalf("empty input field must not clear stored value, got %q", updated.FullName)
	}
}

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger)
	seedUser(t, repo, "alice", domain.RoleBuyer)
	seedUser(t, repo, "bob", domain.RoleSeller)

	if _, err := svc.List(context.Background(), domain.RoleSeller); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for seller, got %v", err)
	}
	users, err := svc.List(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserService_Delete_OwnerOrAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, testLogger)
	alice := seedUser(t, repo, "alice", domain.RoleBuyer)
	bob := seedUser(t, repo, "bob", domain.RoleBuyer)

	if err := svc.Delete(context.Background(), alice.ID, bob.ID, domain.RoleBuyer); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), alice.ID, alice.ID, domain.RoleBuyer); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), bob.ID, "admin_1", domain.RoleAdmin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
