package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGateway_BearerIffToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	// No session: no credential header at all.
	if _, err := c.Gigs(context.Background(), GigFilter{}); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}

	// With a session: the exact token as a bearer credential.
	if err := c.SetSession(UserRef{ID: "u1", Username: "alice", Role: RoleBuyer}, "tok_xyz"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if _, err := c.Gigs(context.Background(), GigFilter{}); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer tok_xyz" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	// Cleared again: header disappears.
	if err := c.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, err := c.Gigs(context.Background(), GigFilter{}); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected header gone after clear, got %q", gotAuth)
	}
}

func TestGateway_APIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"user already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterInput{Username: "bob", Email: "b@example.com", Password: "secret1"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "user already exists" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestLogin_SetsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok_login",
			"user":  map[string]any{"id": "u1", "username": "alice", "role": "seller", "isSeller": true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	s := c.Session()
	if s.Empty() || s.Token != "tok_login" {
		t.Fatalf("expected session set by login, got %+v", s)
	}
	if s.Identity.Role != RoleSeller {
		t.Fatalf("expected seller role in session, got %s", s.Identity.Role)
	}
	if !c.HasSellerRole() {
		t.Fatalf("expected seller guard to pass after login")
	}
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.SetSession(UserRef{ID: "u0", Username: "old", Role: RoleBuyer}, "tok_old"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if _, err := c.Login(context.Background(), "alice", "wrong"); err == nil {
		t.Fatalf("expected login failure")
	}

	s := c.Session()
	if s.Token != "tok_old" || s.Identity.Username != "old" {
		t.Fatalf("failed login must leave the session untouched, got %+v", s)
	}
}

func TestLogout_ClearsSessionEvenIfServerFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.SetSession(UserRef{ID: "u1", Username: "alice", Role: RoleBuyer}, "tok"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !c.Session().Empty() {
		t.Fatalf("expected session cleared regardless of server response")
	}
}

func TestConfirmOrder_DistinctConfirmationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"payment confirmation failed, contact support"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ConfirmOrder(context.Background(), "pi_123")
	if !errors.Is(err, ErrPaymentConfirmation) {
		t.Fatalf("expected ErrPaymentConfirmation, got %v", err)
	}

	// The underlying API error remains inspectable.
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadGateway {
		t.Fatalf("expected wrapped APIError 502, got %v", err)
	}
}

func TestConfirmOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["payment_intent"] != "pi_123" {
			t.Fatalf("unexpected body: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "order_1", "status": "in_progress"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	order, err := c.ConfirmOrder(context.Background(), "pi_123")
	if err != nil {
		t.Fatalf("ConfirmOrder: %v", err)
	}
	if order.Status != "in_progress" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestGigs_RatingPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"g1","total_stars":18,"star_number":4,"rating":4.5},
			{"id":"g2","total_stars":0,"star_number":0,"rating":0}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	gigs, err := c.Gigs(context.Background(), GigFilter{})
	if err != nil {
		t.Fatalf("Gigs: %v", err)
	}
	if len(gigs) != 2 {
		t.Fatalf("expected 2 gigs, got %d", len(gigs))
	}
	if gigs[0].Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", gigs[0].Rating)
	}
	if gigs[1].Rating != 0 {
		t.Fatalf("expected rating 0 for unreviewed gig, got %v", gigs[1].Rating)
	}
}

func TestGigs_FilterQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Gigs(context.Background(), GigFilter{Category: "Business", MinPrice: 10, MaxPrice: 100, Sort: "price"}); err != nil {
		t.Fatalf("Gigs: %v", err)
	}
	if gotQuery != "category=Business&max=100&min=10&sort=price" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}
