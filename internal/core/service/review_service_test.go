package service

import (
	"context"
	"errors"
	"testing"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

func newTestReviewService(t *testing.T) (ports.ReviewService, *stubGigRepo, *domain.Gig) {
	t.Helper()
	reviews := newStubReviewRepo()
	gigs := newStubGigRepo()
	gig, err := gigs.Create(context.Background(), &domain.Gig{UserID: "seller_1", Title: "logo", Price: 50})
	if err != nil {
		t.Fatalf("seed gig: %v", err)
	}
	return NewReviewService(reviews, gigs, testLogger), gigs, gig
}

func TestReviewService_Create_UpdatesRatingCounters(t *testing.T) {
	svc, gigs, gig := newTestReviewService(t)

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		GigID:  gig.ID,
		UserID: "buyer_1",
		Star:   4,
		Desc:   "good work",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if review.ID == "" || review.Star != 4 {
		t.Fatalf("unexpected review: %+v", review)
	}

	updated, _ := gigs.FindByID(context.Background(), gig.ID)
	if updated.TotalStars != 4 || updated.StarNumber != 1 {
		t.Fatalf("expected counters 4/1, got %d/%d", updated.TotalStars, updated.StarNumber)
	}
}

func TestReviewService_Create_StarBounds(t *testing.T) {
	svc, _, gig := newTestReviewService(t)

	for _, star := range []int{0, -1, 6} {
		if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "buyer_1", Star: star}); !errors.Is(err, domain.ErrInvalidStar) {
			t.Fatalf("star %d: expected ErrInvalidStar, got %v", star, err)
		}
	}
}

func TestReviewService_Create_OwnGig(t *testing.T) {
	svc, _, gig := newTestReviewService(t)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "seller_1", Star: 5}); !errors.Is(err, domain.ErrOwnGigReview) {
		t.Fatalf("expected ErrOwnGigReview, got %v", err)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	svc, gigs, gig := newTestReviewService(t)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "buyer_1", Star: 5}); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "buyer_1", Star: 3}); !errors.Is(err, domain.ErrReviewExists) {
		t.Fatalf("expected ErrReviewExists, got %v", err)
	}

	// The duplicate must not touch the counters.
	updated, _ := gigs.FindByID(context.Background(), gig.ID)
	if updated.TotalStars != 5 || updated.StarNumber != 1 {
		t.Fatalf("expected counters 5/1, got %d/%d", updated.TotalStars, updated.StarNumber)
	}
}

func TestReviewService_Create_UnknownGig(t *testing.T) {
	svc, _, _ := newTestReviewService(t)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: "missing", UserID: "buyer_1", Star: 5}); !errors.Is(err, domain.ErrGigNotFound) {
		t.Fatalf("expected ErrGigNotFound, got %v", err)
	}
}

func TestReviewService_ListByGig(t *testing.T) {
	svc, _, gig := newTestReviewService(t)

	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "buyer_1", Star: 5, Desc: "great"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateReviewInput{GigID: gig.ID, UserID: "buyer_2", Star: 3, Desc: "fine"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	reviews, err := svc.ListByGig(context.Background(), gig.ID)
	if err != nil {
		t.Fatalf("ListByGig returned error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
}
