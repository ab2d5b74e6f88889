package domain

import "testing"

func TestGig_Rating(t *testing.T) {
	fresh := &Gig{}
	if got := fresh.Rating(); got != 0 {
		t.Fatalf("gig with no reviews: got %v, want 0", got)
	}

	rated := &Gig{TotalStars: 18, StarNumber: 4}
	if got := rated.Rating(); got != 4.5 {
		t.Fatalf("18 stars over 4 reviews: got %v, want 4.5", got)
	}

	single := &Gig{TotalStars: 3, StarNumber: 1}
	if got := single.Rating(); got != 3 {
		t.Fatalf("single review: got %v, want 3", got)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("Graphics & Design") {
		t.Fatalf("expected known category to validate")
	}
	if ValidCategory("Underwater Basket Weaving") {
		t.Fatalf("expected unknown category to fail")
	}
}
