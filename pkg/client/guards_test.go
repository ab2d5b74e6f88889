package client

import "testing"

func TestGuards_TruthTable(t *testing.T) {
	cases := []struct {
		name          string
		role          Role
		loggedIn      bool
		authenticated bool
		seller        bool
		admin         bool
	}{
		{"anonymous", "", false, false, false, false},
		{"buyer", RoleBuyer, true, true, false, false},
		{"seller", RoleSeller, true, true, true, false},
		{"admin", RoleAdmin, true, true, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New("http://localhost:8080")
			if tc.loggedIn {
				if err := c.SetSession(UserRef{ID: "u1", Username: tc.name, Role: tc.role}, "tok"); err != nil {
					t.Fatalf("SetSession: %v", err)
				}
			}

			if got := c.Authenticated(); got != tc.authenticated {
				t.Errorf("Authenticated() = %v, want %v", got, tc.authenticated)
			}
			if got := c.HasSellerRole(); got != tc.seller {
				t.Errorf("HasSellerRole() = %v, want %v", got, tc.seller)
			}
			if got := c.HasAdminRole(); got != tc.admin {
				t.Errorf("HasAdminRole() = %v, want %v", got, tc.admin)
			}
		})
	}
}

func TestGuards_ReEvaluateOnSessionChange(t *testing.T) {
	c := New("http://localhost:8080")

	if err := c.SetSession(UserRef{ID: "u1", Username: "alice", Role: RoleSeller}, "tok"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if !c.HasSellerRole() {
		t.Fatalf("expected seller guard to pass")
	}

	// Guards read the current snapshot; no caching of the previous answer.
	if err := c.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if c.Authenticated() || c.HasSellerRole() {
		t.Fatalf("guards must fail after session cleared")
	}
}
