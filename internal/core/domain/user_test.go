package domain

import "testing"

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleBuyer, RoleSeller, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "superuser", "Seller"} {
		if r.Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestUser_RolePredicates(t *testing.T) {
	seller := &User{Role: RoleSeller}
	if !seller.IsSeller() || seller.IsAdmin() {
		t.Fatalf("seller predicates wrong")
	}

	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() || admin.IsSeller() {
		t.Fatalf("admin predicates wrong: admin and seller are mutually exclusive")
	}

	buyer := &User{Role: RoleBuyer}
	if buyer.IsSeller() || buyer.IsAdmin() {
		t.Fatalf("buyer predicates wrong")
	}
}
