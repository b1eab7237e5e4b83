package entities

import "testing"

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleCustomer, RoleFulfillment, RoleAccounting, RoleDelivery} {
		if !r.IsValid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Role("manager").IsValid() {
		t.Fatalf("unknown role must be invalid")
	}
	if Role("").IsValid() {
		t.Fatalf("empty role must be invalid")
	}
}

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleAdmin, CapDeleteOrders, true},
		{RoleAdmin, CapManageQuotes, true},
		{RoleCustomer, CapViewOrders, false},
		{RoleFulfillment, CapUpdateOrders, true},
		{RoleFulfillment, CapViewFinancials, false},
		{RoleDelivery, CapUpdateOrders, true},
		{RoleDelivery, CapManageQuotes, false},
		{RoleAccounting, CapViewFinancials, true},
		{RoleAccounting, CapUpdateOrders, false},
	}
	for _, tc := range cases {
		if got := tc.role.HasCapability(tc.cap); got != tc.want {
			t.Fatalf("%s has %s: got %v, want %v", tc.role, tc.cap, got, tc.want)
		}
	}
}
