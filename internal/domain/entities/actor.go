package entities

// Role is the verified role of the caller performing a mutation.
//
// The engine never authenticates; an upstream identity provider supplies a
// verified (actor id, role) pair per request.

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCustomer    Role = "customer"
	RoleFulfillment Role = "fulfillment"
	RoleAccounting  Role = "accounting"
	RoleDelivery    Role = "delivery"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleFulfillment, RoleAccounting, RoleDelivery:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Capability is an action class granted to operational roles.
//
// Capabilities gate the *kind* of mutation a role may attempt; the state
// transition tables still decide whether a specific edge is admissible.

type Capability string

const (
	CapViewOrders     Capability = "view_orders"
	CapUpdateOrders   Capability = "update_orders"
	CapDeleteOrders   Capability = "delete_orders"
	CapViewUsers      Capability = "view_users"
	CapViewFinancials Capability = "view_financials"
	CapManageQuotes   Capability = "manage_quotes"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewOrders:     true,
		CapUpdateOrders:   true,
		CapDeleteOrders:   true,
		CapViewUsers:      true,
		CapViewFinancials: true,
		CapManageQuotes:   true,
	},
	RoleFulfillment: {
		CapViewOrders:   true,
		CapUpdateOrders: true,
	},
	RoleDelivery: {
		CapViewOrders:   true,
		CapUpdateOrders: true,
	},
	RoleAccounting: {
		CapViewOrders:     true,
		CapViewFinancials: true,
	},
}

// HasCapability reports whether role carries cap.
//
// Customers are not in the capability table; their permissions are a narrow
// allow-list evaluated directly against the transition being requested.
func (r Role) HasCapability(cap Capability) bool {
	return roleCapabilities[r][cap]
}

// Actor identifies the verified caller of a mutation.
type Actor struct {
	ID   string
	Role Role
}
