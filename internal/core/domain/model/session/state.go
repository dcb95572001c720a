package session

import "foodorder/internal/core/domain/model/account"

// State is where the console session currently is.
//
//	Unauthenticated ──Login/AdminLogin──> Customer | Merchant | Delivery | Admin
//	Admin ──Logout──> Unauthenticated
//	any ──Exit──> Terminated
type State int

const (
	UnknownState State = iota
	Unauthenticated
	CustomerSession
	MerchantSession
	DeliverySession
	AdminSession
	Terminated
)

func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState:    "Unknown",
		Unauthenticated: "Unauthenticated",
		CustomerSession: "Customer",
		MerchantSession: "Merchant",
		DeliverySession: "Delivery",
		AdminSession:    "Admin",
		Terminated:      "Terminated",
	}
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAuthenticated reports whether an actor is logged in.
func (s State) IsAuthenticated() bool {
	switch s {
	case CustomerSession, MerchantSession, DeliverySession, AdminSession:
		return true
	default:
		return false
	}
}

func stateFor(role account.Role) State {
	switch role {
	case account.Customer:
		return CustomerSession
	case account.Merchant:
		return MerchantSession
	case account.Delivery:
		return DeliverySession
	case account.Admin:
		return AdminSession
	default:
		return UnknownState
	}
}
