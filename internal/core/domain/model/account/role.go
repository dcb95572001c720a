package account

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// Role selects which session menu an account is allowed to enter.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Customer
	Merchant
	Delivery
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Merchant:    "merchant",
		Delivery:    "delivery",
		Admin:       "admin",
	}
}

// roleAliases maps free-text input, including the older spellings
// "user" and "delivery man", onto roles.
func roleAliases() map[string]Role {
	return map[string]Role{
		"customer":        Customer,
		"user":            Customer,
		"merchant":        Merchant,
		"delivery":        Delivery,
		"delivery man":    Delivery,
		"delivery person": Delivery,
		"admin":           Admin,
	}
}

// ParseRole converts the text typed at signup, or stored in the users table, into a Role.
// Matching ignores case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	if r, ok := roleAliases()[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not one of customer, merchant, delivery", s))
}

// Validate accepts every role except UnknownRole.
func (r Role) Validate() error {
	if r <= UnknownRole || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsSelfService reports whether the role may be chosen at signup.
// Admin accounts are only seeded from configuration.
func (r Role) IsSelfService() bool {
	return r == Customer || r == Merchant || r == Delivery
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
