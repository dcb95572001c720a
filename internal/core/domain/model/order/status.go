package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Open ──> Queued ──> Assigned ──> Delivered
//
// Open is the customer's cart. Lines are frozen once the order is Queued.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the cart being filled by a customer.
	Open

	// Queued orders are checked out and wait in the order queue.
	Queued

	// Assigned orders are bound to exactly one delivery person.
	Assigned

	// Delivered is final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Queued:    "Queued",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Queued:    "Queued",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// ParseStatus is the inverse of String for valid statuses, used when
// restoring orders from storage.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Open, Queued, Assigned or Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsEditable reports whether lines may still be added.
func (s Status) IsEditable() bool {
	return s == Open
}

// ValidateCanHaveCourier validates the consistency between status and courier assignment:
// Assigned and Delivered orders must name a courier, Open and Queued orders must not.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Checkout transitions Open -> Queued.
func (s Status) Checkout() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to check out", s.String()),
		)
	}
	return Queued, nil
}

// Assign transitions Queued -> Assigned. Reassignment is not allowed.
func (s Status) Assign() (Status, error) {
	if s != Queued {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return Assigned, nil
}

// Deliver transitions Assigned -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}
