package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIsEmpty is returned when checking out a cart with no lines.
	ErrOrderIsEmpty = errs.NewValueIsRequiredError("order must contain at least one item")

	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
)

// Order is the aggregate root for a customer's purchase. It starts as an Open
// cart, is frozen by Checkout, bound to a delivery person by Assign and
// closed by Deliver.
//
// Invariants:
//   - lines are kept in first-added order and each item appears once
//   - every quantity is positive
//   - Assigned and Delivered orders name exactly one courier, others none
type Order struct {
	id       kernel.UUID
	customer string
	lines    []Line
	status   Status
	courier  *string
	placedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an empty Open order for customer.
//
// Example:
//
//	o, _ := order.NewOrder(kernel.NewUUID(), "alice")
//	_ = o.AddItem(burger, 2)
//	_ = o.Checkout(time.Now())
func NewOrder(id kernel.UUID, customer string) (*Order, error) {
	o := &Order{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Lines are merged the
// same way AddItem merges them.
func RestoreOrder(
	id kernel.UUID,
	customer string,
	lines []Line,
	status Status,
	courier *string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		placedAt: placedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setStatus(status, courier),
	); err != nil {
		return nil, err
	}

	for _, l := range lines {
		if err := o.addLine(l.item, l.quantity); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// NewLine builds a line for RestoreOrder.
func NewLine(item menu.FoodItem, quantity int) (Line, error) {
	if err := item.Validate(); err != nil {
		return Line{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return Line{}, err
	}
	return Line{item: item, quantity: quantity}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned delivery person's username, or nil.
func (o *Order) Courier() *string {
	if o.courier == nil {
		return nil
	}
	c := *o.courier
	return &c
}

// PlacedAt is the checkout time. Zero while the order is Open.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Lines returns a copy of the lines in first-added order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// IsEmpty reports whether no item has been added.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Total is the exact sum of price times quantity over all lines.
func (o *Order) Total() kernel.Money {
	total := kernel.Zero()
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// AddItem adds quantity of item to an Open order. Adding an item that is
// already present increases its quantity instead of adding a line.
func (o *Order) AddItem(item menu.FoodItem, quantity int) error {
	if !o.status.IsEditable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot add items to a %s order", o.status),
		)
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	return o.addLine(item, quantity)
}

// Checkout freezes the lines and moves the order to Queued.
func (o *Order) Checkout(now time.Time) error {
	if o.IsEmpty() {
		return ErrOrderIsEmpty
	}

	newStatus, err := o.status.Checkout()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.placedAt = now
	return nil
}

// Assign binds the order to the delivery person with the given username.
func (o *Order) Assign(courier string) error {
	courier = strings.TrimSpace(courier)
	if courier == "" {
		return errs.NewValueIsRequiredError("courier")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courier = &courier
	return nil
}

// Clone returns an independent copy of the order. Changes to the copy are
// not visible through o.
func (o *Order) Clone() *Order {
	cp := *o
	cp.lines = o.Lines()
	cp.courier = o.Courier()
	return &cp
}

// Deliver closes an Assigned order.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) addLine(item menu.FoodItem, quantity int) error {
	for i := range o.lines {
		if o.lines[i].item.IsSame(item) {
			o.lines[i].quantity += quantity
			return nil
		}
	}
	o.lines = append(o.lines, Line{item: item, quantity: quantity})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setStatus(status Status, courier *string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courier != nil); err != nil {
		return err
	}
	o.status = status
	if courier != nil {
		c := *courier
		o.courier = &c
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
