package courier

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrUsernameIsRequired is returned when a courier is created without the account username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrCourierIsOffline is returned when an offline courier is asked to take an order.
	ErrCourierIsOffline = errors.New("courier is offline")
	// ErrCourierIsBusy is returned when a courier already holds an active delivery.
	ErrCourierIsBusy = errors.New("courier already has an active delivery")
	// ErrNoActiveDelivery is returned when completing a delivery that the courier does not hold.
	ErrNoActiveDelivery = errors.New("courier has no such active delivery")
)

// Courier is the delivery-side state of a delivery account.
//
// States:
//
//	offline ──GoOnline──> online/available ──TakeOrder──> online/assigned
//	   ^                        │                              │
//	   └───────GoOffline────────┘<─────CompleteDelivery────────┘
//
// Business rules:
//   - a courier holds at most one active delivery
//   - only an online courier without a delivery can take an order
//   - a courier holding a delivery cannot go offline
type Courier struct {
	username    string
	online      bool
	activeOrder *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCourier creates an offline courier for the delivery account username.
func NewCourier(username string) (*Courier, error) {
	return RestoreCourier(username, false, nil)
}

// RestoreCourier reconstructs a courier from the persisted account flags and
// the assigned order found in storage, if any.
func RestoreCourier(username string, online bool, activeOrder *kernel.UUID) (*Courier, error) {
	c := &Courier{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setUsername(username),
		c.setActiveOrder(activeOrder),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) Username() string {
	return c.username
}

func (c *Courier) IsOnline() bool {
	return c.online
}

// IsAvailable reports whether the courier can be given a new order.
func (c *Courier) IsAvailable() bool {
	return c.online && c.activeOrder == nil
}

// ActiveOrder returns the id of the order being delivered, or nil.
func (c *Courier) ActiveOrder() *kernel.UUID {
	if c.activeOrder == nil {
		return nil
	}
	id := *c.activeOrder
	return &id
}

func (c *Courier) HasActiveOrder() bool {
	return c.activeOrder != nil
}

func (c *Courier) GoOnline() {
	c.online = true
}

// GoOffline fails with ErrCourierIsBusy while a delivery is active.
func (c *Courier) GoOffline() error {
	if c.activeOrder != nil {
		return ErrCourierIsBusy
	}
	c.online = false
	return nil
}

// CanTakeOrder checks that the courier is free and the order is waiting in the queue.
func (c *Courier) CanTakeOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !c.online {
		return ErrCourierIsOffline
	}
	if c.activeOrder != nil {
		return ErrCourierIsBusy
	}
	if o.Status() != order.Queued {
		return errs.NewValueIsInvalidError("order is not waiting for a courier")
	}
	return nil
}

// TakeOrder records o as the courier's active delivery. The order itself is
// bound with order.Assign by the caller.
func (c *Courier) TakeOrder(o *order.Order) error {
	if err := c.CanTakeOrder(o); err != nil {
		return err
	}
	id := o.ID()
	c.activeOrder = &id
	return nil
}

// CompleteDelivery releases the courier from orderID.
func (c *Courier) CompleteDelivery(orderID kernel.UUID) error {
	if c.activeOrder == nil || !c.activeOrder.IsEqual(orderID) {
		return ErrNoActiveDelivery
	}
	c.activeOrder = nil
	return nil
}

func (c *Courier) clone() *Courier {
	cp := *c
	cp.activeOrder = c.ActiveOrder()
	return &cp
}

func (c *Courier) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *Courier) setActiveOrder(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.online {
		return errs.NewValueIsInvalidError("offline courier cannot hold a delivery")
	}
	cp := *id
	c.activeOrder = &cp
	return nil
}
