package services

import (
	"errors"

	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
)

// ErrNoCapacity is returned when no courier can take the order right now.
// It is an expected outcome: the order stays queued and can be dispatched later.
var ErrNoCapacity = errors.New("no delivery person is available")

// OrderDispatcher is the domain service that binds queued orders to couriers.
//
// Business rules:
//   - Orders must be valid and queued before dispatch
//   - Candidates are scanned in registration order
//   - The first online courier without a delivery wins, with no load balancing
//   - Binding updates the order and the courier together
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	err := roster.Modify(func(candidates []*courier.Courier) error {
//	    _, err := dispatcher.Dispatch(o, candidates)
//	    return err
//	})
//	if errors.Is(err, services.ErrNoCapacity) {
//	    // tell the merchant to retry later
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch picks a courier for o from candidates and binds them.
// Returns ErrNoCapacity when candidates is empty or nobody is free.
func (d OrderDispatcher) Dispatch(o *order.Order, candidates []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	chosen, err := d.findFirstAvailable(candidates)
	if err != nil {
		return nil, err
	}

	if err = d.bind(o, chosen); err != nil {
		return nil, err
	}
	return chosen, nil
}

// Accept binds o to the courier that asked for it.
func (d OrderDispatcher) Accept(o *order.Order, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return d.bind(o, c)
}

func (d OrderDispatcher) findFirstAvailable(candidates []*courier.Courier) (*courier.Courier, error) {
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() {
			return c, nil
		}
	}
	return nil, ErrNoCapacity
}

func (d OrderDispatcher) bind(o *order.Order, c *courier.Courier) error {
	if err := c.TakeOrder(o); err != nil {
		return err
	}
	return o.Assign(c.Username())
}
