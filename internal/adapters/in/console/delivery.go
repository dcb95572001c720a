package console

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
)

func (c *Controller) toggleStatus(ctx context.Context) error {
	online, err := c.prompt.Confirm("Do you want to set yourself online? (1 for Yes, 0 for No): ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetCourierStatusCommand(c.session.Username(), online)
	if err != nil {
		return err
	}
	updated, err := c.handlers.SetCourierStatus.Handle(ctx, cmd)
	if errors.Is(err, courier.ErrCourierIsBusy) {
		c.prompt.Println("You cannot go offline while delivering an order.")
		return nil
	}
	if err != nil {
		return err
	}

	if updated.IsOnline() {
		c.prompt.Println("You are now online.")
	} else {
		c.prompt.Println("You are now offline.")
	}
	return nil
}

// completeDelivery offers to close the delivery the courier holds, if any.
func (c *Controller) completeDelivery(ctx context.Context) error {
	me, err := c.self(ctx)
	if err != nil || me.ActiveOrder == nil {
		return err
	}

	done, err := c.prompt.Confirm("You are delivering order " + short(*me.ActiveOrder) +
		". Mark it as delivered? (1 for Yes, 0 for No): ")
	if err != nil || !done {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(c.session.Username())
	if err != nil {
		return err
	}
	id, err := c.handlers.CompleteDelivery.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.prompt.Printf("Order %s marked as delivered.\n", id.Short())
	return nil
}

func (c *Controller) acceptOrder(ctx context.Context) error {
	me, err := c.self(ctx)
	if err != nil {
		return err
	}
	if !me.Online {
		return courier.ErrCourierIsOffline
	}

	pending, err := c.printPending(ctx, "Orders waiting for acceptance:")
	if err != nil || len(pending) == 0 {
		return err
	}

	position, err := c.prompt.Choice("Enter the order number you want to accept (0 to exit): ", len(pending))
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(pending[position-1].ID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptOrderCommand(id, c.session.Username())
	if err != nil {
		return err
	}
	assignment, err := c.handlers.AcceptOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.prompt.Printf("You accepted order %s with total amount: $%s\n",
		assignment.Order.ID().Short(), assignment.Order.Total())
	return nil
}

func (c *Controller) self(ctx context.Context) (queries.CourierResponse, error) {
	couriers, err := c.handlers.GetCouriers.Handle(ctx, queries.NewGetCouriersQuery())
	if err != nil {
		return queries.CourierResponse{}, err
	}
	for _, dp := range couriers {
		if dp.Username == c.session.Username() {
			return dp, nil
		}
	}
	return queries.CourierResponse{Username: c.session.Username()}, nil
}
