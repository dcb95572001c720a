package console

import (
	"context"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
)

func (c *Controller) addItem(ctx context.Context) error {
	name, err := c.prompt.Text("Enter the name of the food item: ")
	if err != nil {
		return err
	}
	price, err := c.prompt.Money("Enter the price of the food item: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddFoodItemCommand(name, price)
	if err != nil {
		return err
	}
	item, err := c.handlers.AddFoodItem.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.prompt.Printf("Food item added to the menu: %s - $%s\n", item.Name(), item.Price())
	return nil
}

func (c *Controller) viewMenu(ctx context.Context) error {
	_, err := c.printMenu(ctx)
	return err
}

// chooseDeliveryPerson shows the roster, lets the merchant pick a queued
// order and hands it to the first available delivery person.
func (c *Controller) chooseDeliveryPerson(ctx context.Context) error {
	couriers, err := c.handlers.GetCouriers.Handle(ctx, queries.NewGetCouriersQuery())
	if err != nil {
		return err
	}

	if len(couriers) == 0 {
		c.prompt.Println("No delivery people registered.")
	} else {
		c.prompt.Println("Delivery people:")
		for i, dp := range couriers {
			c.prompt.Printf("%d. %s - %s\n", i+1, dp.Username, courierStatus(dp))
		}
	}

	pending, err := c.printPending(ctx, "Orders waiting for dispatch:")
	if err != nil || len(pending) == 0 {
		return err
	}

	position, err := c.prompt.Choice("Choose an order to dispatch (0 to cancel): ", len(pending))
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(pending[position-1].ID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignOrderCommand(id)
	if err != nil {
		return err
	}
	assignment, err := c.handlers.AssignOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.prompt.Printf("Order %s was sent to %s.\n", assignment.Order.ID().Short(), assignment.Courier.Username())
	return nil
}

func (c *Controller) viewOrders(ctx context.Context) error {
	log, err := c.handlers.GetOrderLog.Handle(ctx, queries.NewGetOrderLogQuery())
	if err != nil {
		return err
	}

	if len(log) == 0 {
		c.prompt.Println("No orders yet.")
		return nil
	}

	c.prompt.Println("Orders:")
	for _, o := range log {
		courier := "-"
		if o.Courier != nil {
			courier = *o.Courier
		}
		c.prompt.Printf("Order %s | customer: %s | status: %s | courier: %s | total: $%s\n",
			short(o.ID), o.Customer, o.Status, courier, o.Total)
		for _, l := range o.Lines {
			c.prompt.Printf("  %s x %d @ $%s\n", l.Item, l.Quantity, l.UnitPrice)
		}
	}
	return nil
}

func (c *Controller) printMenu(ctx context.Context) ([]queries.MenuItemResponse, error) {
	items, err := c.handlers.GetMenu.Handle(ctx, queries.NewGetMenuQuery())
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		c.prompt.Println("No items available in the menu.")
		return items, nil
	}

	c.prompt.Println("Menu:")
	for _, item := range items {
		c.prompt.Printf("%d. %s - $%s\n", item.Position, item.Name, item.Price)
	}
	return items, nil
}

// printPending shows a snapshot of the queue. The returned slice maps the
// displayed positions to order ids.
func (c *Controller) printPending(ctx context.Context, title string) ([]queries.OrderResponse, error) {
	pending, err := c.handlers.GetPendingOrders.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		c.prompt.Println("No orders waiting.")
		return pending, nil
	}

	c.prompt.Println(title)
	for _, o := range pending {
		c.prompt.Printf("%d. Order %s from %s - Total: $%s\n", o.Position, short(o.ID), o.Customer, o.Total)
	}
	return pending, nil
}

func courierStatus(dp queries.CourierResponse) string {
	switch {
	case !dp.Online:
		return "offline"
	case dp.ActiveOrder != nil:
		return "online, delivering order " + short(*dp.ActiveOrder)
	default:
		return "online, available"
	}
}
