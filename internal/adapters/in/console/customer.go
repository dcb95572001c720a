package console

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

func (c *Controller) orderFood(ctx context.Context) error {
	items, err := c.printMenu(ctx)
	if err != nil || len(items) == 0 {
		return err
	}

	cart, err := c.currentCart()
	if err != nil {
		return err
	}

	for {
		position, err := c.prompt.Choice("Enter the number of the item you want to order (0 to finish): ", len(items))
		if errors.Is(err, ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		query, err := queries.NewGetMenuItemQuery(position)
		if err != nil {
			return err
		}
		item, err := c.handlers.GetMenuItem.Handle(ctx, query)
		if err != nil {
			return err
		}

		quantity, err := c.prompt.Quantity("Enter the quantity: ")
		if errors.Is(err, ErrCancelled) {
			continue
		}
		if err != nil {
			return err
		}

		if err = cart.AddItem(item, quantity); err != nil {
			return err
		}
		c.prompt.Printf("Added %d x %s to your cart.\n", quantity, item.Name())
	}
}

func (c *Controller) viewCart() {
	if c.cart == nil || c.cart.IsEmpty() {
		c.prompt.Println("Your cart is empty.")
		return
	}

	c.prompt.Println("Cart Contents:")
	c.printLines(c.cart)
}

func (c *Controller) checkout(ctx context.Context) error {
	if c.cart == nil || c.cart.IsEmpty() {
		return order.ErrOrderIsEmpty
	}

	cmd, err := commands.NewCheckoutCommand(c.cart)
	if err != nil {
		return err
	}
	if err = c.handlers.Checkout.Handle(ctx, cmd); err != nil {
		return err
	}

	c.prompt.Println("Order details:")
	c.printLines(c.cart)
	c.prompt.Printf("Order %s placed successfully!\n", c.cart.ID().Short())
	c.cart = nil
	return nil
}

// currentCart returns the open order of this session, starting one if needed.
func (c *Controller) currentCart() (*order.Order, error) {
	if c.cart != nil {
		return c.cart, nil
	}

	cart, err := order.NewOrder(kernel.NewUUID(), c.session.Username())
	if err != nil {
		return nil, err
	}
	c.cart = cart
	return cart, nil
}

func (c *Controller) printLines(o *order.Order) {
	for _, l := range o.Lines() {
		c.prompt.Printf("  %s x %d = $%s\n", l.Item().Name(), l.Quantity(), l.Subtotal())
	}
	c.prompt.Printf("Total: $%s\n", o.Total())
}
