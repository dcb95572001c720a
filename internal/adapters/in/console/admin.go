package console

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/courier"
)

func (c *Controller) viewAllUsers(ctx context.Context) error {
	accounts, err := c.handlers.GetAccounts.Handle(ctx, queries.NewGetAccountsQuery())
	if err != nil {
		return err
	}

	c.prompt.Println("All Users:")
	for _, a := range accounts {
		c.prompt.Printf("Username: %s, Role: %s\n", a.Username, a.Role)
	}
	return nil
}

func (c *Controller) deleteAccount(ctx context.Context) error {
	username, err := c.prompt.Text("Enter the username to delete: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteAccountCommand(c.session.Username(), username)
	if err != nil {
		return err
	}
	deleted, err := c.handlers.DeleteAccount.Handle(ctx, cmd)
	if errors.Is(err, courier.ErrCourierIsBusy) {
		c.prompt.Printf("%s is delivering an order and cannot be deleted yet.\n", username)
		return nil
	}
	if err != nil {
		return err
	}

	if deleted {
		c.prompt.Printf("User account deleted: %s\n", username)
	} else {
		c.prompt.Printf("No account named %s.\n", username)
	}
	return nil
}
