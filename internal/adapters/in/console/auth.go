package console

import (
	"context"
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/session"
)

func (c *Controller) signUp(ctx context.Context) error {
	username, password, err := c.credentials("Enter your username: ", "Enter your password: ")
	if err != nil {
		return err
	}

	role, err := ask(c.prompt, "Enter your role (customer, merchant, delivery): ", "", func(s string) (account.Role, error) {
		r, parseErr := account.ParseRole(s)
		if parseErr == nil && !r.IsSelfService() {
			return account.UnknownRole, errors.New("administrator accounts cannot be created here")
		}
		return r, parseErr
	})
	if err != nil {
		return err
	}

	cmd, err := commands.NewSignUpCommand(username, password, role)
	if err != nil {
		return err
	}
	acc, err := c.handlers.SignUp.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.prompt.Println("Sign up successful!")
	return c.enter(acc)
}

func (c *Controller) login(ctx context.Context) error {
	acc, err := c.authenticate(ctx, "Enter your username: ", "Enter your password: ")
	if err != nil {
		return err
	}

	c.prompt.Println("Login successful!")
	return c.enter(acc)
}

func (c *Controller) adminLogin(ctx context.Context) error {
	acc, err := c.authenticate(ctx, "Enter admin username: ", "Enter admin password: ")
	if errors.Is(err, account.ErrInvalidCredentials) {
		return errInvalidAdminCredentials
	}
	if err != nil {
		return err
	}

	if err = c.session.AdminLogin(acc); err != nil {
		if errors.Is(err, session.ErrNotAdministrator) {
			return errInvalidAdminCredentials
		}
		return err
	}

	c.prompt.Println("Admin login successful!")
	return nil
}

func (c *Controller) logout() error {
	if err := c.session.Logout(); err != nil {
		return err
	}
	c.prompt.Println("Logging out as admin.")
	return nil
}

func (c *Controller) credentials(userLabel, passwordLabel string) (string, string, error) {
	username, err := c.prompt.Text(userLabel)
	if err != nil {
		return "", "", err
	}
	password, err := c.prompt.Text(passwordLabel)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (c *Controller) authenticate(ctx context.Context, userLabel, passwordLabel string) (*account.Account, error) {
	username, password, err := c.credentials(userLabel, passwordLabel)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewAuthenticateQuery(username, password)
	if err != nil {
		return nil, err
	}
	return c.handlers.Authenticate.Handle(ctx, query)
}

// enter moves the session into the account's stored role.
func (c *Controller) enter(acc *account.Account) error {
	if err := c.session.Login(acc); err != nil {
		return err
	}

	c.cart = nil
	switch c.session.State() {
	case session.CustomerSession:
		c.prompt.Printf("Welcome, %s! Browse the menu and place your order.\n", acc.Username())
	case session.MerchantSession:
		c.prompt.Printf("Welcome to the Merchant Panel, %s!\n", acc.Username())
	case session.DeliverySession:
		c.prompt.Printf("Welcome to the delivery portal, %s!\n", acc.Username())
	}
	return nil
}
