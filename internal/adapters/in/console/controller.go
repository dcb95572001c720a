package console

import (
	"context"
	"errors"
	"io"
	"strconv"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/session"

	"go.uber.org/zap"
)

const (
	ExitOK          = 0
	ExitInterrupted = 130
)

// Handlers bundles the use cases the console drives.
type Handlers struct {
	SignUp           commands.SignUpCommandHandler
	DeleteAccount    commands.DeleteAccountCommandHandler
	SetCourierStatus commands.SetCourierStatusCommandHandler
	AddFoodItem      commands.AddFoodItemCommandHandler
	Checkout         commands.CheckoutCommandHandler
	AssignOrder      commands.AssignOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler

	Authenticate     queries.AuthenticateQueryHandler
	GetAccounts      queries.GetAccountsQueryHandler
	GetMenu          queries.GetMenuQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	GetPendingOrders queries.GetPendingOrdersQueryHandler
	GetCouriers      queries.GetCouriersQueryHandler
	GetOrderLog      queries.GetOrderLogQueryHandler
}

// Controller runs the session state machine against a console.
type Controller struct {
	prompt   *Prompter
	handlers Handlers
	session  *session.Session
	cart     *order.Order
	logger   *zap.Logger
}

func NewController(in io.Reader, out io.Writer, maxAttempts int, handlers Handlers, logger *zap.Logger) *Controller {
	return &Controller{
		prompt:   NewPrompter(in, out, maxAttempts),
		handlers: handlers,
		session:  session.New(),
		logger:   logger.With(zap.String("component", "ConsoleController")),
	}
}

// Run serves the session until the actor exits, the input ends or ctx is
// cancelled, and returns the process exit code.
func (c *Controller) Run(ctx context.Context) int {
	c.prompt.Println("Welcome to the food ordering system!")

	for c.session.State() != session.Terminated {
		if ctx.Err() != nil {
			c.logger.Info("console interrupted", zap.Error(ctx.Err()))
			return ExitInterrupted
		}

		if err := c.step(ctx); errors.Is(err, ErrInputClosed) {
			if ctx.Err() != nil {
				c.logger.Info("console interrupted", zap.Error(ctx.Err()))
				return ExitInterrupted
			}
			c.prompt.Println()
			c.prompt.Println("Input closed. Goodbye!")
			c.session.Exit()
		}
	}
	return ExitOK
}

func (c *Controller) step(ctx context.Context) error {
	if c.session.State() == session.DeliverySession {
		for _, action := range c.session.Actions() {
			if err := c.perform(ctx, action); err != nil {
				return err
			}
		}
		return nil
	}

	action, err := c.chooseAction()
	if err != nil {
		return c.settle(err)
	}
	return c.perform(ctx, action)
}

func (c *Controller) chooseAction() (session.Action, error) {
	c.prompt.Println()
	for i, action := range c.session.Actions() {
		c.prompt.Printf("%d. %s\n", i+1, action)
	}

	return ask(c.prompt, "Choose an option: ", invalidChoice, func(s string) (session.Action, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return session.UnknownAction, err
		}
		return c.session.Resolve(n)
	})
}

// perform runs one menu action. Only ErrInputClosed is returned; every other
// failure is reported to the actor.
func (c *Controller) perform(ctx context.Context, action session.Action) error {
	var err error
	switch action {
	case session.SignUp:
		err = c.signUp(ctx)
	case session.Login:
		err = c.login(ctx)
	case session.AdminLogin:
		err = c.adminLogin(ctx)
	case session.OrderFood:
		err = c.orderFood(ctx)
	case session.ViewCart:
		c.viewCart()
	case session.Checkout:
		err = c.checkout(ctx)
	case session.AddItem:
		err = c.addItem(ctx)
	case session.ViewMenu:
		err = c.viewMenu(ctx)
	case session.ChooseDeliveryPerson:
		err = c.chooseDeliveryPerson(ctx)
	case session.ViewOrders:
		err = c.viewOrders(ctx)
	case session.ToggleStatus:
		err = c.toggleStatus(ctx)
	case session.CompleteDelivery:
		err = c.completeDelivery(ctx)
	case session.AcceptOrder:
		err = c.acceptOrder(ctx)
	case session.ViewAllUsers:
		err = c.viewAllUsers(ctx)
	case session.DeleteAccount:
		err = c.deleteAccount(ctx)
	case session.Logout:
		err = c.logout()
	case session.Exit:
		c.exit()
	case session.UnknownAction:
		c.prompt.Println(invalidChoice)
	}
	return c.settle(err)
}

// settle reports err to the actor and swallows it, unless the input is gone.
func (c *Controller) settle(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInputClosed) {
		return err
	}
	c.report(err)
	return nil
}

func (c *Controller) exit() {
	switch c.session.State() {
	case session.CustomerSession:
		c.prompt.Println("Exiting the food ordering system. Goodbye!")
	case session.MerchantSession:
		c.prompt.Println("Exiting the merchant panel. Goodbye!")
	case session.DeliverySession:
		c.prompt.Println("Exiting the delivery portal. Goodbye!")
	default:
		c.prompt.Println("Exiting the system. Goodbye!")
	}
	c.session.Exit()
}
