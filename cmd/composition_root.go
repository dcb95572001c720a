package cmd

import (
	"io"

	"foodorder/internal/adapters/in/console"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/persistence"
	"foodorder/internal/core/application/state"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *persistence.GormUnitOfWorkFactory
	state      *state.State
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) *CompositionRoot {
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: persistence.NewGormUnitOfWorkFactory(gormDB),
		state:      state.New(),
		logger:     logger,
	}
}

// State is shared by every handler the root creates.
func (c *CompositionRoot) State() *state.State {
	return c.state
}

func (c *CompositionRoot) CreateRestoreStateCommandHandler() commands.RestoreStateCommandHandler {
	return commands.NewRestoreStateCommandHandler(c.uowFactoryFunc(), c.state, c.logger)
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	return commands.NewSignUpCommandHandler(c.accountUoWFactory(), c.state, c.logger)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	return commands.NewDeleteAccountCommandHandler(c.accountUoWFactory(), c.state, c.logger)
}

func (c *CompositionRoot) CreateSetCourierStatusCommandHandler() commands.SetCourierStatusCommandHandler {
	return commands.NewSetCourierStatusCommandHandler(c.accountUoWFactory(), c.state, c.logger)
}

func (c *CompositionRoot) CreateAddFoodItemCommandHandler() commands.AddFoodItemCommandHandler {
	return commands.NewAddFoodItemCommandHandler(c.menuUoWFactory(), c.state, c.logger)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.orderUoWFactory(), c.state, c.logger)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.uowFactoryFunc(), c.state, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uowFactoryFunc(), c.state, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.uowFactoryFunc(), c.state, c.logger)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetAccountsQueryHandler() queries.GetAccountsQueryHandler {
	return queries.NewGetAccountsQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetCouriersQueryHandler() queries.GetCouriersQueryHandler {
	return queries.NewGetCouriersQueryHandler(c.state)
}

func (c *CompositionRoot) CreateGetOrderLogQueryHandler() queries.GetOrderLogQueryHandler {
	return queries.NewGetOrderLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateConsoleController(in io.Reader, out io.Writer) *console.Controller {
	handlers := console.Handlers{
		SignUp:           c.CreateSignUpCommandHandler(),
		DeleteAccount:    c.CreateDeleteAccountCommandHandler(),
		SetCourierStatus: c.CreateSetCourierStatusCommandHandler(),
		AddFoodItem:      c.CreateAddFoodItemCommandHandler(),
		Checkout:         c.CreateCheckoutCommandHandler(),
		AssignOrder:      c.CreateAssignOrderCommandHandler(),
		AcceptOrder:      c.CreateAcceptOrderCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		Authenticate:     c.CreateAuthenticateQueryHandler(),
		GetAccounts:      c.CreateGetAccountsQueryHandler(),
		GetMenu:          c.CreateGetMenuQueryHandler(),
		GetMenuItem:      c.CreateGetMenuItemQueryHandler(),
		GetPendingOrders: c.CreateGetPendingOrdersQueryHandler(),
		GetCouriers:      c.CreateGetCouriersQueryHandler(),
		GetOrderLog:      c.CreateGetOrderLogQueryHandler(),
	}
	return console.NewController(in, out, c.cfg.MaxPromptAttempts, handlers, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetCouriersQueryHandler(),
		c.CreateGetMenuQueryHandler(),
	)
	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateOrderDispatchJob() *jobs.OrderDispatchJob {
	return jobs.NewOrderDispatchJob(c.CreateAssignOrderCommandHandler(), c.cfg.DispatchSchedule, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateOrderDispatchJob())
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
