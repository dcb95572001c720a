package persistence_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/persistence"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostgresIntegrationTestSuite runs the repositories against a real
// PostgreSQL server. Skipped with -short.
type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (s *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := persistence.Open(ctx, persistence.Config{Driver: persistence.DriverPostgres, DSN: dsn}, zap.NewNop())
	s.Require().NoError(err)
	s.Require().NoError(persistence.Migrate(db))

	s.db = db
	s.factory = persistence.NewGormUnitOfWorkFactory(db)
}

func (s *PostgresIntegrationTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE order_lines, orders, items, users RESTART IDENTITY").Error
	s.Require().NoError(err)
}

func (s *PostgresIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		_ = persistence.Close(s.db)
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationTestSuite) TestOrderLifecycle() {
	ctx := context.Background()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	burger, err := menu.NewFoodItem("Burger", kernel.MustMoney("5.99"))
	s.Require().NoError(err)
	burger, err = uow.FoodItemRepository().Add(ctx, burger)
	s.Require().NoError(err)
	s.Equal(uint(1), burger.ID())

	pizza, err := menu.NewFoodItem("Pizza", kernel.MustMoney("8.99"))
	s.Require().NoError(err)
	pizza, err = uow.FoodItemRepository().Add(ctx, pizza)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "alice")
	s.Require().NoError(err)
	s.Require().NoError(o.AddItem(burger, 2))
	s.Require().NoError(o.AddItem(pizza, 1))
	s.Require().NoError(o.Checkout(time.Now()))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(o.Assign("dan"))
	s.Require().NoError(repo.Update(ctx, o))

	assigned, err := repo.GetAllInStatus(ctx, order.Assigned)
	s.Require().NoError(err)
	s.Require().Len(assigned, 1)
	s.Equal("20.97", assigned[0].Total().String())
	s.Equal("dan", *assigned[0].Courier())
}

func (s *PostgresIntegrationTestSuite) TestAccountPresence() {
	ctx := context.Background()
	repo := s.factory.Create().AccountRepository()

	acc, err := account.NewAccount("dan", "pw", account.Delivery, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(ctx, acc))
	s.Require().ErrorIs(repo.Add(ctx, acc), account.ErrUsernameTaken)

	s.Require().NoError(acc.SetPresence(true, true))
	s.Require().NoError(repo.Update(ctx, acc))

	stored, err := repo.Get(ctx, "dan")
	s.Require().NoError(err)
	s.True(stored.IsOnline())
	s.True(stored.IsAvailable())
}

func TestPostgresIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(PostgresIntegrationTestSuite))
}
