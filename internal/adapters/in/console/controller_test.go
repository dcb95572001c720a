package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"foodorder/cmd"
	"foodorder/internal/adapters/in/console"
	"foodorder/internal/adapters/out/persistence"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ControllerTestSuite struct {
	suite.Suite
	ctx  context.Context
	root *cmd.CompositionRoot
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctx = context.Background()

	cfg := cmd.Config{
		Database:          persistence.Config{Driver: persistence.DriverSQLite, DSN: ":memory:"},
		AdminUsername:     "admin",
		AdminPassword:     "secret",
		MaxPromptAttempts: 3,
	}

	db, err := persistence.Open(s.ctx, cfg.Database, zap.NewNop())
	s.Require().NoError(err)
	s.Require().NoError(persistence.Migrate(db))
	s.T().Cleanup(func() { _ = persistence.Close(db) })

	s.root = cmd.NewCompositionRoot(cfg, db, zap.NewNop())

	restore, err := commands.NewRestoreStateCommand(cfg.AdminUsername, cfg.AdminPassword)
	s.Require().NoError(err)
	_, err = s.root.CreateRestoreStateCommandHandler().Handle(s.ctx, restore)
	s.Require().NoError(err)
}

// run feeds one answer per line and returns the exit code and everything printed.
func (s *ControllerTestSuite) run(lines ...string) (int, string) {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	code := s.root.CreateConsoleController(in, &out).Run(s.ctx)
	return code, out.String()
}

func (s *ControllerTestSuite) signUp(username string, role account.Role) {
	cmd, err := commands.NewSignUpCommand(username, "pw", role)
	s.Require().NoError(err)
	_, err = s.root.CreateSignUpCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
}

func (s *ControllerTestSuite) goOnline(username string) {
	cmd, err := commands.NewSetCourierStatusCommand(username, true)
	s.Require().NoError(err)
	_, err = s.root.CreateSetCourierStatusCommandHandler().Handle(s.ctx, cmd)
	s.Require().NoError(err)
}

// placeOrder runs a customer session that buys two burgers and a pizza.
func (s *ControllerTestSuite) placeOrder(customer string) string {
	code, out := s.run(
		"1", customer, "pw", "customer",
		"1", "1", "2", "2", "1", "0",
		"3",
		"4",
	)
	s.Require().Equal(console.ExitOK, code)
	return out
}

func (s *ControllerTestSuite) TestCustomerOrderIsAcceptedByDeliveryPerson() {
	out := s.placeOrder("alice")

	s.Contains(out, "Sign up successful!")
	s.Contains(out, "Welcome, alice! Browse the menu and place your order.")
	s.Contains(out, "1. Burger - $5.99")
	s.Contains(out, "Added 2 x Burger to your cart.")
	s.Contains(out, "Added 1 x Pizza to your cart.")
	s.Contains(out, "  Burger x 2 = $11.98")
	s.Contains(out, "Total: $20.97")
	s.Contains(out, "placed successfully!")
	s.Contains(out, "Exiting the food ordering system. Goodbye!")
	s.Equal(1, s.root.State().Queue.Len())

	code, out := s.run("1", "bob", "pw", "delivery", "1", "1")

	s.Equal(console.ExitOK, code)
	s.Contains(out, "Welcome to the delivery portal, bob!")
	s.Contains(out, "You are now online.")
	s.Contains(out, "1. Order ")
	s.Contains(out, "from alice - Total: $20.97")
	s.Contains(out, "with total amount: $20.97")
	s.Contains(out, "Exiting the delivery portal. Goodbye!")

	s.Zero(s.root.State().Queue.Len())
	bob, err := s.root.State().Roster.Get("bob")
	s.Require().NoError(err)
	s.True(bob.HasActiveOrder())
	s.False(bob.IsAvailable())
}

func (s *ControllerTestSuite) TestDeliveryPersonCompletesHeldOrder() {
	s.placeOrder("alice")
	s.signUp("bob", account.Delivery)
	s.run("2", "bob", "pw", "1", "1")

	code, out := s.run("2", "bob", "pw", "1", "1")

	s.Equal(console.ExitOK, code)
	s.Contains(out, "Login successful!")
	s.Contains(out, "Mark it as delivered?")
	s.Contains(out, "marked as delivered.")
	s.Contains(out, "No orders waiting.")

	bob, err := s.root.State().Roster.Get("bob")
	s.Require().NoError(err)
	s.False(bob.HasActiveOrder())
	s.True(bob.IsAvailable())
}

func (s *ControllerTestSuite) TestAcceptWhileOfflineKeepsOrderQueued() {
	s.placeOrder("alice")
	s.signUp("bob", account.Delivery)

	_, out := s.run("2", "bob", "pw", "0")

	s.Contains(out, "You are now offline.")
	s.Contains(out, "You must be online to accept orders.")
	s.NotContains(out, "Orders waiting for acceptance:")
	s.Equal(1, s.root.State().Queue.Len())
}

func (s *ControllerTestSuite) TestLoginWithWrongPassword() {
	s.signUp("alice", account.Customer)

	code, out := s.run("2", "alice", "nope", "2", "ghost", "pw", "4")

	s.Equal(console.ExitOK, code)
	s.Equal(2, strings.Count(out, "Invalid username or password."))
	s.Contains(out, "Exiting the system. Goodbye!")
}

func (s *ControllerTestSuite) TestDuplicateSignUp() {
	s.signUp("alice", account.Customer)

	_, out := s.run("1", "alice", "other", "merchant", "2", "alice", "pw", "4")

	s.Contains(out, "Username already exists. Please try again.")
	s.Contains(out, "Login successful!")
	s.Contains(out, "Welcome, alice!")
}

func (s *ControllerTestSuite) TestSignUpRejectsAdminRole() {
	_, out := s.run("1", "eve", "pw", "admin", "customer", "4")

	s.Contains(out, "administrator accounts cannot be created here")
	s.Contains(out, "Welcome, eve!")
}

func (s *ControllerTestSuite) TestAdminManagesAccounts() {
	s.signUp("alice", account.Customer)
	s.signUp("mia", account.Merchant)

	code, out := s.run(
		"3", "admin", "secret",
		"1",
		"2", "alice",
		"2", "nobody",
		"2", "admin",
		"3",
		"4",
	)

	s.Equal(console.ExitOK, code)
	s.Contains(out, "Admin login successful!")
	s.Contains(out, "All Users:")
	s.Contains(out, "Username: admin, Role: admin")
	s.Contains(out, "Username: alice, Role: customer")
	s.Contains(out, "Username: mia, Role: merchant")
	s.Contains(out, "User account deleted: alice")
	s.Contains(out, "No account named nobody.")
	s.Contains(out, "You cannot delete your own account.")
	s.Contains(out, "Logging out as admin.")
	s.Contains(out, "Exiting the system. Goodbye!")

	_, err := s.root.State().Accounts.Get("alice")
	s.Error(err)
}

func (s *ControllerTestSuite) TestAdminLoginRequiresAdminRole() {
	s.signUp("alice", account.Customer)

	_, out := s.run("3", "alice", "pw", "2", "admin", "secret", "4")

	s.Contains(out, "Invalid admin credentials.")
	s.Contains(out, "Administrators must use Admin Login.")
}

func (s *ControllerTestSuite) TestMerchantDispatchesOrder() {
	s.placeOrder("alice")
	s.signUp("bob", account.Delivery)
	s.signUp("carl", account.Delivery)
	s.goOnline("carl")

	code, out := s.run("1", "mia", "pw", "merchant", "3", "1", "5")

	s.Equal(console.ExitOK, code)
	s.Contains(out, "Welcome to the Merchant Panel, mia!")
	s.Contains(out, "1. bob - offline")
	s.Contains(out, "2. carl - online, available")
	s.Contains(out, "Orders waiting for dispatch:")
	s.Contains(out, "was sent to carl.")
	s.Contains(out, "Exiting the merchant panel. Goodbye!")
	s.Zero(s.root.State().Queue.Len())
}

func (s *ControllerTestSuite) TestMerchantDispatchWithoutCapacity() {
	s.placeOrder("alice")
	s.signUp("bob", account.Delivery)

	_, out := s.run("1", "mia", "pw", "merchant", "3", "1", "5")

	s.Contains(out, "No delivery person is available right now. The order stays in the queue.")
	s.Equal(1, s.root.State().Queue.Len())
}

func (s *ControllerTestSuite) TestMerchantAddsItemAndViewsOrders() {
	s.placeOrder("alice")

	_, out := s.run(
		"1", "mia", "pw", "merchant",
		"1", "Soup", "abc", "$4.50",
		"2",
		"4",
		"5",
	)

	s.Contains(out, "Invalid input:")
	s.Contains(out, "Food item added to the menu: Soup - $4.50")
	s.Contains(out, "4. Soup - $4.50")
	s.Contains(out, "Orders:")
	s.Contains(out, "customer: alice | status: Queued | courier: - | total: $20.97")
	s.Contains(out, "  Burger x 2 @ $5.99")
	s.Equal(4, s.root.State().Menu.Len())
}

func (s *ControllerTestSuite) TestCustomerCheckoutWithEmptyCart() {
	_, out := s.run("1", "alice", "pw", "customer", "2", "3", "4")

	s.Equal(2, strings.Count(out, "Your cart is empty."))
	s.Zero(s.root.State().Queue.Len())
}

func (s *ControllerTestSuite) TestTooManyInvalidChoices() {
	_, out := s.run("9", "x", "-1", "4")

	s.Equal(3, strings.Count(out, "Invalid choice. Please try again."))
	s.Contains(out, "Too many invalid attempts. Returning to the menu.")
	s.Contains(out, "Exiting the system. Goodbye!")
}

func (s *ControllerTestSuite) TestInputClosed() {
	code, out := s.run()

	s.Equal(console.ExitOK, code)
	s.Contains(out, "Welcome to the food ordering system!")
	s.Contains(out, "Input closed. Goodbye!")
}

func TestController_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := console.NewController(strings.NewReader("4\n"), &out, 0, console.Handlers{}, zap.NewNop())

	assert.Equal(t, console.ExitInterrupted, c.Run(ctx))
	require.Contains(t, out.String(), "Welcome to the food ordering system!")
}
