package console

import (
	"errors"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/session"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"go.uber.org/zap"
)

var errInvalidAdminCredentials = errors.New("invalid admin credentials")

// userMessages maps expected failures to what the actor sees. The first
// match wins.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrTooManyAttempts, "Too many invalid attempts. Returning to the menu."},
	{account.ErrInvalidCredentials, "Invalid username or password."},
	{errInvalidAdminCredentials, "Invalid admin credentials."},
	{account.ErrUsernameTaken, "Username already exists. Please try again."},
	{session.ErrAdminLoginRequired, "Administrators must use Admin Login."},
	{services.ErrNoCapacity, "No delivery person is available right now. The order stays in the queue."},
	{commands.ErrNoPendingOrders, "No orders waiting for dispatch."},
	{commands.ErrOrderIsNotPending, "That order is no longer pending."},
	{commands.ErrCannotDeleteSelf, "You cannot delete your own account."},
	{courier.ErrCourierIsOffline, "You must be online to accept orders."},
	{courier.ErrCourierIsBusy, "Finish your current delivery first."},
	{courier.ErrNoActiveDelivery, "You have no active delivery."},
	{order.ErrOrderIsEmpty, "Your cart is empty."},
}

func (c *Controller) report(err error) {
	if errors.Is(err, ErrCancelled) {
		return
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			c.prompt.Println(m.msg)
			return
		}
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		c.prompt.Printf("Invalid input: %v\n", err)
		return
	}

	c.logger.Error("unexpected failure", zap.Stringer("state", c.session.State()), zap.Error(err))
	c.prompt.Println("Something went wrong. Please try again.")
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
