package session

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrAdminLoginRequired is returned when an administrator uses the regular login.
	ErrAdminLoginRequired = errors.New("administrators must use admin login")
	// ErrNotAdministrator is returned when admin login is attempted with a non-admin account.
	ErrNotAdministrator = errors.New("account is not an administrator")
)

// Session is the role state machine of one console actor. The role comes
// from the stored account, never from what the actor typed at login.
//
// A Session is owned by a single console loop and is not safe for
// concurrent use.
type Session struct {
	state    State
	username string
	role     account.Role
}

// New returns a session at the top-level menu.
func New() *Session {
	return &Session{state: Unauthenticated}
}

func (s *Session) State() State {
	return s.state
}

// Username of the logged-in actor, empty when unauthenticated.
func (s *Session) Username() string {
	return s.username
}

func (s *Session) Role() account.Role {
	return s.role
}

// Login enters the session of the account's stored role.
func (s *Session) Login(a *account.Account) error {
	if err := s.requireState(Unauthenticated, "login"); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Role() == account.Admin {
		return ErrAdminLoginRequired
	}
	return s.enter(a)
}

// AdminLogin enters the admin session. The account must be stored as admin.
func (s *Session) AdminLogin(a *account.Account) error {
	if err := s.requireState(Unauthenticated, "admin login"); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Role() != account.Admin {
		return ErrNotAdministrator
	}
	return s.enter(a)
}

// Logout returns an admin to the top-level menu. Other roles can only exit.
func (s *Session) Logout() error {
	if err := s.requireState(AdminSession, "logout"); err != nil {
		return err
	}
	s.state = Unauthenticated
	s.username = ""
	s.role = account.UnknownRole
	return nil
}

// Exit terminates the session from any state.
func (s *Session) Exit() {
	s.state = Terminated
}

// Actions returns the menu of the current state in display order.
// A terminated session has none.
func (s *Session) Actions() []Action {
	actions := menus()[s.state]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Resolve maps a 1-based menu choice onto an action of the current state.
func (s *Session) Resolve(choice int) (Action, error) {
	actions := menus()[s.state]
	if choice < 1 || choice > len(actions) {
		return UnknownAction, errs.NewValueIsOutOfRangeError("menu choice", choice, 1, len(actions))
	}
	return actions[choice-1], nil
}

func (s *Session) enter(a *account.Account) error {
	next := stateFor(a.Role())
	if next == UnknownState {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s has no session", a.Role()))
	}
	s.state = next
	s.username = a.Username()
	s.role = a.Role()
	return nil
}

func (s *Session) requireState(want State, op string) error {
	if s.state != want {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, s.state)
	}
	return nil
}
