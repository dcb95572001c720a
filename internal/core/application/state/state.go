// Package state owns the in-memory aggregates of a running process: the
// account registry, the menu, the order queue and the delivery roster.
//
// A State is created once by the composition root and handed to the use
// case handlers and the inbound adapters, so tests can build isolated
// instances.
package state

import (
	"sync"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
)

type State struct {
	Accounts *account.Registry
	Menu     *menu.Menu
	Queue    *order.Queue
	Roster   *courier.Roster

	assignMu sync.Mutex
}

func New() *State {
	return &State{
		Accounts: account.NewRegistry(),
		Menu:     menu.New(),
		Queue:    order.NewQueue(),
		Roster:   courier.NewRoster(),
	}
}

// WithAssignment runs fn while holding the assignment lock. Every operation
// that moves an order between the queue and a courier runs under it, so a
// courier or an order is never bound twice.
func (s *State) WithAssignment(fn func() error) error {
	s.assignMu.Lock()
	defer s.assignMu.Unlock()
	return fn()
}
