package courier

import (
	"sync"

	"foodorder/internal/pkg/errs"
)

// Roster owns the state of every delivery person, in registration order.
// Callers read clones; all changes go through Mutate or Modify so they are
// made under the roster's lock.
type Roster struct {
	mu       sync.Mutex
	couriers []*Courier
}

func NewRoster() *Roster {
	return &Roster{}
}

// Register adds c at the end of the roster. Registering a username that is
// already present is a no-op.
func (r *Roster) Register(c *Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(c.Username()) >= 0 {
		return nil
	}
	r.couriers = append(r.couriers, c.clone())
	return nil
}

// Get returns a copy of the courier's current state.
func (r *Roster) Get(username string) (*Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(username)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("courier", username)
	}
	return r.couriers[i].clone(), nil
}

// List returns copies of all couriers in registration order.
func (r *Roster) List() []*Courier {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Courier, 0, len(r.couriers))
	for _, c := range r.couriers {
		out = append(out, c.clone())
	}
	return out
}

// Remove drops username from the roster and reports whether it was present.
func (r *Roster) Remove(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(username)
	if i < 0 {
		return false
	}
	r.couriers = append(r.couriers[:i], r.couriers[i+1:]...)
	return true
}

// Mutate applies fn to the live courier under the roster lock. When fn fails
// the courier is left as it was.
func (r *Roster) Mutate(username string, fn func(c *Courier) error) (*Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(username)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("courier", username)
	}

	working := r.couriers[i].clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.couriers[i] = working
	return working.clone(), nil
}

// Modify hands fn working copies of all couriers in registration order and
// commits them only if fn succeeds.
func (r *Roster) Modify(fn func(candidates []*Courier) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := make([]*Courier, len(r.couriers))
	for i, c := range r.couriers {
		working[i] = c.clone()
	}
	if err := fn(working); err != nil {
		return err
	}
	r.couriers = working
	return nil
}

func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.couriers)
}

func (r *Roster) indexOf(username string) int {
	for i, c := range r.couriers {
		if c.username == username {
			return i
		}
	}
	return -1
}
