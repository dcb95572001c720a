package account

import (
	"errors"
	"sort"
	"sync"

	"foodorder/internal/pkg/errs"
)

var (
	// ErrUsernameTaken is returned by Register when the username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is the single answer to every failed authentication.
	// It never reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Registry is the in-memory half of the Account Store: every registered
// account keyed by username, remembered in registration order.
// All methods are safe for concurrent use and return copies, so callers
// can never mutate registry state behind its lock.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

// Register adds a new account. The existing record is left untouched on a duplicate.
func (r *Registry) Register(a *Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[a.username]; exists {
		return ErrUsernameTaken
	}
	r.accounts[a.username] = a.clone()
	r.order = append(r.order, a.username)
	return nil
}

// Load replaces the registry content with accounts read from storage,
// ordered by registration time.
func (r *Registry) Load(accounts []*Account) error {
	sorted := make([]*Account, 0, len(accounts))
	for _, a := range accounts {
		if err := a.Validate(); err != nil {
			return err
		}
		sorted = append(sorted, a.clone())
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].registeredAt.Before(sorted[j].registeredAt)
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[string]*Account, len(sorted))
	r.order = r.order[:0]
	for _, a := range sorted {
		if _, dup := r.accounts[a.username]; dup {
			continue
		}
		r.accounts[a.username] = a
		r.order = append(r.order, a.username)
	}
	return nil
}

// Authenticate returns the account when password matches, otherwise ErrInvalidCredentials.
func (r *Registry) Authenticate(username, password string) (*Account, error) {
	r.mu.RLock()
	a, ok := r.accounts[username]
	r.mu.RUnlock()

	if !ok {
		dummyHash.Matches(password)
		return nil, ErrInvalidCredentials
	}
	if !a.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return a.clone(), nil
}

// Get returns a copy of the named account.
func (r *Registry) Get(username string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[username]
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	return a.clone(), nil
}

// List returns copies of all accounts in registration order.
func (r *Registry) List() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Account, 0, len(r.order))
	for _, username := range r.order {
		out = append(out, r.accounts[username].clone())
	}
	return out
}

// Delete removes the account and reports whether it existed. Deleting an
// unknown username is a no-op.
func (r *Registry) Delete(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; !ok {
		return false
	}
	delete(r.accounts, username)
	for i, u := range r.order {
		if u == username {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// UpdatePresence sets the delivery flags of the named account and returns a copy.
func (r *Registry) UpdatePresence(username string, online, available bool) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[username]
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	if err := a.SetPresence(online, available); err != nil {
		return nil, err
	}
	return a.clone(), nil
}
