package order

import (
	"sync"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Queue holds checked-out orders awaiting a delivery person, in
// checkout order. It owns its orders until Remove hands one out. Orders
// returned by List and Get are shared with concurrent readers and must not be
// mutated; bind a Clone instead.
type Queue struct {
	mu     sync.Mutex
	orders []*Order
}

func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a Queued order.
func (q *Queue) Enqueue(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != Queued {
		return errs.NewValueIsInvalidError("only queued orders can be enqueued")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, existing := range q.orders {
		if existing.IsEqual(o) {
			return nil
		}
	}
	q.orders = append(q.orders, o)
	return nil
}

// List returns a snapshot of the pending orders in queue order.
func (q *Queue) List() []*Order {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]*Order, len(q.orders))
	copy(out, q.orders)
	return out
}

// Get returns the pending order with the given id.
func (q *Queue) Get(id kernel.UUID) (*Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(id); i >= 0 {
		return q.orders[i], nil
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// Remove takes the order out of the queue and reports the position it held,
// so a failed assignment can put it back with InsertAt. The relative order
// of the remaining entries is preserved.
func (q *Queue) Remove(id kernel.UUID) (*Order, int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return nil, -1, errs.NewObjectNotFoundError("order", id.String())
	}

	o := q.orders[i]
	q.orders = append(q.orders[:i], q.orders[i+1:]...)
	return o, i, nil
}

// InsertAt puts o back at position index, clamped to the queue bounds.
func (q *Queue) InsertAt(index int, o *Order) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 {
		index = 0
	}
	if index > len(q.orders) {
		index = len(q.orders)
	}

	q.orders = append(q.orders, nil)
	copy(q.orders[index+1:], q.orders[index:])
	q.orders[index] = o
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.orders)
}

func (q *Queue) indexOf(id kernel.UUID) int {
	for i, o := range q.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
