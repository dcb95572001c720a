// Package order provides the Order aggregate and the Queue of checked-out
// orders waiting for a delivery person.
//
// The package includes:
//   - Order: the customer's cart that becomes an immutable queued order on checkout
//   - Line: one food item with its accumulated quantity
//   - Status: the Open -> Queued -> Assigned -> Delivered state machine
//   - Queue: the insertion-ordered, mutex guarded list of pending orders
//
// Key business rules:
//   - Order totals are exact decimals, the sum of price times quantity
//   - Adding an item already in the cart increases its quantity
//   - Empty carts cannot be checked out
//   - An order leaves the queue only when it is bound to a delivery person
package order
