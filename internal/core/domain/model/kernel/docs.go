// Package kernel holds the value objects shared by every aggregate of the
// food ordering domain.
//
// The package includes:
//   - UUID: the stable identifier of an order, wrapping github.com/google/uuid
//   - Money: an exact decimal currency amount, wrapping github.com/shopspring/decimal
//
// Money exists so that cart totals never drift: 5.99 x 2 + 8.99 is exactly 20.97.
package kernel
