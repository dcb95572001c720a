// Package courier provides the delivery side of the domain: the Courier
// aggregate and the Roster that owns every courier's state.
//
// The package includes:
//   - Courier: online flag plus at most one active delivery
//   - Roster: registration-ordered, mutex guarded set of couriers
//
// Key business rules:
//   - A courier holds at most one active delivery at a time
//   - Only online couriers without a delivery can take an order
//   - Couriers cannot go offline while delivering
//   - Roster reads return copies; changes happen under the roster lock
package courier
