// Package services contains domain services that coordinate several aggregates.
//
// OrderDispatcher matches a queued order with a courier from the roster and
// binds the two, either by picking the first available courier or by
// accepting the courier that asked for the order.
package services
