// Package session holds the console role state machine: which menu an actor
// sees and which transitions between menus are allowed.
package session
