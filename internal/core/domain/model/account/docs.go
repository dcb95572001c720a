// Package account models the actors of the food ordering system and the
// in-memory registry that authenticates them.
//
// The package includes:
//   - Account: username, bcrypt password digest, role and delivery presence
//   - Role: customer, merchant, delivery or admin; parsed from free text
//   - Registry: the process-local account store, safe for concurrent use
//
// Key business rules:
//   - usernames are unique; a duplicate signup leaves the first record unchanged
//   - authentication failures are indistinguishable (ErrInvalidCredentials)
//   - only customer, merchant and delivery may be chosen at signup
package account
