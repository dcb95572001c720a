// Package console is the interactive front end: it drives one session per
// process over a line-oriented reader and writer.
//
// The session state decides which numbered menu is shown:
//
//	Unauthenticated: Sign Up, Login, Admin Login, Exit
//	Customer:        Order Food, View Cart, Checkout, Exit
//	Merchant:        Add Item, View Menu, Choose Delivery Person, View Orders, Exit
//	Admin:           View All Users, Delete Account, Logout
//
// The delivery portal is not a menu. It walks its steps once, in order:
// toggle online status, offer to complete a held delivery, offer the queue
// for acceptance, then exit.
//
// Every prompt re-asks a bounded number of times and "0" cancels a
// selection. Queue positions shown on screen are resolved to order ids
// before any command runs.
package console
