// Package menu provides the merchant catalog: FoodItem values and the
// insertion-ordered Menu customers pick from.
package menu
