package models

import "github.com/shopspring/decimal"

// PortfolioEntry pairs a card with the ownership flag of one user.
type PortfolioEntry struct {
	Card  Card
	Owned bool
}

// Appraisal is the summed market value of the owned cards of a user.
type Appraisal struct {
	// Cards are the owned cards that were valued.
	Cards []Card

	// Total is the sum of market values, rounded to two decimal places.
	Total decimal.Decimal

	// Currency is the ISO 4217 code the total is expressed in.
	Currency string
}

// Completion describes how much of the set a user owns.
type Completion struct {
	Owned   int
	Total   int
	Percent int
}

// Complete reports whether every card of the set is owned.
func (c Completion) Complete() bool {
	return c.Total > 0 && c.Owned == c.Total
}
