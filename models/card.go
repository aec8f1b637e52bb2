package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// SetSize is the number of cards in the tracked set.
const SetSize = 102

// SetCode prefixes card numbers when cards are listed ("BS4").
const SetCode = "BS"

// Card is one immutable card definition of the set.
type Card struct {
	// Number is the position of the card in the set, 1..SetSize.
	Number int

	// Name is the printed card name.
	Name string

	// SetCardNumber is the number as printed on the card ("4/102").
	SetCardNumber string

	// MarketValue is the reference market price in major currency units.
	MarketValue decimal.Decimal
}

// Code returns the short listing code of the card, e.g. "BS4".
func (c Card) Code() string {
	return SetCode + strconv.Itoa(c.Number)
}

// Label renders the card as it appears in portfolio listings: "BS4: Charizard".
func (c Card) Label() string {
	return c.Code() + ": " + c.Name
}

// ValidCardNumber reports whether n addresses a card of the set.
func ValidCardNumber(n int) bool {
	return n >= 1 && n <= SetSize
}
