package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// ParseChoice parses a numbered menu selection. The input must be an integer
// between first and last inclusive.
func ParseChoice(input string, first, last int) (int, error) {
	input = strings.TrimSpace(input)

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: input must be a number (%d - %d), you entered %q", ErrInvalidChoice, first, last, input)
	}
	if n < first || n > last {
		return 0, fmt.Errorf("%w: input must be one of the options (%d - %d), you entered %d", ErrInvalidChoice, first, last, n)
	}
	return n, nil
}

// ParseCardNumber parses a card number as typed by the user. A leading set
// code is accepted, so "4", "BS4" and "bs4" all name card 4.
func ParseCardNumber(input string) (int, error) {
	input = strings.TrimSpace(input)
	if len(input) >= len(models.SetCode) && strings.EqualFold(input[:len(models.SetCode)], models.SetCode) {
		input = input[len(models.SetCode):]
	}

	n, err := strconv.Atoi(input)
	if err != nil || !models.ValidCardNumber(n) {
		return 0, ErrInvalidCardNumber
	}
	return n, nil
}
