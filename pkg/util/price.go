package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("price must be a non-negative number")

// ParsePrice parses a user-supplied price string into a decimal amount.
// Menu forms submit prices as raw text, so "abc", "" and negative values
// must be rejected here before anything reaches the database.
func ParsePrice(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ErrInvalidPrice
	}

	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidPrice
	}

	return price, nil
}
