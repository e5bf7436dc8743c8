package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// maxAmount is the largest amount accepted (fits in 32 unsigned bits).
var maxAmount = decimal.NewFromInt(math.MaxUint32)

// Amount is a whole, non-negative number of shekels.
type Amount struct {
	value decimal.Decimal
}

// InvalidAmountError reports a token that is not a plain non-negative integer.
type InvalidAmountError struct {
	Token string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: want a non-negative whole number", e.Token)
}

// NewAmount returns an Amount of n shekels.
func NewAmount(n uint32) Amount {
	return Amount{value: decimal.NewFromInt(int64(n))}
}

// ParseAmount accepts base-10 digits only: no sign, decimal point or separators.
// Text from the UI input goes through the same rule as CLI arguments.
func ParseAmount(token string) (Amount, error) {
	if token == "" {
		return Amount{}, &InvalidAmountError{Token: token}
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return Amount{}, &InvalidAmountError{Token: token}
		}
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return Amount{}, &InvalidAmountError{Token: token}
	}
	if d.GreaterThan(maxAmount) {
		return Amount{}, &InvalidAmountError{Token: token}
	}
	return Amount{value: d}, nil
}

// Decimal returns the amount as a decimal.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// String renders the canonical integer form ("007" -> "7").
func (a Amount) String() string {
	return a.value.String()
}
