package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price is a strictly positive amount of money. It keeps the exact amount it
// was built from and wraps github.com/shopspring/decimal so arithmetic and
// comparison are exact.
type Price struct {
	amount decimal.Decimal
}

// NewPrice rejects zero and negative amounts. Any positive amount is kept
// as is, however many fractional digits it has.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	return Price{amount: amount}, nil
}

// NewPriceFromFloat builds a Price from a JSON number.
func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// NewPriceFromString builds a Price from a decimal literal such as "9.99".
func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(d)
}

// Decimal returns the exact amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount for JSON encoding. Amounts that came from a JSON
// number convert back to the same float.
func (p Price) Float64() float64 {
	return p.amount.InexactFloat64()
}

// String returns the exact amount without trailing zeros, e.g. "9.99" or "4.5".
func (p Price) String() string {
	return p.amount.String()
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate rejects the zero value.
func (p Price) Validate() error {
	if !p.amount.IsPositive() {
		return errs.NewValueIsRequiredError("price")
	}
	return nil
}
