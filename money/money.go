// Package money holds the minimal currency and amount types shared by the
// pricing and sensitivity code.
package money

import "fmt"

// Currency is an ISO 4217 currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	KRW Currency = "KRW"
)

// Amount is a monetary amount in a single currency.
type Amount struct {
	Currency Currency
	Value    float64
}

// NewAmount returns an amount in the given currency.
func NewAmount(ccy Currency, value float64) Amount {
	return Amount{Currency: ccy, Value: value}
}

// Plus adds two amounts. It panics if the currencies differ; adding across
// currencies without an FX rate is always a caller bug.
func (a Amount) Plus(other Amount) Amount {
	if a.Currency != other.Currency {
		panic(fmt.Sprintf("money: cannot add %s to %s", other.Currency, a.Currency))
	}
	return Amount{Currency: a.Currency, Value: a.Value + other.Value}
}

// MultipliedBy scales the amount.
func (a Amount) MultipliedBy(factor float64) Amount {
	return Amount{Currency: a.Currency, Value: a.Value * factor}
}

// Converted returns the amount expressed in another currency at the given
// rate (units of target per unit of source).
func (a Amount) Converted(target Currency, rate float64) Amount {
	if a.Currency == target {
		return a
	}
	return Amount{Currency: target, Value: a.Value * rate}
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %.6f", a.Currency, a.Value)
}
