// Package rates provides the market-data view used by pricers: discount
// factors derived from zero-rate curves, and the provider that owns one
// curve set per market snapshot.
package rates

import (
	"fmt"
	"math"
	"time"

	"github.com/rustyeddy/rates/curve"
	"github.com/rustyeddy/rates/money"
	"github.com/rustyeddy/rates/sensitivity"
)

// ZeroRateDiscountFactors turns a zero-rate curve plus a valuation date into
// discount factors. Curve y values are continuously-compounded zero rates on
// the curve's own day-count time axis.
//
// Sensitivity convention: ZeroRatePointSensitivity always carries unit amount
// 1.0 with respect to the zero rate at the date. The chain-rule multiplier
// from zero rate to discount factor (−t·df) is applied by the caller at the
// discount-factor derivative call site, via DiscountFactorZeroRateDerivative.
// This split is used consistently everywhere; the finite-difference round
// trip in the pricer tests pins it down.
type ZeroRateDiscountFactors struct {
	currency      money.Currency
	valuationDate time.Time
	curve         *curve.Curve
}

// NewZeroRateDiscountFactors wraps a zero-rate curve for discounting. The
// curve must carry the ZeroRate y-value type.
func NewZeroRateDiscountFactors(ccy money.Currency, valuationDate time.Time, c *curve.Curve) (ZeroRateDiscountFactors, error) {
	if c == nil {
		return ZeroRateDiscountFactors{}, fmt.Errorf("rates: curve must not be nil")
	}
	if got := c.Metadata().YValueType; got != curve.ZeroRate {
		return ZeroRateDiscountFactors{}, fmt.Errorf("rates: curve %s has y-value type %s, need %s",
			c.Name(), got, curve.ZeroRate)
	}
	return ZeroRateDiscountFactors{currency: ccy, valuationDate: valuationDate, curve: c}, nil
}

// Currency returns the currency the discount factors apply to.
func (df ZeroRateDiscountFactors) Currency() money.Currency { return df.currency }

// ValuationDate returns the date the factors are relative to.
func (df ZeroRateDiscountFactors) ValuationDate() time.Time { return df.valuationDate }

// Curve returns the underlying zero-rate curve.
func (df ZeroRateDiscountFactors) Curve() *curve.Curve { return df.curve }

// RelativeTime returns the curve-axis year fraction from the valuation date
// to the given date. It panics for dates before the valuation date; a
// discount factor for the past is always a caller bug.
func (df ZeroRateDiscountFactors) RelativeTime(date time.Time) float64 {
	t := df.curve.DayCount().YearFraction(df.valuationDate, date)
	if t < 0 {
		panic(fmt.Sprintf("rates: date %s before valuation date %s",
			date.Format("2006-01-02"), df.valuationDate.Format("2006-01-02")))
	}
	return t
}

// ZeroRate returns the continuously-compounded zero rate for the date.
func (df ZeroRateDiscountFactors) ZeroRate(date time.Time) float64 {
	return df.curve.ValueAt(df.RelativeTime(date))
}

// DiscountFactor returns exp(-z(t)·t). The valuation date itself discounts
// to exactly 1.
func (df ZeroRateDiscountFactors) DiscountFactor(date time.Time) float64 {
	t := df.RelativeTime(date)
	if t == 0 {
		return 1.0
	}
	return math.Exp(-df.curve.ValueAt(t) * t)
}

// DiscountFactorWithSpread returns the discount factor with a z-spread added
// to the zero rate. When periodic is false the spread compounds continuously
// and periodsPerYear is ignored; when true the periodically-compounded form
// (1+(z+s)/m)^(-m·t) is used with m = periodsPerYear (must be positive).
func (df ZeroRateDiscountFactors) DiscountFactorWithSpread(date time.Time, spread float64, periodic bool, periodsPerYear int) float64 {
	t := df.RelativeTime(date)
	if t == 0 {
		return 1.0
	}
	z := df.curve.ValueAt(t)
	if !periodic {
		return math.Exp(-(z + spread) * t)
	}
	if periodsPerYear < 1 {
		panic(fmt.Sprintf("rates: periodsPerYear must be positive, got %d", periodsPerYear))
	}
	m := float64(periodsPerYear)
	return math.Pow(1+(z+spread)/m, -m*t)
}

// ZeroRatePointSensitivity returns the unit sensitivity of this curve's zero
// rate at the date: curve name, date, currency and amount 1.0. See the type
// doc for where the −t·df multiplier is applied.
func (df ZeroRateDiscountFactors) ZeroRatePointSensitivity(date time.Time) sensitivity.Point {
	return sensitivity.Point{
		CurveName: df.curve.Name(),
		Date:      date,
		Currency:  df.currency,
		Amount:    1.0,
	}
}

// DiscountFactorZeroRateDerivative returns d df(date) / d z(date) = −t·df.
// Callers multiply this onto ZeroRatePointSensitivity when differentiating a
// discounted value.
func (df ZeroRateDiscountFactors) DiscountFactorZeroRateDerivative(date time.Time) float64 {
	t := df.RelativeTime(date)
	return -t * df.DiscountFactor(date)
}

// DiscountFactorZeroRateDerivativeWithSpread is the spread-adjusted variant
// of DiscountFactorZeroRateDerivative, matching DiscountFactorWithSpread.
func (df ZeroRateDiscountFactors) DiscountFactorZeroRateDerivativeWithSpread(date time.Time, spread float64, periodic bool, periodsPerYear int) float64 {
	t := df.RelativeTime(date)
	if t == 0 {
		return 0
	}
	z := df.curve.ValueAt(t)
	if !periodic {
		return -t * math.Exp(-(z+spread)*t)
	}
	if periodsPerYear < 1 {
		panic(fmt.Sprintf("rates: periodsPerYear must be positive, got %d", periodsPerYear))
	}
	m := float64(periodsPerYear)
	return -t * math.Pow(1+(z+spread)/m, -m*t-1)
}

// NodeSensitivities returns the gradient of the zero rate at the date with
// respect to each curve node.
func (df ZeroRateDiscountFactors) NodeSensitivities(date time.Time) []float64 {
	return df.curve.NodeSensitivitiesAt(df.RelativeTime(date))
}
