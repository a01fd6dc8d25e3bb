// Package pricer contains the discounting pricer for fixed coupon payment
// periods, the representative consumer of the curve engine and the vehicle
// for the analytic-versus-finite-difference regression checks.
package pricer

import (
	"time"

	"github.com/rustyeddy/rates/money"
	"github.com/rustyeddy/rates/rates"
	"github.com/rustyeddy/rates/sensitivity"
)

// FixedCouponPeriod is one fixed coupon accrual period of a bond or swap leg.
// The adjusted dates drive valuation; the unadjusted dates are retained for
// reporting. Payment occurs on PaymentDate (normally the adjusted end date).
type FixedCouponPeriod struct {
	Currency            money.Currency
	StartDate           time.Time
	EndDate             time.Time
	UnadjustedStartDate time.Time
	UnadjustedEndDate   time.Time
	PaymentDate         time.Time
	FixedRate           float64
	Notional            float64
	YearFraction        float64
}

// FixedCouponPricer prices fixed coupon periods by discounting. It is a
// stateless value; construct freely or use New.
type FixedCouponPricer struct{}

// New returns the conventional pricer instance.
func New() FixedCouponPricer {
	return FixedCouponPricer{}
}

// FutureValue returns the undiscounted coupon amount, zero once the payment
// date is on or before the valuation date.
func (FixedCouponPricer) FutureValue(period FixedCouponPeriod, dsc rates.ZeroRateDiscountFactors) float64 {
	if !period.PaymentDate.After(dsc.ValuationDate()) {
		return 0
	}
	return period.FixedRate * period.Notional * period.YearFraction
}

// PresentValue discounts the coupon amount to the valuation date.
func (p FixedCouponPricer) PresentValue(period FixedCouponPeriod, dsc rates.ZeroRateDiscountFactors) float64 {
	if !period.PaymentDate.After(dsc.ValuationDate()) {
		return 0
	}
	return p.FutureValue(period, dsc) * dsc.DiscountFactor(period.PaymentDate)
}

// PresentValueWithSpread discounts with a z-spread applied to the zero rate.
func (p FixedCouponPricer) PresentValueWithSpread(
	period FixedCouponPeriod,
	dsc rates.ZeroRateDiscountFactors,
	spread float64,
	periodic bool,
	periodsPerYear int,
) float64 {
	if !period.PaymentDate.After(dsc.ValuationDate()) {
		return 0
	}
	df := dsc.DiscountFactorWithSpread(period.PaymentDate, spread, periodic, periodsPerYear)
	return p.FutureValue(period, dsc) * df
}

// PresentValueSensitivity returns the point sensitivity of the present value
// to the discounting curve's zero rate at the payment date: the unit point
// sensitivity scaled by coupon × (−t·df) at this call site, per the
// convention documented on ZeroRateDiscountFactors.
func (p FixedCouponPricer) PresentValueSensitivity(period FixedCouponPeriod, dsc rates.ZeroRateDiscountFactors) sensitivity.Points {
	if !period.PaymentDate.After(dsc.ValuationDate()) {
		return sensitivity.None()
	}
	coupon := p.FutureValue(period, dsc)
	point := dsc.ZeroRatePointSensitivity(period.PaymentDate).
		MultipliedBy(coupon * dsc.DiscountFactorZeroRateDerivative(period.PaymentDate))
	return sensitivity.NewPoints(point)
}

// PresentValueSensitivityWithSpread is the spread-adjusted variant of
// PresentValueSensitivity.
func (p FixedCouponPricer) PresentValueSensitivityWithSpread(
	period FixedCouponPeriod,
	dsc rates.ZeroRateDiscountFactors,
	spread float64,
	periodic bool,
	periodsPerYear int,
) sensitivity.Points {
	if !period.PaymentDate.After(dsc.ValuationDate()) {
		return sensitivity.None()
	}
	coupon := p.FutureValue(period, dsc)
	deriv := dsc.DiscountFactorZeroRateDerivativeWithSpread(period.PaymentDate, spread, periodic, periodsPerYear)
	point := dsc.ZeroRatePointSensitivity(period.PaymentDate).MultipliedBy(coupon * deriv)
	return sensitivity.NewPoints(point)
}

// FutureValueSensitivity is empty: the undiscounted coupon has no rate
// exposure.
func (FixedCouponPricer) FutureValueSensitivity(FixedCouponPeriod, rates.ZeroRateDiscountFactors) sensitivity.Points {
	return sensitivity.None()
}
