// Package finitediff computes curve parameter sensitivities by brute-force
// node bumping. It is the correctness oracle for the analytic sensitivity
// path: one full repricing per curve node, no caching, so a defect can never
// hide behind stale state. Do not use it on hot paths at scale.
package finitediff

import (
	"github.com/rustyeddy/rates/money"
	"github.com/rustyeddy/rates/rates"
	"github.com/rustyeddy/rates/sensitivity"
)

// DefaultShift is one basis point, the conventional bump size.
const DefaultShift = 1.0e-4

// ValueFn prices something against a market snapshot. It must return an
// amount in the same currency for every provider it is given.
type ValueFn func(*rates.Provider) money.Amount

// Calculator computes finite-difference sensitivities with a fixed additive
// shift. It is a stateless value; construct freely or use New.
type Calculator struct {
	Shift float64
}

// New returns a calculator with the default one-basis-point shift.
func New() Calculator {
	return Calculator{Shift: DefaultShift}
}

// Sensitivity computes the forward-difference sensitivity of valueFn to every
// node of every curve in the provider: discount curves first, then forward
// curves, one freshly bumped provider per node, (v_i - v0)/shift per entry.
// The base value is recomputed on every call. Per-curve arrays combine
// exactly as the analytic node reduction does: disjoint union over (curve
// name, currency).
func (c Calculator) Sensitivity(p *rates.Provider, valueFn ValueFn) sensitivity.CurveParameters {
	base := valueFn(p)
	result := sensitivity.CurveParameters{}

	for _, ccy := range p.DiscountCurrencies() {
		cv, _ := p.DiscountCurve(ccy)
		values := make([]float64, cv.ParameterCount())
		for i := range values {
			bumped := p.WithDiscountCurve(ccy, cv.WithBumpedNode(i, c.Shift))
			values[i] = (valueFn(bumped).Value - base.Value) / c.Shift
		}
		result = result.With(sensitivity.NewCurveParameter(cv.Metadata(), base.Currency, values))
	}

	for _, index := range p.IndexNames() {
		cv, _ := p.IndexCurve(index)
		values := make([]float64, cv.ParameterCount())
		for i := range values {
			bumped := p.WithIndexCurve(index, cv.WithBumpedNode(i, c.Shift))
			values[i] = (valueFn(bumped).Value - base.Value) / c.Shift
		}
		result = result.With(sensitivity.NewCurveParameter(cv.Metadata(), base.Currency, values))
	}

	return result
}
