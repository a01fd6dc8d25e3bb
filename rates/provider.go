package rates

import (
	"fmt"
	"sort"
	"time"

	"github.com/rustyeddy/rates/curve"
	"github.com/rustyeddy/rates/money"
	"github.com/rustyeddy/rates/sensitivity"
)

// Provider is the market-data snapshot pricers read from: a valuation date,
// discount curves keyed by currency, forward (index) curves keyed by index
// name, and FX rates. A provider is never mutated after construction; the
// With methods return modified copies, so a snapshot can be shared across
// concurrent pricing runs and bumped freely by the finite-difference
// calculator.
type Provider struct {
	valuationDate  time.Time
	discountCurves map[money.Currency]*curve.Curve
	indexCurves    map[string]*curve.Curve
	fxRates        map[string]float64
}

// NewProvider returns an empty provider for the valuation date.
func NewProvider(valuationDate time.Time) *Provider {
	return &Provider{
		valuationDate:  valuationDate,
		discountCurves: map[money.Currency]*curve.Curve{},
		indexCurves:    map[string]*curve.Curve{},
		fxRates:        map[string]float64{},
	}
}

func (p *Provider) clone() *Provider {
	out := NewProvider(p.valuationDate)
	for k, v := range p.discountCurves {
		out.discountCurves[k] = v
	}
	for k, v := range p.indexCurves {
		out.indexCurves[k] = v
	}
	for k, v := range p.fxRates {
		out.fxRates[k] = v
	}
	return out
}

// ValuationDate returns the snapshot's valuation date.
func (p *Provider) ValuationDate() time.Time { return p.valuationDate }

// WithDiscountCurve returns a copy with the discount curve for ccy replaced.
func (p *Provider) WithDiscountCurve(ccy money.Currency, c *curve.Curve) *Provider {
	out := p.clone()
	out.discountCurves[ccy] = c
	return out
}

// WithIndexCurve returns a copy with the forward curve for the index replaced.
func (p *Provider) WithIndexCurve(index string, c *curve.Curve) *Provider {
	out := p.clone()
	out.indexCurves[index] = c
	return out
}

// WithFxRate returns a copy with the base/quote FX rate set.
func (p *Provider) WithFxRate(base, quote money.Currency, rate float64) *Provider {
	out := p.clone()
	out.fxRates[fxKey(base, quote)] = rate
	return out
}

func fxKey(base, quote money.Currency) string {
	return string(base) + "/" + string(quote)
}

// FxRate returns the conversion rate from base to quote. The identity pair
// is always 1; the inverse of a stored pair is derived.
func (p *Provider) FxRate(base, quote money.Currency) (float64, error) {
	if base == quote {
		return 1, nil
	}
	if r, ok := p.fxRates[fxKey(base, quote)]; ok {
		return r, nil
	}
	if r, ok := p.fxRates[fxKey(quote, base)]; ok && r != 0 {
		return 1 / r, nil
	}
	return 0, fmt.Errorf("rates: no FX rate for %s/%s", base, quote)
}

// DiscountCurve returns the discount curve for the currency.
func (p *Provider) DiscountCurve(ccy money.Currency) (*curve.Curve, bool) {
	c, ok := p.discountCurves[ccy]
	return c, ok
}

// IndexCurve returns the forward curve for the index.
func (p *Provider) IndexCurve(index string) (*curve.Curve, bool) {
	c, ok := p.indexCurves[index]
	return c, ok
}

// DiscountCurrencies lists the currencies with a discount curve, sorted for
// deterministic iteration.
func (p *Provider) DiscountCurrencies() []money.Currency {
	out := make([]money.Currency, 0, len(p.discountCurves))
	for ccy := range p.discountCurves {
		out = append(out, ccy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IndexNames lists the indices with a forward curve, sorted.
func (p *Provider) IndexNames() []string {
	out := make([]string, 0, len(p.indexCurves))
	for name := range p.indexCurves {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DiscountFactors returns the discount-factor view for the currency.
func (p *Provider) DiscountFactors(ccy money.Currency) (ZeroRateDiscountFactors, error) {
	c, ok := p.discountCurves[ccy]
	if !ok {
		return ZeroRateDiscountFactors{}, fmt.Errorf("rates: no discount curve for %s", ccy)
	}
	return NewZeroRateDiscountFactors(ccy, p.valuationDate, c)
}

// CurveByName resolves a curve by name across discount and index curves.
func (p *Provider) CurveByName(name string) (*curve.Curve, error) {
	for _, c := range p.discountCurves {
		if c.Name() == name {
			return c, nil
		}
	}
	for _, c := range p.indexCurves {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("rates: curve %s not found in provider", name)
}

// ParameterSensitivity reduces point sensitivities to per-node sensitivities
// via the chain rule through each referenced curve's interpolation. Entries
// for the same curve add; distinct curves stay separate, keyed by curve name
// and currency. A point referencing a curve this provider does not hold is an
// error: silently dropping it would understate risk.
func (p *Provider) ParameterSensitivity(points sensitivity.Points) (sensitivity.CurveParameters, error) {
	result := sensitivity.CurveParameters{}
	for _, pt := range points.Normalized().Entries() {
		c, err := p.CurveByName(pt.CurveName)
		if err != nil {
			return sensitivity.CurveParameters{}, err
		}
		t := c.DayCount().YearFraction(p.valuationDate, pt.Date)
		nodeSens := c.NodeSensitivitiesAt(t)
		for i := range nodeSens {
			nodeSens[i] *= pt.Amount
		}
		result = result.With(sensitivity.NewCurveParameter(c.Metadata(), pt.Currency, nodeSens))
	}
	return result, nil
}
