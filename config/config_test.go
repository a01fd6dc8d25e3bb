package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/rates/money"
)

const marketYAML = `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: USD-Disc
    day_count: ACT/365F
    interpolator: Linear
    left_extrapolator: Flat
    right_extrapolator: LinearExtrapolator
    nodes:
      - {x: 0, y: 0.1}
      - {x: 10, y: 0.18}
index_curves:
  - index: USD-LIBOR-3M
    name: USD-L3M
    interpolator: LogNaturalCubic
    nodes:
      - {x: 0.25, y: 0.012}
      - {x: 1, y: 0.014}
      - {x: 5, y: 0.02}
      - {x: 10, y: 0.028}
fx_rates:
  - {base: GBP, quote: USD, rate: 1.52}
`

const tradeYAML = `
currency: USD
start_date: 2015-02-02
end_date: 2015-08-03
fixed_rate: 0.025
notional: 1.0e7
year_fraction: 0.51
`

func TestParseMarket(t *testing.T) {
	t.Parallel()

	p, err := ParseMarket([]byte(marketYAML))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2015, time.January, 28, 0, 0, 0, 0, time.UTC), p.ValuationDate())

	dsc, ok := p.DiscountCurve(money.USD)
	require.True(t, ok)
	assert.Equal(t, "USD-Disc", dsc.Name())
	assert.Equal(t, 2, dsc.ParameterCount())
	assert.InDelta(t, 0.14, dsc.ValueAt(5), 1e-14)

	fwd, ok := p.IndexCurve("USD-LIBOR-3M")
	require.True(t, ok)
	assert.Equal(t, 4, fwd.ParameterCount())

	fx, err := p.FxRate(money.GBP, money.USD)
	require.NoError(t, err)
	assert.Equal(t, 1.52, fx)
}

func TestParseMarketDefaults(t *testing.T) {
	t.Parallel()

	p, err := ParseMarket([]byte(`
valuation_date: 2015-01-28
discount_curves:
  - currency: EUR
    name: EUR-Disc
    nodes:
      - {x: 0, y: 0.01}
      - {x: 5, y: 0.02}
`))
	require.NoError(t, err)

	c, ok := p.DiscountCurve(money.EUR)
	require.True(t, ok)
	// defaults: linear interpolation, flat extrapolation
	assert.InDelta(t, 0.015, c.ValueAt(2.5), 1e-14)
	assert.Equal(t, 0.02, c.ValueAt(9))
}

func TestParseMarketErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"bad_yaml", ":"},
		{"bad_date", "valuation_date: nope\ndiscount_curves: [{currency: USD, name: C, nodes: [{x: 0, y: 1}, {x: 1, y: 1}]}]"},
		{"no_curves", "valuation_date: 2015-01-28"},
		{"missing_currency", `
valuation_date: 2015-01-28
discount_curves:
  - name: C
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
`},
		{"missing_name", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
`},
		{"unknown_interpolator", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: C
    interpolator: Quintic
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
`},
		{"unknown_day_count", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: C
    day_count: ACT/252
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
`},
		{"single_node", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: C
    nodes: [{x: 0, y: 1}]
`},
		{"unsorted_nodes", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: C
    nodes: [{x: 5, y: 1}, {x: 1, y: 1}]
`},
		{"missing_index_key", `
valuation_date: 2015-01-28
discount_curves:
  - currency: USD
    name: C
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
index_curves:
  - name: F
    nodes: [{x: 0, y: 1}, {x: 1, y: 1}]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMarket([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseTrade(t *testing.T) {
	t.Parallel()

	period, err := ParseTrade([]byte(tradeYAML))
	require.NoError(t, err)

	assert.Equal(t, money.USD, period.Currency)
	assert.Equal(t, time.Date(2015, time.August, 3, 0, 0, 0, 0, time.UTC), period.EndDate)
	assert.Equal(t, period.EndDate, period.PaymentDate, "payment defaults to end date")
	assert.Equal(t, 0.025, period.FixedRate)
	assert.Equal(t, 1.0e7, period.Notional)
	assert.Equal(t, 0.51, period.YearFraction)
}

func TestParseTradeErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseTrade([]byte("start_date: nope"))
	assert.Error(t, err)

	_, err = ParseTrade([]byte(`
currency: USD
start_date: 2015-02-02
end_date: 2015-08-03
fixed_rate: 0.025
year_fraction: 0.51
`))
	assert.Error(t, err, "zero notional")

	_, err = ParseTrade([]byte(`
currency: USD
start_date: 2015-02-02
end_date: 2015-08-03
fixed_rate: 0.025
notional: 100
`))
	assert.Error(t, err, "missing year fraction")
}
