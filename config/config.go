// Package config loads market snapshots and trades from YAML files into the
// in-memory structures the pricing engine works with.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/rates/curve"
	"github.com/rustyeddy/rates/daycount"
	"github.com/rustyeddy/rates/interp"
	"github.com/rustyeddy/rates/money"
	"github.com/rustyeddy/rates/pricer"
	"github.com/rustyeddy/rates/rates"
)

const dateLayout = "2006-01-02"

// Market is the YAML form of a rates provider.
type Market struct {
	ValuationDate  string        `yaml:"valuation_date"`
	DiscountCurves []CurveConfig `yaml:"discount_curves"`
	IndexCurves    []CurveConfig `yaml:"index_curves,omitempty"`
	FxRates        []FxConfig    `yaml:"fx_rates,omitempty"`
}

// CurveConfig describes one curve: its key (currency for discount curves,
// index name for forward curves), metadata and nodes. Strategy names resolve
// through the interp registry; omitted fields fall back to linear
// interpolation on an ACT/365F axis with flat extrapolation.
type CurveConfig struct {
	Currency          string       `yaml:"currency,omitempty"`
	Index             string       `yaml:"index,omitempty"`
	Name              string       `yaml:"name"`
	DayCount          string       `yaml:"day_count,omitempty"`
	Interpolator      string       `yaml:"interpolator,omitempty"`
	LeftExtrapolator  string       `yaml:"left_extrapolator,omitempty"`
	RightExtrapolator string       `yaml:"right_extrapolator,omitempty"`
	Nodes             []NodeConfig `yaml:"nodes"`
}

// NodeConfig is one (x, y) curve node.
type NodeConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FxConfig is one FX rate: units of quote per unit of base.
type FxConfig struct {
	Base  string  `yaml:"base"`
	Quote string  `yaml:"quote"`
	Rate  float64 `yaml:"rate"`
}

// Trade is the YAML form of a fixed coupon period.
type Trade struct {
	Currency     string  `yaml:"currency"`
	StartDate    string  `yaml:"start_date"`
	EndDate      string  `yaml:"end_date"`
	PaymentDate  string  `yaml:"payment_date,omitempty"`
	FixedRate    float64 `yaml:"fixed_rate"`
	Notional     float64 `yaml:"notional"`
	YearFraction float64 `yaml:"year_fraction"`
}

// LoadMarket reads a market YAML file and builds the provider.
func LoadMarket(path string) (*rates.Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read market file: %w", err)
	}
	return ParseMarket(data)
}

// ParseMarket builds a provider from market YAML.
func ParseMarket(data []byte) (*rates.Provider, error) {
	var m Market
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse market yaml: %w", err)
	}

	valDate, err := time.Parse(dateLayout, m.ValuationDate)
	if err != nil {
		return nil, fmt.Errorf("parse valuation_date: %w", err)
	}
	if len(m.DiscountCurves) == 0 {
		return nil, fmt.Errorf("market has no discount curves")
	}

	p := rates.NewProvider(valDate)
	for _, cc := range m.DiscountCurves {
		if cc.Currency == "" {
			return nil, fmt.Errorf("discount curve %s: currency is required", cc.Name)
		}
		c, err := buildCurve(cc)
		if err != nil {
			return nil, err
		}
		p = p.WithDiscountCurve(money.Currency(cc.Currency), c)
	}
	for _, cc := range m.IndexCurves {
		if cc.Index == "" {
			return nil, fmt.Errorf("index curve %s: index is required", cc.Name)
		}
		c, err := buildCurve(cc)
		if err != nil {
			return nil, err
		}
		p = p.WithIndexCurve(cc.Index, c)
	}
	for _, fx := range m.FxRates {
		p = p.WithFxRate(money.Currency(fx.Base), money.Currency(fx.Quote), fx.Rate)
	}
	return p, nil
}

func buildCurve(cc CurveConfig) (*curve.Curve, error) {
	if cc.Name == "" {
		return nil, fmt.Errorf("curve config missing name")
	}

	dc := daycount.Act365F
	if cc.DayCount != "" {
		dc = daycount.DayCount(cc.DayCount)
		if !dc.Valid() {
			return nil, fmt.Errorf("curve %s: unknown day count %q", cc.Name, cc.DayCount)
		}
	}

	ipName := cc.Interpolator
	if ipName == "" {
		ipName = interp.LinearName
	}
	ip, err := interp.InterpolatorByName(ipName)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", cc.Name, err)
	}
	left, err := extrapolatorOrFlat(cc.LeftExtrapolator)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", cc.Name, err)
	}
	right, err := extrapolatorOrFlat(cc.RightExtrapolator)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", cc.Name, err)
	}

	xs := make([]float64, len(cc.Nodes))
	ys := make([]float64, len(cc.Nodes))
	for i, n := range cc.Nodes {
		xs[i] = n.X
		ys[i] = n.Y
	}
	nodes, err := interp.NewNodes(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", cc.Name, err)
	}

	meta := curve.Metadata{Name: cc.Name, DayCount: dc, YValueType: curve.ZeroRate}
	return curve.New(meta, nodes, ip, left, right)
}

func extrapolatorOrFlat(name string) (interp.Extrapolator, error) {
	if name == "" {
		return interp.FlatExtrapolator{}, nil
	}
	return interp.ExtrapolatorByName(name)
}

// LoadTrade reads a trade YAML file into a fixed coupon period.
func LoadTrade(path string) (pricer.FixedCouponPeriod, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("read trade file: %w", err)
	}
	return ParseTrade(data)
}

// ParseTrade builds a fixed coupon period from trade YAML. The payment date
// defaults to the end date.
func ParseTrade(data []byte) (pricer.FixedCouponPeriod, error) {
	var tr Trade
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("parse trade yaml: %w", err)
	}

	start, err := time.Parse(dateLayout, tr.StartDate)
	if err != nil {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("parse start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, tr.EndDate)
	if err != nil {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("parse end_date: %w", err)
	}
	payment := end
	if tr.PaymentDate != "" {
		payment, err = time.Parse(dateLayout, tr.PaymentDate)
		if err != nil {
			return pricer.FixedCouponPeriod{}, fmt.Errorf("parse payment_date: %w", err)
		}
	}
	if tr.Notional == 0 {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("trade notional must be set")
	}
	if tr.YearFraction <= 0 {
		return pricer.FixedCouponPeriod{}, fmt.Errorf("trade year_fraction must be positive")
	}

	return pricer.FixedCouponPeriod{
		Currency:            money.Currency(tr.Currency),
		StartDate:           start,
		EndDate:             end,
		UnadjustedStartDate: start,
		UnadjustedEndDate:   end,
		PaymentDate:         payment,
		FixedRate:           tr.FixedRate,
		Notional:            tr.Notional,
		YearFraction:        tr.YearFraction,
	}, nil
}
