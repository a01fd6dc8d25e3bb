// Package curve provides the immutable interpolated nodal curve used for
// discounting and forward projection, including per-node sensitivity lookup
// and single-node bump reconstruction.
package curve

import (
	"fmt"

	"github.com/rustyeddy/rates/daycount"
	"github.com/rustyeddy/rates/interp"
)

// YValueType describes how a curve's y values are to be interpreted by
// downstream discount-factor computations. The interpolation mechanics are
// the same for all of them.
type YValueType string

const (
	// ZeroRate means y values are continuously-compounded zero rates.
	ZeroRate YValueType = "ZeroRate"
	// DiscountFactor means y values are discount factors.
	DiscountFactor YValueType = "DiscountFactor"
	// LogDiscountFactor means y values are logs of discount factors.
	LogDiscountFactor YValueType = "LogDiscountFactor"
)

// Metadata identifies a curve and fixes the meaning of its axes.
type Metadata struct {
	Name       string
	DayCount   daycount.DayCount
	YValueType YValueType
}

// Curve is an immutable interpolated curve over an ordered node set. A curve
// is built once per market snapshot and shared read-only by every pricer
// consuming that snapshot; bump operations return new instances, so
// concurrent scenario runs need no locking.
type Curve struct {
	meta  Metadata
	nodes interp.Nodes
	ip    interp.Interpolator
	left  interp.Extrapolator
	right interp.Extrapolator
}

// New builds a curve from metadata, nodes and strategies. Nil strategies are
// rejected; use interp.PassThrough{} when no true extrapolation is wanted.
func New(meta Metadata, nodes interp.Nodes, ip interp.Interpolator, left, right interp.Extrapolator) (*Curve, error) {
	if meta.Name == "" {
		return nil, fmt.Errorf("curve: name must not be empty")
	}
	if !meta.DayCount.Valid() {
		return nil, fmt.Errorf("curve %s: unknown day count %q", meta.Name, meta.DayCount)
	}
	if ip == nil || left == nil || right == nil {
		return nil, fmt.Errorf("curve %s: interpolator and extrapolators must not be nil", meta.Name)
	}
	if nodes.Len() < 2 {
		return nil, fmt.Errorf("curve %s: need at least 2 nodes", meta.Name)
	}
	return &Curve{meta: meta, nodes: nodes, ip: ip, left: left, right: right}, nil
}

// Metadata returns the curve metadata.
func (c *Curve) Metadata() Metadata { return c.meta }

// Name returns the curve name.
func (c *Curve) Name() string { return c.meta.Name }

// DayCount returns the day count of the curve's time axis.
func (c *Curve) DayCount() daycount.DayCount { return c.meta.DayCount }

// ParameterCount returns the number of nodes.
func (c *Curve) ParameterCount() int { return c.nodes.Len() }

// XValues returns a copy of the node x values.
func (c *Curve) XValues() []float64 { return c.nodes.XValues() }

// YValues returns a copy of the node y values.
func (c *Curve) YValues() []float64 { return c.nodes.YValues() }

// ValueAt evaluates the curve at x, delegating to the interpolator inside the
// node range (bounds included) and to the side extrapolator outside it.
func (c *Curve) ValueAt(x float64) float64 {
	if c.nodes.InRange(x) {
		return c.ip.Interpolate(c.nodes, x)
	}
	if x < c.nodes.FirstX() {
		return c.left.Extrapolate(c.nodes, x, c.ip)
	}
	return c.right.Extrapolate(c.nodes, x, c.ip)
}

// FirstDerivativeAt evaluates d/dx of the curve at x with the same routing
// rule as ValueAt.
func (c *Curve) FirstDerivativeAt(x float64) float64 {
	if c.nodes.InRange(x) {
		return c.ip.FirstDerivative(c.nodes, x)
	}
	if x < c.nodes.FirstX() {
		return c.left.FirstDerivative(c.nodes, x, c.ip)
	}
	return c.right.FirstDerivative(c.nodes, x, c.ip)
}

// NodeSensitivitiesAt returns the gradient of ValueAt(x) with respect to each
// node's y value, routed exactly as ValueAt.
func (c *Curve) NodeSensitivitiesAt(x float64) []float64 {
	if c.nodes.InRange(x) {
		return c.ip.NodeSensitivities(c.nodes, x)
	}
	if x < c.nodes.FirstX() {
		return c.left.NodeSensitivities(c.nodes, x, c.ip)
	}
	return c.right.NodeSensitivities(c.nodes, x, c.ip)
}

// WithBumpedNode returns a new curve with delta added to node i's y value.
// The receiver is unchanged.
func (c *Curve) WithBumpedNode(i int, delta float64) *Curve {
	return &Curve{
		meta:  c.meta,
		nodes: c.nodes.WithY(i, c.nodes.Y(i)+delta),
		ip:    c.ip,
		left:  c.left,
		right: c.right,
	}
}

// WithYValues returns a new curve with all y values replaced. The x values,
// metadata and strategies are retained.
func (c *Curve) WithYValues(ys []float64) (*Curve, error) {
	nodes, err := interp.NewNodes(c.nodes.XValues(), ys)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", c.meta.Name, err)
	}
	return &Curve{meta: c.meta, nodes: nodes, ip: c.ip, left: c.left, right: c.right}, nil
}
