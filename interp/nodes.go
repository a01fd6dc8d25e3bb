// Package interp provides the 1-D interpolators and extrapolators that back
// curve evaluation, together with their node-sensitivity calculations (the
// gradient of the interpolated value with respect to each y node).
package interp

import (
	"fmt"
	"math"
	"sort"
)

// Nodes is an ordered set of (x, y) pairs with strictly increasing x values.
// It is immutable once constructed; interpolators treat it as read-only.
type Nodes struct {
	xs []float64
	ys []float64
}

// NewNodes validates and wraps the given node arrays. The inputs are copied.
// At least two nodes are required and the x values must be strictly
// increasing and finite.
func NewNodes(xs, ys []float64) (Nodes, error) {
	if len(xs) != len(ys) {
		return Nodes{}, fmt.Errorf("interp: x/y length mismatch: %d vs %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Nodes{}, fmt.Errorf("interp: need at least 2 nodes, got %d", len(xs))
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return Nodes{}, fmt.Errorf("interp: non-finite node at index %d", i)
		}
		if i > 0 && x <= xs[i-1] {
			return Nodes{}, fmt.Errorf("interp: x values must be strictly increasing at index %d (%v <= %v)", i, x, xs[i-1])
		}
	}
	n := Nodes{xs: make([]float64, len(xs)), ys: make([]float64, len(ys))}
	copy(n.xs, xs)
	copy(n.ys, ys)
	return n, nil
}

// MustNodes is NewNodes for fixtures and tests; it panics on invalid input.
func MustNodes(xs, ys []float64) Nodes {
	n, err := NewNodes(xs, ys)
	if err != nil {
		panic(err)
	}
	return n
}

// Len returns the node count.
func (n Nodes) Len() int { return len(n.xs) }

// X returns the x value of node i.
func (n Nodes) X(i int) float64 { return n.xs[i] }

// Y returns the y value of node i.
func (n Nodes) Y(i int) float64 { return n.ys[i] }

// FirstX returns the smallest x value.
func (n Nodes) FirstX() float64 { return n.xs[0] }

// LastX returns the largest x value.
func (n Nodes) LastX() float64 { return n.xs[len(n.xs)-1] }

// FirstY returns the y value at the smallest x.
func (n Nodes) FirstY() float64 { return n.ys[0] }

// LastY returns the y value at the largest x.
func (n Nodes) LastY() float64 { return n.ys[len(n.ys)-1] }

// InRange reports whether x lies inside [FirstX, LastX], bounds included.
func (n Nodes) InRange(x float64) bool {
	return x >= n.FirstX() && x <= n.LastX()
}

// XValues returns a copy of the x values.
func (n Nodes) XValues() []float64 {
	out := make([]float64, len(n.xs))
	copy(out, n.xs)
	return out
}

// YValues returns a copy of the y values.
func (n Nodes) YValues() []float64 {
	out := make([]float64, len(n.ys))
	copy(out, n.ys)
	return out
}

// WithY returns a copy of the node set with node i's y value replaced.
func (n Nodes) WithY(i int, y float64) Nodes {
	if i < 0 || i >= len(n.ys) {
		panic(fmt.Sprintf("interp: node index %d out of range [0,%d)", i, len(n.ys)))
	}
	out := Nodes{xs: n.xs, ys: make([]float64, len(n.ys))}
	copy(out.ys, n.ys)
	out.ys[i] = y
	return out
}

// lowerIndex returns i such that xs[i] <= x <= xs[i+1], clamping x == LastX
// to the final interval. The caller must have range-checked x.
func (n Nodes) lowerIndex(x float64) int {
	i := sort.SearchFloat64s(n.xs, x)
	if i > 0 && (i == len(n.xs) || n.xs[i] != x) {
		i--
	}
	if i == len(n.xs)-1 {
		i--
	}
	return i
}

// checkInRange panics when x is outside the node range. In-range evaluation
// is the interpolator's exclusive job; out-of-range x must be routed to an
// extrapolator by the caller.
func (n Nodes) checkInRange(x float64) {
	if !n.InRange(x) {
		panic(fmt.Sprintf("interp: x %v outside node range [%v, %v]", x, n.FirstX(), n.LastX()))
	}
}

// checkOutOfRange panics when x is inside the node range; extrapolators only
// accept values strictly outside it.
func (n Nodes) checkOutOfRange(x float64) {
	if n.InRange(x) {
		panic(fmt.Sprintf("interp: x %v within node range [%v, %v]", x, n.FirstX(), n.LastX()))
	}
}
