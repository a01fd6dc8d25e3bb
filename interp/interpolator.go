package interp

// Interpolator is a 1-D fit over a sorted node set. Implementations must be
// stateless values, safe for concurrent use.
//
// All three operations panic when x lies outside [FirstX, LastX]; handling
// out-of-range values is the extrapolator's job and sending one here is a
// routing bug in the caller.
//
// NodeSensitivities must be mathematically consistent with Interpolate: for
// every node i the returned value equals the derivative of Interpolate with
// respect to y_i, which the tests verify by finite difference.
type Interpolator interface {
	// Name returns the registry name of the strategy.
	Name() string

	// Interpolate returns the fitted value at x.
	Interpolate(n Nodes, x float64) float64

	// FirstDerivative returns d/dx of the fitted value at x.
	FirstDerivative(n Nodes, x float64) float64

	// NodeSensitivities returns one entry per node: the derivative of the
	// fitted value at x with respect to that node's y value.
	NodeSensitivities(n Nodes, x float64) []float64
}

// Extrapolator extends a fit beyond the node range. Implementations receive
// the interpolator in use so the derivative chain through the boundary stays
// explicit. All three operations panic when x lies inside the node range,
// except for PassThrough which delegates unconditionally.
type Extrapolator interface {
	// Name returns the registry name of the strategy.
	Name() string

	// Extrapolate returns the extended value at an out-of-range x.
	Extrapolate(n Nodes, x float64, ip Interpolator) float64

	// FirstDerivative returns d/dx of the extended value at x.
	FirstDerivative(n Nodes, x float64, ip Interpolator) float64

	// NodeSensitivities returns the derivative of the extended value at x
	// with respect to each node's y value.
	NodeSensitivities(n Nodes, x float64, ip Interpolator) []float64
}
