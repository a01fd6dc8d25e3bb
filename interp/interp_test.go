package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var interpolators = []Interpolator{Linear{}, LogLinear{}, LogNaturalCubic{}}

// discount-factor style fixture, same shape as the smooth-curve regression
// data used for log interpolation schemes
var (
	dfXs = []float64{1, 3, 5, 7, 10}
	dfYs = []float64{0.99, 0.95, 0.92, 0.85, 0.82}
)

func fdNodeSensitivities(ip Interpolator, n Nodes, x, eps float64) []float64 {
	base := ip.Interpolate(n, x)
	sens := make([]float64, n.Len())
	for i := 0; i < n.Len(); i++ {
		bumped := n.WithY(i, n.Y(i)+eps)
		sens[i] = (ip.Interpolate(bumped, x) - base) / eps
	}
	return sens
}

func TestNodesValidation(t *testing.T) {
	t.Parallel()

	_, err := NewNodes([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = NewNodes([]float64{1}, []float64{1})
	assert.Error(t, err)

	_, err = NewNodes([]float64{1, 1}, []float64{1, 2})
	assert.Error(t, err)

	_, err = NewNodes([]float64{2, 1}, []float64{1, 2})
	assert.Error(t, err)

	n, err := NewNodes(dfXs, dfYs)
	require.NoError(t, err)
	assert.Equal(t, 5, n.Len())
	assert.Equal(t, 1.0, n.FirstX())
	assert.Equal(t, 10.0, n.LastX())
}

func TestNodesImmutable(t *testing.T) {
	t.Parallel()

	xs := []float64{1, 2}
	ys := []float64{3, 4}
	n := MustNodes(xs, ys)
	xs[0] = 99
	ys[0] = 99
	assert.Equal(t, 1.0, n.X(0))
	assert.Equal(t, 3.0, n.Y(0))

	b := n.WithY(1, 7)
	assert.Equal(t, 4.0, n.Y(1))
	assert.Equal(t, 7.0, b.Y(1))
}

func TestInterpolatorsReproduceNodes(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	for _, ip := range interpolators {
		for i := 0; i < n.Len(); i++ {
			assert.InDelta(t, n.Y(i), ip.Interpolate(n, n.X(i)), 1e-14,
				"%s at node %d", ip.Name(), i)
		}
	}
}

func TestInterpolatorsOutOfRangePanic(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	for _, ip := range interpolators {
		ip := ip
		assert.Panics(t, func() { ip.Interpolate(n, 0.5) }, ip.Name())
		assert.Panics(t, func() { ip.Interpolate(n, 10.5) }, ip.Name())
		assert.Panics(t, func() { ip.NodeSensitivities(n, 0.5) }, ip.Name())
	}
}

func TestInterpolateAtBoundaries(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	for _, ip := range interpolators {
		assert.InDelta(t, 0.99, ip.Interpolate(n, 1), 1e-14, ip.Name())
		assert.InDelta(t, 0.82, ip.Interpolate(n, 10), 1e-14, ip.Name())
	}
}

func TestNodeSensitivitiesMatchFiniteDifference(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	const eps = 1e-7
	xs := []float64{1, 1.7, 3, 4.2, 6.9, 8.5, 10}
	for _, ip := range interpolators {
		for _, x := range xs {
			analytic := ip.NodeSensitivities(n, x)
			fd := fdNodeSensitivities(ip, n, x, eps)
			require.Len(t, analytic, n.Len())
			for i := range analytic {
				assert.InDelta(t, fd[i], analytic[i], 1e-5,
					"%s x=%v node=%d", ip.Name(), x, i)
			}
		}
	}
}

func TestFirstDerivativeMatchesFiniteDifference(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	const eps = 1e-7
	for _, ip := range interpolators {
		for _, x := range []float64{1.5, 4.0, 8.2} {
			fd := (ip.Interpolate(n, x+eps) - ip.Interpolate(n, x-eps)) / (2 * eps)
			assert.InDelta(t, fd, ip.FirstDerivative(n, x), 1e-5,
				"%s x=%v", ip.Name(), x)
		}
	}
}

func TestLinearInterpolation(t *testing.T) {
	t.Parallel()

	n := MustNodes([]float64{0, 10}, []float64{0.1, 0.18})
	assert.InDelta(t, 0.14, Linear{}.Interpolate(n, 5), 1e-14)
	assert.InDelta(t, 0.008, Linear{}.FirstDerivative(n, 5), 1e-14)
	assert.Equal(t, []float64{0.5, 0.5}, Linear{}.NodeSensitivities(n, 5))
	assert.Equal(t, []float64{0.0, 1.0}, Linear{}.NodeSensitivities(n, 10))
}

func TestLogInterpolatorsRejectNonPositive(t *testing.T) {
	t.Parallel()

	n := MustNodes([]float64{1, 2}, []float64{1.0, -0.5})
	assert.Panics(t, func() { LogLinear{}.Interpolate(n, 1.5) })
	assert.Panics(t, func() { LogNaturalCubic{}.Interpolate(n, 1.5) })
}

func TestFlatExtrapolator(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	e := FlatExtrapolator{}
	ip := Linear{}

	assert.Equal(t, 0.99, e.Extrapolate(n, 0.5, ip))
	assert.Equal(t, 0.82, e.Extrapolate(n, 12, ip))
	assert.Equal(t, 0.0, e.FirstDerivative(n, 0.5, ip))

	left := e.NodeSensitivities(n, 0.5, ip)
	assert.Equal(t, 1.0, left[0])
	right := e.NodeSensitivities(n, 12, ip)
	assert.Equal(t, 1.0, right[len(right)-1])

	assert.Panics(t, func() { e.Extrapolate(n, 5, ip) })
}

func TestLinearExtrapolatorContinuity(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	e := NewLinearExtrapolator()
	for _, ip := range interpolators {
		// approaching the boundary from outside meets the boundary value
		assert.InDelta(t, n.FirstY(), e.Extrapolate(n, n.FirstX()-1e-10, ip), 1e-8, ip.Name())
		assert.InDelta(t, n.LastY(), e.Extrapolate(n, n.LastX()+1e-10, ip), 1e-8, ip.Name())
	}
	assert.Panics(t, func() { e.Extrapolate(n, 5, Linear{}) })
}

func TestLinearExtrapolatorMatchesSlope(t *testing.T) {
	t.Parallel()

	// with a linear interpolator, linear extrapolation continues the end segments
	n := MustNodes([]float64{0, 10}, []float64{0.1, 0.18})
	e := NewLinearExtrapolator()
	ip := Linear{}

	assert.InDelta(t, 0.1+(-2)*0.008, e.Extrapolate(n, -2, ip), 1e-8)
	assert.InDelta(t, 0.18+3*0.008, e.Extrapolate(n, 13, ip), 1e-8)
	assert.InDelta(t, 0.008, e.FirstDerivative(n, -2, ip), 1e-6)
	assert.InDelta(t, 0.008, e.FirstDerivative(n, 13, ip), 1e-6)
}

func TestLinearExtrapolatorNodeSensitivities(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	e := NewLinearExtrapolator()
	const eps = 1e-6
	for _, ip := range interpolators {
		for _, x := range []float64{0.25, 11.5} {
			base := e.Extrapolate(n, x, ip)
			analytic := e.NodeSensitivities(n, x, ip)
			for i := 0; i < n.Len(); i++ {
				bumped := n.WithY(i, n.Y(i)+eps)
				fd := (e.Extrapolate(bumped, x, ip) - base) / eps
				assert.InDelta(t, fd, analytic[i], 1e-4,
					"%s x=%v node=%d", ip.Name(), x, i)
			}
		}
	}
}

func TestPassThroughDelegates(t *testing.T) {
	t.Parallel()

	n := MustNodes(dfXs, dfYs)
	e := PassThrough{}
	ip := LogNaturalCubic{}

	assert.Equal(t, ip.Interpolate(n, 4.5), e.Extrapolate(n, 4.5, ip))
	assert.Equal(t, ip.FirstDerivative(n, 4.5), e.FirstDerivative(n, 4.5, ip))
	assert.Equal(t, ip.NodeSensitivities(n, 4.5), e.NodeSensitivities(n, 4.5, ip))

	// the interpolator's domain rules apply unchanged
	assert.Panics(t, func() { e.Extrapolate(n, 0.5, ip) })
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	for _, name := range []string{LinearName, LogLinearName, LogNaturalCubicName} {
		ip, err := InterpolatorByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, ip.Name())
	}
	for _, name := range []string{FlatName, LinearExtrapolatorName, PassThroughName} {
		e, err := ExtrapolatorByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
	}

	_, err := InterpolatorByName("Cubic")
	assert.Error(t, err)
	_, err = ExtrapolatorByName("Quadratic")
	assert.Error(t, err)
}
