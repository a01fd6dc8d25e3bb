package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/rates/daycount"
	"github.com/rustyeddy/rates/interp"
)

var testMeta = Metadata{Name: "USD-Disc", DayCount: daycount.Act365F, YValueType: ZeroRate}

func testCurve(t *testing.T) *Curve {
	t.Helper()
	nodes := interp.MustNodes([]float64{0, 2, 5, 10}, []float64{0.01, 0.015, 0.022, 0.03})
	c, err := New(testMeta, nodes, interp.Linear{}, interp.FlatExtrapolator{}, interp.NewLinearExtrapolator())
	require.NoError(t, err)
	return c
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	nodes := interp.MustNodes([]float64{0, 1}, []float64{0.01, 0.02})

	_, err := New(Metadata{DayCount: daycount.Act365F}, nodes, interp.Linear{}, interp.PassThrough{}, interp.PassThrough{})
	assert.Error(t, err, "empty name")

	_, err = New(Metadata{Name: "C", DayCount: "bogus"}, nodes, interp.Linear{}, interp.PassThrough{}, interp.PassThrough{})
	assert.Error(t, err, "bad day count")

	_, err = New(testMeta, nodes, nil, interp.PassThrough{}, interp.PassThrough{})
	assert.Error(t, err, "nil interpolator")
}

func TestValueAtRouting(t *testing.T) {
	t.Parallel()

	c := testCurve(t)

	// nodes reproduce exactly
	for i, x := range c.XValues() {
		assert.Equal(t, c.YValues()[i], c.ValueAt(x))
	}

	// in-range interpolation
	assert.InDelta(t, 0.0125, c.ValueAt(1), 1e-14)

	// left of range is flat
	assert.Equal(t, 0.01, c.ValueAt(-1))
	assert.Equal(t, 0.0, c.FirstDerivativeAt(-1))

	// right of range extends linearly on the last segment slope
	lastSlope := (0.03 - 0.022) / 5
	assert.InDelta(t, 0.03+2*lastSlope, c.ValueAt(12), 1e-8)
}

func TestNodeSensitivitiesRouting(t *testing.T) {
	t.Parallel()

	c := testCurve(t)

	in := c.NodeSensitivitiesAt(1)
	assert.InDelta(t, 0.5, in[0], 1e-14)
	assert.InDelta(t, 0.5, in[1], 1e-14)

	left := c.NodeSensitivitiesAt(-3)
	assert.Equal(t, 1.0, left[0])
	assert.Equal(t, 0.0, left[1])

	right := c.NodeSensitivitiesAt(12)
	assert.NotZero(t, right[len(right)-1])
}

// the defining correctness law: analytic node sensitivities equal the bumped
// revaluation divided by the bump, in and out of range
func TestNodeSensitivitiesMatchBumpedRevaluation(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	const eps = 1e-7
	for _, x := range []float64{-2, 0, 1.3, 5, 7.7, 10, 13} {
		base := c.ValueAt(x)
		sens := c.NodeSensitivitiesAt(x)
		for i := 0; i < c.ParameterCount(); i++ {
			fd := (c.WithBumpedNode(i, eps).ValueAt(x) - base) / eps
			assert.InDelta(t, fd, sens[i], 1e-6, "x=%v node=%d", x, i)
		}
	}
}

func TestWithBumpedNodeImmutable(t *testing.T) {
	t.Parallel()

	c := testCurve(t)
	before := c.YValues()

	b := c.WithBumpedNode(2, 1e-4)
	assert.Equal(t, before, c.YValues(), "receiver unchanged")
	assert.InDelta(t, before[2]+1e-4, b.YValues()[2], 1e-18)
	assert.Equal(t, c.Name(), b.Name())

	assert.Panics(t, func() { c.WithBumpedNode(99, 1e-4) })
}

func TestWithYValues(t *testing.T) {
	t.Parallel()

	c := testCurve(t)

	b, err := c.WithYValues([]float64{0.02, 0.02, 0.02, 0.02})
	require.NoError(t, err)
	assert.Equal(t, 0.02, b.ValueAt(4))
	assert.Equal(t, c.XValues(), b.XValues())

	_, err = c.WithYValues([]float64{0.02})
	assert.Error(t, err)
}
