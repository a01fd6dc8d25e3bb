package interp

import (
	"fmt"
	"math"
)

// LogLinear interpolates linearly in ln(y), the usual scheme for discount
// factor curves where piecewise-constant forward rates are wanted. All y
// values must be strictly positive.
type LogLinear struct{}

// LogLinearName is the registry name of the log-linear interpolator.
const LogLinearName = "LogLinear"

func (LogLinear) Name() string { return LogLinearName }

func (LogLinear) Interpolate(n Nodes, x float64) float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	w := weight(n, i, x)
	return math.Exp((1-w)*logY(n, i) + w*logY(n, i+1))
}

func (li LogLinear) FirstDerivative(n Nodes, x float64) float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	slope := (logY(n, i+1) - logY(n, i)) / (n.X(i+1) - n.X(i))
	return li.Interpolate(n, x) * slope
}

func (li LogLinear) NodeSensitivities(n Nodes, x float64) []float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	w := weight(n, i, x)
	v := li.Interpolate(n, x)
	sens := make([]float64, n.Len())
	// d exp((1-w)·ln y_i + w·ln y_{i+1}) / d y_i = v·(1-w)/y_i
	sens[i] = v * (1 - w) / n.Y(i)
	sens[i+1] = v * w / n.Y(i+1)
	return sens
}

func weight(n Nodes, i int, x float64) float64 {
	return (x - n.X(i)) / (n.X(i+1) - n.X(i))
}

func logY(n Nodes, i int) float64 {
	y := n.Y(i)
	if y <= 0 {
		panic(fmt.Sprintf("interp: log interpolation requires positive y, got %v at node %d", y, i))
	}
	return math.Log(y)
}
