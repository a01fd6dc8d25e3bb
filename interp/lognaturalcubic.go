package interp

import "math"

// LogNaturalCubic fits a natural cubic spline (second derivative zero at
// both ends) through ln(y). It is the smooth discount-factor scheme: the
// interpolated value stays positive and the log-space spline is linear in
// the log node values, which is what makes exact node sensitivities cheap.
type LogNaturalCubic struct{}

// LogNaturalCubicName is the registry name of the log natural cubic interpolator.
const LogNaturalCubicName = "LogNaturalCubic"

func (LogNaturalCubic) Name() string { return LogNaturalCubicName }

func (LogNaturalCubic) Interpolate(n Nodes, x float64) float64 {
	n.checkInRange(x)
	zs := logValues(n)
	return math.Exp(splineValue(n, zs, x))
}

func (LogNaturalCubic) FirstDerivative(n Nodes, x float64) float64 {
	n.checkInRange(x)
	zs := logValues(n)
	return math.Exp(splineValue(n, zs, x)) * splineDerivative(n, zs, x)
}

// NodeSensitivities exploits that the natural cubic spline is a linear map of
// its data: evaluating the spline on each unit vector yields the weight of
// that node's log value, and the chain rule through exp/ln gives
// d v / d y_k = v · w_k / y_k.
func (LogNaturalCubic) NodeSensitivities(n Nodes, x float64) []float64 {
	n.checkInRange(x)
	zs := logValues(n)
	v := math.Exp(splineValue(n, zs, x))
	sens := make([]float64, n.Len())
	unit := make([]float64, n.Len())
	for k := range sens {
		unit[k] = 1
		sens[k] = v * splineValue(n, unit, x) / n.Y(k)
		unit[k] = 0
	}
	return sens
}

func logValues(n Nodes) []float64 {
	zs := make([]float64, n.Len())
	for i := range zs {
		zs[i] = logY(n, i)
	}
	return zs
}

// splineSecondDerivatives solves the tridiagonal system for the natural
// cubic spline second derivatives M over data zs at the node x values.
func splineSecondDerivatives(n Nodes, zs []float64) []float64 {
	count := n.Len()
	m := make([]float64, count)
	if count == 2 {
		return m // straight line
	}
	// Thomas algorithm on the interior equations; M[0] = M[count-1] = 0.
	interior := count - 2
	diag := make([]float64, interior)
	rhs := make([]float64, interior)
	upper := make([]float64, interior)
	for i := 0; i < interior; i++ {
		h0 := n.X(i+1) - n.X(i)
		h1 := n.X(i+2) - n.X(i+1)
		diag[i] = 2 * (h0 + h1)
		upper[i] = h1
		rhs[i] = 6 * ((zs[i+2]-zs[i+1])/h1 - (zs[i+1]-zs[i])/h0)
	}
	for i := 1; i < interior; i++ {
		lower := n.X(i+1) - n.X(i) // sub-diagonal h for row i
		f := lower / diag[i-1]
		diag[i] -= f * upper[i-1]
		rhs[i] -= f * rhs[i-1]
	}
	m[interior] = rhs[interior-1] / diag[interior-1]
	for i := interior - 2; i >= 0; i-- {
		m[i+1] = (rhs[i] - upper[i]*m[i+2]) / diag[i]
	}
	return m
}

func splineValue(n Nodes, zs []float64, x float64) float64 {
	m := splineSecondDerivatives(n, zs)
	i := n.lowerIndex(x)
	h := n.X(i+1) - n.X(i)
	a := (n.X(i+1) - x) / h
	b := (x - n.X(i)) / h
	return a*zs[i] + b*zs[i+1] + ((a*a*a-a)*m[i]+(b*b*b-b)*m[i+1])*h*h/6
}

func splineDerivative(n Nodes, zs []float64, x float64) float64 {
	m := splineSecondDerivatives(n, zs)
	i := n.lowerIndex(x)
	h := n.X(i+1) - n.X(i)
	a := (n.X(i+1) - x) / h
	b := (x - n.X(i)) / h
	return (zs[i+1]-zs[i])/h + ((3*b*b-1)*m[i+1]-(3*a*a-1)*m[i])*h/6
}
