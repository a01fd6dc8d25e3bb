package interp

// Linear interpolates piecewise-linearly between the bracketing nodes.
type Linear struct{}

// LinearName is the registry name of the linear interpolator.
const LinearName = "Linear"

func (Linear) Name() string { return LinearName }

func (Linear) Interpolate(n Nodes, x float64) float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	w := (x - n.X(i)) / (n.X(i+1) - n.X(i))
	return (1-w)*n.Y(i) + w*n.Y(i+1)
}

func (Linear) FirstDerivative(n Nodes, x float64) float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	return (n.Y(i+1) - n.Y(i)) / (n.X(i+1) - n.X(i))
}

func (Linear) NodeSensitivities(n Nodes, x float64) []float64 {
	n.checkInRange(x)
	i := n.lowerIndex(x)
	w := (x - n.X(i)) / (n.X(i+1) - n.X(i))
	sens := make([]float64, n.Len())
	sens[i] = 1 - w
	sens[i+1] = w
	return sens
}
