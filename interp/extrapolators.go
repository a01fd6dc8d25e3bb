package interp

// FlatExtrapolator extends the curve horizontally at the boundary value.
type FlatExtrapolator struct{}

// FlatName is the registry name of the flat extrapolator.
const FlatName = "Flat"

func (FlatExtrapolator) Name() string { return FlatName }

func (FlatExtrapolator) Extrapolate(n Nodes, x float64, _ Interpolator) float64 {
	n.checkOutOfRange(x)
	if x < n.FirstX() {
		return n.FirstY()
	}
	return n.LastY()
}

func (FlatExtrapolator) FirstDerivative(n Nodes, x float64, _ Interpolator) float64 {
	n.checkOutOfRange(x)
	return 0
}

func (FlatExtrapolator) NodeSensitivities(n Nodes, x float64, _ Interpolator) []float64 {
	n.checkOutOfRange(x)
	sens := make([]float64, n.Len())
	if x < n.FirstX() {
		sens[0] = 1
	} else {
		sens[n.Len()-1] = 1
	}
	return sens
}

// LinearExtrapolator extends the curve linearly using a local slope measured
// a small distance inside the domain. Eps is the relative offset, scaled by
// the node-range span, at which the slope is sampled.
type LinearExtrapolator struct {
	Eps float64
}

// LinearExtrapolatorName is the registry name of the linear extrapolator.
const LinearExtrapolatorName = "LinearExtrapolator"

// defaultLinearEps matches the conventional relative offset for slope sampling.
const defaultLinearEps = 1e-8

// NewLinearExtrapolator returns a linear extrapolator with the default offset.
func NewLinearExtrapolator() LinearExtrapolator {
	return LinearExtrapolator{Eps: defaultLinearEps}
}

func (LinearExtrapolator) Name() string { return LinearExtrapolatorName }

func (e LinearExtrapolator) eps(n Nodes) float64 {
	return e.Eps * (n.LastX() - n.FirstX())
}

func (e LinearExtrapolator) Extrapolate(n Nodes, x float64, ip Interpolator) float64 {
	n.checkOutOfRange(x)
	eps := e.eps(n)
	if x < n.FirstX() {
		bx, by := n.FirstX(), n.FirstY()
		slope := (ip.Interpolate(n, bx+eps) - by) / eps
		return by + (x-bx)*slope
	}
	bx, by := n.LastX(), n.LastY()
	slope := (by - ip.Interpolate(n, bx-eps)) / eps
	return by + (x-bx)*slope
}

func (e LinearExtrapolator) FirstDerivative(n Nodes, x float64, ip Interpolator) float64 {
	n.checkOutOfRange(x)
	eps := e.eps(n)
	if x < n.FirstX() {
		return (ip.Interpolate(n, n.FirstX()+eps) - n.FirstY()) / eps
	}
	return (n.LastY() - ip.Interpolate(n, n.LastX()-eps)) / eps
}

// NodeSensitivities derives the gradient by the same finite perturbation used
// for the slope: the interpolator's own sensitivity vector is sampled just
// inside the boundary and re-weighted by the linear extension factor
// (x - boundary) / eps.
func (e LinearExtrapolator) NodeSensitivities(n Nodes, x float64, ip Interpolator) []float64 {
	n.checkOutOfRange(x)
	eps := e.eps(n)
	if x < n.FirstX() {
		bx := n.FirstX()
		sens := ip.NodeSensitivities(n, bx+eps)
		for i := 1; i < len(sens); i++ {
			sens[i] = sens[i] * (x - bx) / eps
		}
		sens[0] = 1 + (sens[0]-1)*(x-bx)/eps
		return sens
	}
	bx := n.LastX()
	sens := ip.NodeSensitivities(n, bx-eps)
	last := len(sens) - 1
	for i := 0; i < last; i++ {
		sens[i] = -sens[i] * (x - bx) / eps
	}
	sens[last] = 1 + (1-sens[last])*(x-bx)/eps
	return sens
}

// PassThrough is an extrapolator that performs no extrapolation of its own
// and delegates every operation to the interpolator. It stands in when no
// true extrapolation behaviour is configured, so call sites never deal with
// a nil extrapolator; the interpolator's domain rules apply unchanged.
type PassThrough struct{}

// PassThroughName is the registry name of the pass-through extrapolator.
const PassThroughName = "Interpolator"

func (PassThrough) Name() string { return PassThroughName }

func (PassThrough) Extrapolate(n Nodes, x float64, ip Interpolator) float64 {
	return ip.Interpolate(n, x)
}

func (PassThrough) FirstDerivative(n Nodes, x float64, ip Interpolator) float64 {
	return ip.FirstDerivative(n, x)
}

func (PassThrough) NodeSensitivities(n Nodes, x float64, ip Interpolator) []float64 {
	return ip.NodeSensitivities(n, x)
}
