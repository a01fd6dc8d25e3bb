package interp

import "fmt"

// InterpolatorByName returns the interpolator registered under name. Used by
// configuration loading where strategies are selected by string.
func InterpolatorByName(name string) (Interpolator, error) {
	switch name {
	case LinearName:
		return Linear{}, nil
	case LogLinearName:
		return LogLinear{}, nil
	case LogNaturalCubicName:
		return LogNaturalCubic{}, nil
	}
	return nil, fmt.Errorf("interp: unknown interpolator %q", name)
}

// ExtrapolatorByName returns the extrapolator registered under name.
func ExtrapolatorByName(name string) (Extrapolator, error) {
	switch name {
	case FlatName:
		return FlatExtrapolator{}, nil
	case LinearExtrapolatorName:
		return NewLinearExtrapolator(), nil
	case PassThroughName:
		return PassThrough{}, nil
	}
	return nil, fmt.Errorf("interp: unknown extrapolator %q", name)
}
