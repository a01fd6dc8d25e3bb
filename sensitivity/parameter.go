package sensitivity

import (
	"fmt"
	"math"

	"github.com/rustyeddy/rates/curve"
	"github.com/rustyeddy/rates/money"
)

// CurveParameter is the node-decomposed sensitivity of a value to one curve:
// one entry per curve node, in node order, in a single currency.
type CurveParameter struct {
	Metadata curve.Metadata
	Currency money.Currency
	Values   []float64
}

// NewCurveParameter builds a node-level sensitivity. The values slice is
// copied.
func NewCurveParameter(meta curve.Metadata, ccy money.Currency, values []float64) CurveParameter {
	out := make([]float64, len(values))
	copy(out, values)
	return CurveParameter{Metadata: meta, Currency: ccy, Values: out}
}

// Total returns the sum over all nodes, the parallel-shift sensitivity.
func (cp CurveParameter) Total() float64 {
	var sum float64
	for _, v := range cp.Values {
		sum += v
	}
	return sum
}

// MultipliedBy scales every node value.
func (cp CurveParameter) MultipliedBy(factor float64) CurveParameter {
	out := make([]float64, len(cp.Values))
	for i, v := range cp.Values {
		out[i] = v * factor
	}
	return CurveParameter{Metadata: cp.Metadata, Currency: cp.Currency, Values: out}
}

// CurveParameters is a collection of node-level sensitivities, at most one
// entry per (curve name, currency) pair. The zero value is empty and usable.
type CurveParameters struct {
	entries []CurveParameter
}

// Entries returns the entries. The returned slice must not be modified.
func (cps CurveParameters) Entries() []CurveParameter { return cps.entries }

// Len returns the number of (curve, currency) entries.
func (cps CurveParameters) Len() int { return len(cps.entries) }

// CombinedWith merges two collections. Entries for distinct (curve name,
// currency) keys form a disjoint union; entries sharing a key are added node
// by node, which requires equal node counts.
func (cps CurveParameters) CombinedWith(other CurveParameters) CurveParameters {
	out := CurveParameters{entries: append([]CurveParameter(nil), cps.entries...)}
	for _, e := range other.entries {
		out = out.with(e)
	}
	return out
}

// With returns the collection with one more entry merged in.
func (cps CurveParameters) With(e CurveParameter) CurveParameters {
	out := CurveParameters{entries: append([]CurveParameter(nil), cps.entries...)}
	return out.with(e)
}

func (cps CurveParameters) with(e CurveParameter) CurveParameters {
	for i, existing := range cps.entries {
		if existing.Metadata.Name != e.Metadata.Name || existing.Currency != e.Currency {
			continue
		}
		if len(existing.Values) != len(e.Values) {
			panic(fmt.Sprintf("sensitivity: node count mismatch for curve %s: %d vs %d",
				e.Metadata.Name, len(existing.Values), len(e.Values)))
		}
		merged := make([]float64, len(existing.Values))
		for j := range merged {
			merged[j] = existing.Values[j] + e.Values[j]
		}
		cps.entries[i] = CurveParameter{Metadata: existing.Metadata, Currency: existing.Currency, Values: merged}
		return cps
	}
	cps.entries = append(cps.entries, e)
	return cps
}

// FindByName returns the entry for the given curve name and currency.
func (cps CurveParameters) FindByName(name string, ccy money.Currency) (CurveParameter, bool) {
	for _, e := range cps.entries {
		if e.Metadata.Name == name && e.Currency == ccy {
			return e, true
		}
	}
	return CurveParameter{}, false
}

// EqualWithTolerance reports whether two collections have the same keys and
// node values within tol, the comparison used by the finite-difference
// regression checks.
func (cps CurveParameters) EqualWithTolerance(other CurveParameters, tol float64) bool {
	if len(cps.entries) != len(other.entries) {
		return false
	}
	for _, e := range cps.entries {
		o, ok := other.FindByName(e.Metadata.Name, e.Currency)
		if !ok || len(o.Values) != len(e.Values) {
			return false
		}
		for i := range e.Values {
			if math.Abs(e.Values[i]-o.Values[i]) > tol {
				return false
			}
		}
	}
	return true
}
