// Package sensitivity holds the sensitivity value types: point sensitivities
// keyed by curve identity and date, and their node-decomposed counterparts
// keyed by curve name and currency.
package sensitivity

import (
	"sort"
	"time"

	"github.com/rustyeddy/rates/money"
)

// Point is the derivative of a priced value with respect to a curve's rate at
// one specific date, prior to decomposition into per-node derivatives.
type Point struct {
	CurveName string
	Date      time.Time
	Currency  money.Currency
	Amount    float64
}

// MultipliedBy scales the sensitivity amount.
func (p Point) MultipliedBy(factor float64) Point {
	p.Amount *= factor
	return p
}

// Points is an ordered collection of point sensitivities. The zero value is
// usable and stands for "no sensitivity".
type Points struct {
	entries []Point
}

// NewPoints wraps the given entries. The slice is copied.
func NewPoints(entries ...Point) Points {
	out := make([]Point, len(entries))
	copy(out, entries)
	return Points{entries: out}
}

// None is the empty sensitivity, used where an operation has no rate exposure.
func None() Points {
	return Points{}
}

// Entries returns a copy of the entries.
func (ps Points) Entries() []Point {
	out := make([]Point, len(ps.entries))
	copy(out, ps.entries)
	return out
}

// Len returns the entry count.
func (ps Points) Len() int { return len(ps.entries) }

// CombinedWith concatenates two collections. Entries are not merged until
// Normalized is called; combination is order-irrelevant after normalization.
func (ps Points) CombinedWith(other Points) Points {
	out := make([]Point, 0, len(ps.entries)+len(other.entries))
	out = append(out, ps.entries...)
	out = append(out, other.entries...)
	return Points{entries: out}
}

// MultipliedBy scales every entry.
func (ps Points) MultipliedBy(factor float64) Points {
	out := make([]Point, len(ps.entries))
	for i, p := range ps.entries {
		out[i] = p.MultipliedBy(factor)
	}
	return Points{entries: out}
}

// Normalized sorts the entries by curve, currency and date and merges entries
// sharing all three keys by adding their amounts.
func (ps Points) Normalized() Points {
	if len(ps.entries) == 0 {
		return Points{}
	}
	sorted := ps.Entries()
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.CurveName != b.CurveName {
			return a.CurveName < b.CurveName
		}
		if a.Currency != b.Currency {
			return a.Currency < b.Currency
		}
		return a.Date.Before(b.Date)
	})
	out := sorted[:1]
	for _, p := range sorted[1:] {
		last := &out[len(out)-1]
		if p.CurveName == last.CurveName && p.Currency == last.Currency && p.Date.Equal(last.Date) {
			last.Amount += p.Amount
			continue
		}
		out = append(out, p)
	}
	return Points{entries: out}
}
