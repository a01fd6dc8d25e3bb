// Package daycount provides the day-count conventions used to turn a pair of
// dates into a year fraction on a curve's time axis.
package daycount

import "time"

// DayCount identifies a day-count convention by its market name.
type DayCount string

const (
	// Act365F divides the actual day count by a fixed 365-day year. This is
	// the standard convention for discount-curve time axes (QuantLib and
	// Bloomberg both interpolate on ACT/365F regardless of currency).
	Act365F DayCount = "ACT/365F"

	// Act360 divides the actual day count by 360. Common for money-market
	// legs (EUR OIS fixed legs, USD LIBOR).
	Act360 DayCount = "ACT/360"

	// Thirty360 is the US bond-basis 30/360 convention.
	Thirty360 DayCount = "30/360"
)

const hoursPerDay = 24

// YearFraction returns the fraction of a year between start and end under the
// convention. A negative fraction is returned when end precedes start; callers
// decide whether that is meaningful for them.
func (dc DayCount) YearFraction(start, end time.Time) float64 {
	switch dc {
	case Act360:
		return actualDays(start, end) / 360.0
	case Thirty360:
		return thirty360(start, end)
	default:
		// ACT/365F is the curve-axis default.
		return actualDays(start, end) / 365.0
	}
}

// Valid reports whether dc names a supported convention.
func (dc DayCount) Valid() bool {
	switch dc {
	case Act365F, Act360, Thirty360:
		return true
	}
	return false
}

func actualDays(start, end time.Time) float64 {
	return end.Sub(start).Hours() / hoursPerDay
}

func thirty360(start, end time.Time) float64 {
	d1 := start.Day()
	d2 := end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	days := 360*(end.Year()-start.Year()) + 30*(int(end.Month())-int(start.Month())) + (d2 - d1)
	return float64(days) / 360.0
}
