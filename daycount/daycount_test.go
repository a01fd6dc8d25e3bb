package daycount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	start := date(2015, time.January, 28)

	tests := []struct {
		name     string
		dc       DayCount
		start    time.Time
		end      time.Time
		expected float64
	}{
		{"act365f_half_year", Act365F, start, date(2015, time.July, 29), 182.0 / 365.0},
		{"act365f_zero", Act365F, start, start, 0},
		{"act360_one_month", Act360, date(2015, time.February, 2), date(2015, time.March, 2), 28.0 / 360.0},
		{"thirty360_six_months", Thirty360, date(2015, time.February, 2), date(2015, time.August, 2), 0.5},
		{"thirty360_eom", Thirty360, date(2015, time.January, 31), date(2015, time.July, 31), 0.5},
		{"act365f_negative", Act365F, date(2015, time.July, 29), start, -182.0 / 365.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.dc.YearFraction(tt.start, tt.end), 1e-14)
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Act365F.Valid())
	assert.True(t, Act360.Valid())
	assert.True(t, Thirty360.Valid())
	assert.False(t, DayCount("ACT/ACT").Valid())
}
