package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlus(t *testing.T) {
	t.Parallel()

	a := NewAmount(USD, 100)
	b := NewAmount(USD, -30)
	assert.Equal(t, NewAmount(USD, 70), a.Plus(b))

	assert.Panics(t, func() {
		a.Plus(NewAmount(EUR, 1))
	})
}

func TestMultipliedBy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewAmount(GBP, 25), NewAmount(GBP, 10).MultipliedBy(2.5))
}

func TestConverted(t *testing.T) {
	t.Parallel()

	a := NewAmount(EUR, 100)
	assert.Equal(t, NewAmount(USD, 108), a.Converted(USD, 1.08))
	// same currency ignores the rate
	assert.Equal(t, a, a.Converted(EUR, 2.0))
}
