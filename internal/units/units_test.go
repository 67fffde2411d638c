package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUnitsRoundsToNearest(t *testing.T) {
	s := NewScale(2)

	assert.Equal(t, Unit(2400), s.ToUnits(24.0))
	assert.Equal(t, Unit(2401), s.ToUnits(24.006))
	assert.Equal(t, Unit(2400), s.ToUnits(24.004))
}

func TestFromUnitsRoundTrip(t *testing.T) {
	s := NewScale(3)

	for _, v := range []float64{0, 1, 24.125, 84, 1219.2} {
		assert.InDelta(t, v, s.FromUnits(s.ToUnits(v)), 0.0005)
	}
}

func TestZeroPrecisionRoundsToWhole(t *testing.T) {
	s := NewScale(0)

	assert.Equal(t, Unit(24), s.ToUnits(24.4))
	assert.Equal(t, Unit(25), s.ToUnits(24.6))
}

func TestNegativePrecisionClampsToZero(t *testing.T) {
	s := NewScale(-3)

	assert.Equal(t, Unit(72), s.ToUnits(72.0))
}

func TestPrecisionClampsToMax(t *testing.T) {
	s := NewScale(12)

	assert.Equal(t, 1.5, s.FromUnits(s.ToUnits(1.5)))
}
