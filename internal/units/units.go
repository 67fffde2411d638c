// Package units converts real-valued sheet dimensions into a fixed-point
// integer domain so that all packing geometry compares exactly, without
// floating-point drift. Dimensions are scaled once on the way into the
// engine and converted back only at the output boundary.
package units

import "math"

// Unit is a dimension in fixed-point integer units.
type Unit int64

// Scale holds the conversion factor for a chosen number of decimal places.
type Scale struct {
	factor float64
}

// MaxPrecision bounds the decimal places a Scale accepts. Beyond 6 places
// the int64 domain starts to overflow on realistic sheet areas.
const MaxPrecision = 6

// NewScale returns a Scale keeping the given number of decimal places.
// Negative precision is treated as zero.
func NewScale(precision int) Scale {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return Scale{factor: math.Pow(10, float64(precision))}
}

// ToUnits converts a real dimension into fixed-point units, rounding to
// the nearest unit.
func (s Scale) ToUnits(v float64) Unit {
	return Unit(math.Round(v * s.factor))
}

// FromUnits converts fixed-point units back to a real dimension.
func (s Scale) FromUnits(u Unit) float64 {
	return float64(u) / s.factor
}
