package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a usable rectangular remnant left on a sheet after packing.
// Offcuts are taken from the engine's final free-rectangle set, so two
// offcuts on the same sheet may overlap; each one is independently cuttable.
type Offcut struct {
	ID         string  `json:"id"`
	SheetIndex int     `json:"sheet_index"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Area returns the offcut area.
func (o Offcut) Area() float64 {
	return o.Width * o.Height
}

// MinOffcutDimension is the minimum width or height, in sheet units, for a
// remnant to be worth keeping. Smaller remnants are waste.
const MinOffcutDimension = 6.0

// MinOffcutArea is the minimum area for a remnant to be worth keeping.
const MinOffcutArea = 144.0

// NewOffcut creates an offcut with a fresh short ID.
func NewOffcut(sheetIndex int, x, y, w, h float64) Offcut {
	return Offcut{
		ID:         uuid.New().String()[:8],
		SheetIndex: sheetIndex,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
	}
}

// UsableOffcut reports whether a remnant of the given size is worth keeping.
func UsableOffcut(w, h float64) bool {
	return w >= MinOffcutDimension && h >= MinOffcutDimension && w*h >= MinOffcutArea
}

// SortOffcuts orders offcuts largest-area first, position as tiebreak, so
// reports list the most valuable remnants at the top.
func SortOffcuts(offcuts []Offcut) {
	sort.SliceStable(offcuts, func(i, j int) bool {
		ai, aj := offcuts[i].Area(), offcuts[j].Area()
		if ai != aj {
			return ai > aj
		}
		if offcuts[i].Y != offcuts[j].Y {
			return offcuts[i].Y < offcuts[j].Y
		}
		return offcuts[i].X < offcuts[j].X
	})
}
