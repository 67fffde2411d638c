// Package model holds the domain types shared by the packing engine and
// its collaborators: cut list entries, expanded pieces, placements, and
// the packing result.
package model

// CutItem is one line of a cut list before quantity expansion.
type CutItem struct {
	Label    string  `json:"label"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

// Area returns the area of a single unit of this item.
func (c CutItem) Area() float64 {
	return c.Width * c.Height
}

// Piece is one individual unit of demand. A cut list line with quantity 3
// expands into three pieces. IDs are assigned in input order starting at 0
// and identify the piece in placements and the unplaced set.
type Piece struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxSide returns the longer of the piece's two dimensions.
func (p Piece) MaxSide() float64 {
	if p.Width > p.Height {
		return p.Width
	}
	return p.Height
}

// Area returns the piece area.
func (p Piece) Area() float64 {
	return p.Width * p.Height
}

// ExpandCutList turns a cut list into the piece catalog the engine
// consumes, expanding quantities and assigning sequential IDs. Items with
// quantity below 1 expand to a single piece.
func ExpandCutList(items []CutItem) []Piece {
	var pieces []Piece
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			pieces = append(pieces, Piece{
				ID:     len(pieces),
				Label:  it.Label,
				Width:  it.Width,
				Height: it.Height,
			})
		}
	}
	return pieces
}

// Placement fixes one piece on a sheet. Width and Height are the placed
// dimensions: the piece's own pair, swapped when Rotated is true.
type Placement struct {
	PieceID int     `json:"piece_id"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotated bool    `json:"rotated"`
}

// Sheet is one opened stock sheet with its placements. Placements grow
// during a run and are frozen once packing completes.
type Sheet struct {
	Index      int         `json:"index"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Placements []Placement `json:"placements"`
	Offcuts    []Offcut    `json:"offcuts,omitempty"`
}

// UsedArea returns the total area covered by placements on this sheet.
func (s Sheet) UsedArea() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.Width * p.Height
	}
	return total
}

// TotalArea returns the sheet area.
func (s Sheet) TotalArea() float64 {
	return s.Width * s.Height
}

// Utilization returns the used percentage of the sheet area.
func (s Sheet) Utilization() float64 {
	ta := s.TotalArea()
	if ta == 0 {
		return 0
	}
	return (s.UsedArea() / ta) * 100.0
}

// PackResult is the full solution for one run. Every input piece appears
// in exactly one sheet's placements or in Unplaced, never both.
type PackResult struct {
	Sheets   []Sheet `json:"sheets"`
	Unplaced []Piece `json:"unplaced,omitempty"`
}

// PlacedCount returns the number of placements across all sheets.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, s := range r.Sheets {
		n += len(s.Placements)
	}
	return n
}

// TotalUtilization returns the overall used percentage across all sheets,
// zero when no sheet was opened.
func (r PackResult) TotalUtilization() float64 {
	var used, total float64
	for _, s := range r.Sheets {
		used += s.UsedArea()
		total += s.TotalArea()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}
