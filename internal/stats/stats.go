// Package stats derives per-sheet and overall utilization figures from a
// packing result. Everything here is computed on demand, never stored.
package stats

import "glasscut/internal/model"

// SheetStats is one summary row for a packed sheet.
type SheetStats struct {
	SheetIndex     int
	PiecesPacked   int
	UsedArea       float64
	TotalArea      float64
	UtilizationPct float64
	WastePct       float64
}

// Summary aggregates a whole packing run.
type Summary struct {
	Sheets         []SheetStats
	SheetsUsed     int
	PiecesPlaced   int
	PiecesUnplaced int
	UsedArea       float64
	TotalArea      float64
	UtilizationPct float64
	WastePct       float64
}

// Summarize computes the summary for a result. With zero sheets every
// figure is zero; there is no division by zero on an empty catalog.
func Summarize(result model.PackResult) Summary {
	s := Summary{
		SheetsUsed:     len(result.Sheets),
		PiecesUnplaced: len(result.Unplaced),
	}

	for _, sheet := range result.Sheets {
		used := sheet.UsedArea()
		total := sheet.TotalArea()
		row := SheetStats{
			SheetIndex:   sheet.Index,
			PiecesPacked: len(sheet.Placements),
			UsedArea:     used,
			TotalArea:    total,
		}
		if total > 0 {
			row.UtilizationPct = used / total * 100.0
			row.WastePct = 100.0 - row.UtilizationPct
		}
		s.Sheets = append(s.Sheets, row)
		s.PiecesPlaced += len(sheet.Placements)
		s.UsedArea += used
		s.TotalArea += total
	}

	if s.TotalArea > 0 {
		s.UtilizationPct = s.UsedArea / s.TotalArea * 100.0
		s.WastePct = 100.0 - s.UtilizationPct
	}
	return s
}
