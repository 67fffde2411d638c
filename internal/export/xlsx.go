package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"glasscut/internal/model"
	"glasscut/internal/stats"
)

// Worksheet names in the exported workbook.
const (
	summarySheetName    = "Summary"
	placementsSheetName = "Placements"
	unplacedSheetName   = "Unplaced"
)

// ExportXLSX writes the packing statistics to an Excel workbook: a
// Summary worksheet with one row per sheet plus the overall line, a
// Placements worksheet with every placed piece, and an Unplaced worksheet
// when pieces were left over.
func ExportXLSX(path string, result model.PackResult) error {
	summary := stats.Summarize(result)

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), summarySheetName)

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummarySheet(f, header, summary); err != nil {
		return err
	}
	if err := writePlacementsSheet(f, header, result); err != nil {
		return err
	}
	if len(result.Unplaced) > 0 {
		if err := writeUnplacedSheet(f, header, result.Unplaced); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, headerStyle int, summary stats.Summary) error {
	head := []interface{}{"Sheet", "Pieces Packed", "Used Area", "Total Area", "Utilization %", "Waste %"}
	if err := f.SetSheetRow(summarySheetName, "A1", &head); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheetName, "A1", "F1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, s := range summary.Sheets {
		values := []interface{}{
			s.SheetIndex + 1,
			s.PiecesPacked,
			s.UsedArea,
			s.TotalArea,
			s.UtilizationPct,
			s.WastePct,
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(summarySheetName, cell, &values); err != nil {
			return err
		}
		row++
	}

	overall := []interface{}{
		"Overall",
		summary.PiecesPlaced,
		summary.UsedArea,
		summary.TotalArea,
		summary.UtilizationPct,
		summary.WastePct,
	}
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(summarySheetName, cell, &overall); err != nil {
		return err
	}
	return f.SetCellStyle(summarySheetName, cell, fmt.Sprintf("F%d", row), headerStyle)
}

func writePlacementsSheet(f *excelize.File, headerStyle int, result model.PackResult) error {
	if _, err := f.NewSheet(placementsSheetName); err != nil {
		return err
	}

	head := []interface{}{"Sheet", "Piece ID", "Label", "X", "Y", "Width", "Height", "Rotated"}
	if err := f.SetSheetRow(placementsSheetName, "A1", &head); err != nil {
		return err
	}
	if err := f.SetCellStyle(placementsSheetName, "A1", "H1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, sheet := range result.Sheets {
		for _, p := range sheet.Placements {
			values := []interface{}{
				sheet.Index + 1, p.PieceID, p.Label, p.X, p.Y, p.Width, p.Height, p.Rotated,
			}
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(placementsSheetName, cell, &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeUnplacedSheet(f *excelize.File, headerStyle int, unplaced []model.Piece) error {
	if _, err := f.NewSheet(unplacedSheetName); err != nil {
		return err
	}

	head := []interface{}{"Piece ID", "Label", "Width", "Height"}
	if err := f.SetSheetRow(unplacedSheetName, "A1", &head); err != nil {
		return err
	}
	if err := f.SetCellStyle(unplacedSheetName, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, piece := range unplaced {
		values := []interface{}{piece.ID, piece.Label, piece.Width, piece.Height}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(unplacedSheetName, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
