package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"glasscut/internal/model"
)

// sheetGapFactor spaces sheets apart in the drawing, as a fraction of the
// sheet width.
const sheetGapFactor = 0.125

// ExportDXF writes the placements as a DXF drawing for handoff to a
// cutting table. Sheets are laid out side by side: sheet outlines on the
// SHEETS layer, placements on PIECES, usable remnants on OFFCUTS.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("SHEETS", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add SHEETS layer: %w", err)
	}
	if _, err := d.AddLayer("PIECES", color.Cyan, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("add PIECES layer: %w", err)
	}
	if _, err := d.AddLayer("OFFCUTS", color.Green, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("add OFFCUTS layer: %w", err)
	}

	offsetX := 0.0
	for _, sheet := range result.Sheets {
		if err := d.ChangeLayer("SHEETS"); err != nil {
			return err
		}
		if err := drawRect(d, offsetX, 0, sheet.Width, sheet.Height); err != nil {
			return err
		}

		if err := d.ChangeLayer("PIECES"); err != nil {
			return err
		}
		for _, p := range sheet.Placements {
			if err := drawRect(d, offsetX+p.X, p.Y, p.Width, p.Height); err != nil {
				return err
			}
		}

		if err := d.ChangeLayer("OFFCUTS"); err != nil {
			return err
		}
		for _, o := range sheet.Offcuts {
			if err := drawRect(d, offsetX+o.X, o.Y, o.Width, o.Height); err != nil {
				return err
			}
		}

		offsetX += sheet.Width * (1 + sheetGapFactor)
	}

	return d.SaveAs(path)
}

// drawRect emits a closed lightweight polyline for one rectangle.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	_, err := d.LwPolyline(true,
		[]float64{x, y},
		[]float64{x + w, y},
		[]float64{x + w, y + h},
		[]float64{x, y + h},
	)
	return err
}
