// Package export writes packing results to spreadsheet, PDF, DXF and
// label artifacts.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"glasscut/internal/model"
	"glasscut/internal/stats"
)

// pieceColor is an RGB fill for a placed piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors is the palette the PNG renderer uses as well.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the packing result as a PDF: one page per sheet with
// a scaled layout diagram, then a summary page.
func ExportPDF(path string, result model.PackResult) error {
	if len(result.Sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, sheet := range result.Sheets {
		pdf.AddPage()
		renderSheetPage(pdf, sheet)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderSheetPage draws a single sheet layout on the current page.
func renderSheetPage(pdf *fpdf.Fpdf, sheet model.Sheet) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet %d (%g x %g)", sheet.Index+1, sheet.Width, sheet.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	line := fmt.Sprintf("Pieces: %d | Used area: %.1f | Total area: %.1f | Utilization: %.1f%%",
		len(sheet.Placements), sheet.UsedArea(), sheet.TotalArea(), sheet.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/sheet.Width, drawHeight/sheet.Height)
	canvasW := sheet.Width * scale
	canvasH := sheet.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background.
	pdf.SetFillColor(226, 236, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	drawOffcuts(pdf, sheet, scale, offsetX, offsetY)

	for i, p := range sheet.Placements {
		col := pieceColors[i%len(pieceColors)]
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Label
			dims := fmt.Sprintf("%gx%g", p.Width, p.Height)
			if p.Rotated {
				dims += " R"
			}

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, sheet, scale, offsetX, offsetY, canvasW, canvasH)
}

// labelFontSize scales the in-piece label with the rectangle size.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w, h) / 4
	if size < 5 {
		return 5
	}
	if size > 9 {
		return 9
	}
	return size
}

// drawOffcuts hatches the usable remnants so the shop can mark them for
// return to stock.
func drawOffcuts(pdf *fpdf.Fpdf, sheet model.Sheet, scale, offsetX, offsetY float64) {
	for _, o := range sheet.Offcuts {
		ox := offsetX + o.X*scale
		oy := offsetY + o.Y*scale
		ow := o.Width * scale
		oh := o.Height * scale

		pdf.SetDrawColor(120, 160, 120)
		pdf.SetLineWidth(0.15)
		drawHatchPattern(pdf, ox, oy, ow, oh)
	}
}

// drawHatchPattern draws diagonal lines inside a rectangle.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds the sheet size outside the rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, sheet model.Sheet, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%g", sheet.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%g", sheet.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the overall statistics and per-sheet table.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult) {
	summary := stats.Summarize(result)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cut Optimization Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	items := []struct {
		label string
		value string
	}{
		{"Sheets used", fmt.Sprintf("%d", summary.SheetsUsed)},
		{"Overall utilization", fmt.Sprintf("%.1f%%", summary.UtilizationPct)},
		{"Pieces placed", fmt.Sprintf("%d", summary.PiecesPlaced)},
		{"Pieces unplaced", fmt.Sprintf("%d", summary.PiecesUnplaced)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	colWidths := []float64{25, 40, 30, 45, 45, 40}
	headers := []string{"Sheet", "Dimensions", "Pieces", "Used area", "Total area", "Utilization"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range summary.Sheets {
		xPos = marginLeft
		cells := []string{
			fmt.Sprintf("%d", row.SheetIndex+1),
			fmt.Sprintf("%g x %g", result.Sheets[i].Width, result.Sheets[i].Height),
			fmt.Sprintf("%d", row.PiecesPacked),
			fmt.Sprintf("%.1f", row.UsedArea),
			fmt.Sprintf("%.1f", row.TotalArea),
			fmt.Sprintf("%.1f%%", row.UtilizationPct),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range cells {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced pieces", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, piece := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %g x %g", piece.Label, piece.Width, piece.Height)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}
}
