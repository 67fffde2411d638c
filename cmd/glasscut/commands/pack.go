package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glasscut/internal/engine"
	"glasscut/internal/export"
	"glasscut/internal/importer"
	"glasscut/internal/model"
	"glasscut/internal/project"
	"glasscut/internal/render"
	"glasscut/internal/stats"
)

var (
	xlsxOut   string
	pdfOut    string
	pngDir    string
	dxfOut    string
	labelsOut string
	saveOut   string
)

var packCmd = &cobra.Command{
	Use:   "pack <cutlist file>",
	Short: "Pack a cut list onto stock sheets",
	Long: `Reads a cut list from a CSV, TXT or Excel file, packs it onto stock
sheets and prints a per-sheet report. Optional flags write XLSX, PDF, DXF,
PNG and label exports of the layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	f := packCmd.Flags()
	f.StringVar(&xlsxOut, "xlsx", "", "write an XLSX report to this path")
	f.StringVar(&pdfOut, "pdf", "", "write a PDF layout to this path")
	f.StringVar(&pngDir, "png-dir", "", "write per-sheet PNG images into this directory")
	f.StringVar(&dxfOut, "dxf", "", "write a DXF drawing to this path")
	f.StringVar(&labelsOut, "labels", "", "write a printable label sheet PDF to this path")
	f.StringVar(&saveOut, "save", "", "save the project (cut list, settings, result) to this path")
}

func runPack(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromConfig()
	if err != nil {
		return err
	}

	imported := importer.Import(args[0])
	for _, w := range imported.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range imported.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(imported.Items) == 0 {
		return fmt.Errorf("no usable rows in %s", args[0])
	}

	pieces := model.ExpandCutList(imported.Items)
	result, err := engine.New(settings).Pack(pieces)
	if err != nil {
		return err
	}

	printReport(os.Stdout, result)

	if err := writeExports(args[0], imported.Items, settings, result); err != nil {
		return err
	}
	return nil
}

func printReport(w io.Writer, result model.PackResult) {
	summary := stats.Summarize(result)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s %-8s %12s %12s %10s\n", "Sheet", "Pieces", "Used", "Total", "Util %")
	for _, s := range summary.Sheets {
		fmt.Fprintf(w, "%-8d %-8d %12.2f %12.2f %9.1f%%\n",
			s.SheetIndex+1, s.PiecesPacked, s.UsedArea, s.TotalArea, s.UtilizationPct)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sheets used:      %d\n", summary.SheetsUsed)
	fmt.Fprintf(w, "Pieces placed:    %d\n", summary.PiecesPlaced)
	fmt.Fprintf(w, "Pieces unplaced:  %d\n", summary.PiecesUnplaced)
	if summary.SheetsUsed > 0 {
		fmt.Fprintf(w, "Utilization:      %.1f%%\n", summary.UtilizationPct)
		fmt.Fprintf(w, "Waste:            %.1f%%\n", summary.WastePct)
	}

	if len(result.Unplaced) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Unplaced pieces:")
		for _, p := range result.Unplaced {
			fmt.Fprintf(w, "  %d (%s) %.2f x %.2f\n", p.ID, p.Label, p.Width, p.Height)
		}
	}
}

func writeExports(source string, items []model.CutItem, settings model.Settings, result model.PackResult) error {
	if xlsxOut != "" {
		if err := export.ExportXLSX(xlsxOut, result); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
		fmt.Printf("Wrote %s\n", xlsxOut)
	}
	if pdfOut != "" {
		if err := export.ExportPDF(pdfOut, result); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		fmt.Printf("Wrote %s\n", pdfOut)
	}
	if dxfOut != "" {
		if err := export.ExportDXF(dxfOut, result); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
		fmt.Printf("Wrote %s\n", dxfOut)
	}
	if labelsOut != "" {
		if err := export.ExportLabels(labelsOut, result); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		fmt.Printf("Wrote %s\n", labelsOut)
	}
	if pngDir != "" {
		paths, err := render.RenderAll(pngDir, result, render.DefaultOptions())
		if err != nil {
			return fmt.Errorf("png render: %w", err)
		}
		for _, p := range paths {
			fmt.Printf("Wrote %s\n", p)
		}
	}
	if saveOut != "" {
		proj := project.New(source)
		proj.Items = items
		proj.Settings = settings
		proj.Result = &result
		if err := project.Save(saveOut, proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		fmt.Printf("Saved %s\n", saveOut)
	}
	return nil
}
