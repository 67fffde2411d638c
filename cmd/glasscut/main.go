// GlassCut is a glass sheet cutting optimizer.
//
// Packs a rectangular cut list onto stock sheets with a maximal-rectangles
// heuristic, reports utilization and waste, and exports the layout as
// XLSX, PDF, PNG, DXF or QR piece labels.
//
// Build:
//
//	go build -o glasscut ./cmd/glasscut
package main

import "glasscut/cmd/glasscut/commands"

func main() {
	commands.Execute()
}
