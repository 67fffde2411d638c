package model

import "fmt"

// Heuristic selects the placement scoring rule used by the engine.
type Heuristic string

const (
	// HeuristicBestShortSideFit prefers the free rectangle leaving the
	// smallest leftover on the piece's shorter unused dimension.
	HeuristicBestShortSideFit Heuristic = "bssf"
	// HeuristicBestAreaFit prefers the free rectangle wasting the least area.
	HeuristicBestAreaFit Heuristic = "baf"
	// HeuristicBottomLeft fills rows left-to-right, top-to-bottom, the way
	// a simple shelf packer does.
	HeuristicBottomLeft Heuristic = "bottomleft"
)

// ParseHeuristic maps a user-supplied name to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch Heuristic(s) {
	case HeuristicBestShortSideFit, HeuristicBestAreaFit, HeuristicBottomLeft:
		return Heuristic(s), nil
	case "":
		return HeuristicBestShortSideFit, nil
	default:
		return "", fmt.Errorf("unknown heuristic %q (want bssf, baf or bottomleft)", s)
	}
}

// Algorithm selects how the engine searches for a packing.
type Algorithm string

const (
	// AlgorithmGreedy packs pieces once, largest first, with the configured
	// heuristic. Fast and fully deterministic.
	AlgorithmGreedy Algorithm = "greedy"
	// AlgorithmGenetic searches over piece orderings and rotation flags
	// with a fixed-seed genetic algorithm. Slower, often tighter.
	AlgorithmGenetic Algorithm = "genetic"
)

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmGreedy, AlgorithmGenetic:
		return Algorithm(s), nil
	case "":
		return AlgorithmGreedy, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want greedy or genetic)", s)
	}
}

// Settings holds the engine configuration for one packing run.
type Settings struct {
	SheetWidth  float64 `json:"sheet_width"`
	SheetHeight float64 `json:"sheet_height"`

	// AllowRotation permits swapping a piece's width and height.
	AllowRotation bool `json:"allow_rotation"`

	// MaxSheets caps how many sheets a run may open. Pieces left over once
	// the cap is reached are reported as unplaced.
	MaxSheets int `json:"max_sheets"`

	Heuristic Heuristic `json:"heuristic"`
	Algorithm Algorithm `json:"algorithm"`

	// KerfWidth is the cut allowance added on the far sides of every
	// placement, in sheet units.
	KerfWidth float64 `json:"kerf_width"`

	// EdgeTrim is the unusable margin around the sheet edge.
	EdgeTrim float64 `json:"edge_trim"`

	// Precision is the number of decimal places kept when dimensions are
	// converted to the fixed-point domain the geometry runs in.
	Precision int `json:"precision"`
}

// DefaultSettings returns the stock configuration: a 72x84 glass sheet,
// rotation allowed, best-short-side-fit scoring.
func DefaultSettings() Settings {
	return Settings{
		SheetWidth:    72,
		SheetHeight:   84,
		AllowRotation: true,
		MaxSheets:     100,
		Heuristic:     HeuristicBestShortSideFit,
		Algorithm:     AlgorithmGreedy,
		KerfWidth:     0,
		EdgeTrim:      0,
		Precision:     2,
	}
}
