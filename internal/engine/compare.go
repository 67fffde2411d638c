package engine

import (
	"glasscut/internal/model"
)

// Scenario is a named settings variant to pack the same catalog under.
type Scenario struct {
	Name     string
	Settings model.Settings
}

// ScenarioResult holds one scenario's packing and its headline numbers.
type ScenarioResult struct {
	Scenario      Scenario
	Result        model.PackResult
	SheetsUsed    int
	PiecesPlaced  int
	UnplacedCount int
	WastePct      float64
}

// CompareScenarios packs the same piece catalog under each scenario so
// alternatives (other heuristics, the genetic search, no edge trim) can be
// weighed side by side.
func CompareScenarios(scenarios []Scenario, pieces []model.Piece) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		result, err := New(sc.Settings).Pack(pieces)
		if err != nil {
			return nil, err
		}

		waste := 0.0
		if len(result.Sheets) > 0 {
			waste = 100.0 - result.TotalUtilization()
		}
		results = append(results, ScenarioResult{
			Scenario:      sc,
			Result:        result,
			SheetsUsed:    len(result.Sheets),
			PiecesPlaced:  result.PlacedCount(),
			UnplacedCount: len(result.Unplaced),
			WastePct:      waste,
		})
	}
	return results, nil
}

// DefaultScenarios builds what-if variants around the base settings: every
// other heuristic, the other algorithm, rotation off, and no edge trim
// when the base has one.
func DefaultScenarios(base model.Settings) []Scenario {
	scenarios := []Scenario{{Name: "Current settings", Settings: base}}

	for _, h := range []model.Heuristic{
		model.HeuristicBestShortSideFit,
		model.HeuristicBestAreaFit,
		model.HeuristicBottomLeft,
	} {
		if h == base.Heuristic {
			continue
		}
		alt := base
		alt.Heuristic = h
		scenarios = append(scenarios, Scenario{Name: "Heuristic " + string(h), Settings: alt})
	}

	altAlgo := base
	if base.Algorithm == model.AlgorithmGenetic {
		altAlgo.Algorithm = model.AlgorithmGreedy
		scenarios = append(scenarios, Scenario{Name: "Greedy algorithm", Settings: altAlgo})
	} else {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, Scenario{Name: "Genetic algorithm", Settings: altAlgo})
	}

	if base.AllowRotation {
		noRot := base
		noRot.AllowRotation = false
		scenarios = append(scenarios, Scenario{Name: "Rotation off", Settings: noRot})
	}

	if base.EdgeTrim > 0 {
		noTrim := base
		noTrim.EdgeTrim = 0
		scenarios = append(scenarios, Scenario{Name: "No edge trim", Settings: noTrim})
	}

	return scenarios
}
