package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glasscut/internal/model"
)

func TestDefaultScenarios_CoversAlternatives(t *testing.T) {
	base := defaultTestSettings()
	base.EdgeTrim = 2

	scenarios := DefaultScenarios(base)

	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}

	assert.Equal(t, "Current settings", names[0])
	assert.Contains(t, names, "Heuristic baf")
	assert.Contains(t, names, "Heuristic bottomleft")
	assert.Contains(t, names, "Genetic algorithm")
	assert.Contains(t, names, "Rotation off")
	assert.Contains(t, names, "No edge trim")
	assert.NotContains(t, names, "Heuristic bssf", "the base heuristic is not repeated")
}

func TestDefaultScenarios_GeneticBaseOffersGreedy(t *testing.T) {
	base := defaultTestSettings()
	base.Algorithm = model.AlgorithmGenetic

	scenarios := DefaultScenarios(base)

	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}
	assert.Contains(t, names, "Greedy algorithm")
	assert.NotContains(t, names, "Genetic algorithm")
}

func TestCompareScenarios_PacksEachVariant(t *testing.T) {
	pieces := []model.Piece{
		{ID: 0, Width: 50, Height: 40},
		{ID: 1, Width: 40, Height: 50},
	}

	scenarios := DefaultScenarios(defaultTestSettings())
	results, err := CompareScenarios(scenarios, pieces)

	require.NoError(t, err)
	require.Len(t, results, len(scenarios))
	for _, r := range results {
		assert.Equal(t, 2, r.PiecesPlaced+r.UnplacedCount, "%s must account for both pieces", r.Scenario.Name)
		if r.SheetsUsed > 0 {
			assert.Greater(t, r.WastePct, 0.0)
			assert.Less(t, r.WastePct, 100.0)
		}
	}
}

func TestCompareScenarios_PropagatesErrors(t *testing.T) {
	bad := defaultTestSettings()
	bad.MaxSheets = 0

	_, err := CompareScenarios([]Scenario{{Name: "bad", Settings: bad}}, []model.Piece{{ID: 0, Width: 1, Height: 1}})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}
