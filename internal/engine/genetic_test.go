package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glasscut/internal/model"
)

func newTestRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func geneticTestSettings() model.Settings {
	s := defaultTestSettings()
	s.Algorithm = model.AlgorithmGenetic
	return s
}

func TestGenetic_PlacesEverythingThatFits(t *testing.T) {
	pieces := []model.Piece{
		{ID: 0, Label: "A", Width: 30, Height: 20},
		{ID: 1, Label: "B", Width: 20, Height: 30},
		{ID: 2, Label: "C", Width: 24, Height: 24},
		{ID: 3, Label: "D", Width: 40, Height: 12},
	}

	result := mustPack(t, geneticTestSettings(), pieces)

	assert.Len(t, result.Unplaced, 0)
	assert.Equal(t, 4, result.PlacedCount())
	assertSolutionInvariants(t, geneticTestSettings(), pieces, result)
}

func TestGenetic_Deterministic(t *testing.T) {
	// The search runs from a fixed seed; two runs over the same catalog
	// must produce byte-identical results.
	pieces := []model.Piece{
		{ID: 0, Width: 35, Height: 25},
		{ID: 1, Width: 25, Height: 35},
		{ID: 2, Width: 40, Height: 40},
		{ID: 3, Width: 15, Height: 60},
		{ID: 4, Width: 60, Height: 15},
	}

	first := mustPack(t, geneticTestSettings(), pieces)
	second := mustPack(t, geneticTestSettings(), pieces)

	assert.Equal(t, first, second)
}

func TestGenetic_NoWorseThanGreedyOnSheets(t *testing.T) {
	// The greedy ordering seeds the initial population, so the search can
	// never need more sheets than greedy for the same catalog.
	pieces := []model.Piece{
		{ID: 0, Width: 36, Height: 42},
		{ID: 1, Width: 36, Height: 42},
		{ID: 2, Width: 36, Height: 42},
		{ID: 3, Width: 36, Height: 42},
		{ID: 4, Width: 20, Height: 20},
		{ID: 5, Width: 20, Height: 20},
	}

	greedy := mustPack(t, defaultTestSettings(), pieces)
	genetic := mustPack(t, geneticTestSettings(), pieces)

	assert.LessOrEqual(t, len(genetic.Sheets), len(greedy.Sheets))
	assert.LessOrEqual(t, len(genetic.Unplaced), len(greedy.Unplaced))
}

func TestGenetic_OversizedPieceStaysUnplaced(t *testing.T) {
	pieces := []model.Piece{
		{ID: 0, Width: 24, Height: 24},
		{ID: 1, Width: 200, Height: 200},
	}

	result := mustPack(t, geneticTestSettings(), pieces)

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, 1, result.Unplaced[0].ID)
	assert.Equal(t, 1, result.PlacedCount())
}

func TestGenetic_RotationOffNeverRotates(t *testing.T) {
	s := geneticTestSettings()
	s.AllowRotation = false

	pieces := []model.Piece{
		{ID: 0, Width: 30, Height: 20},
		{ID: 1, Width: 20, Height: 30},
		{ID: 2, Width: 50, Height: 10},
	}

	result := mustPack(t, s, pieces)

	for _, sheet := range result.Sheets {
		for _, p := range sheet.Placements {
			assert.False(t, p.Rotated)
		}
	}
}

func TestOrderCrossover_ProducesValidPermutation(t *testing.T) {
	g := &geneticSearch{
		settings: defaultTestSettings(),
		config:   DefaultGeneticConfig(),
		pieces: []model.Piece{
			{ID: 0, Width: 10, Height: 10},
			{ID: 1, Width: 20, Height: 10},
			{ID: 2, Width: 30, Height: 10},
			{ID: 3, Width: 40, Height: 10},
			{ID: 4, Width: 50, Height: 10},
		},
	}
	g.rng = newTestRng()

	p1 := chromosome{genes: []gene{{pieceIndex: 0}, {pieceIndex: 1}, {pieceIndex: 2}, {pieceIndex: 3}, {pieceIndex: 4}}}
	p2 := chromosome{genes: []gene{{pieceIndex: 4}, {pieceIndex: 3}, {pieceIndex: 2}, {pieceIndex: 1}, {pieceIndex: 0}}}

	for i := 0; i < 50; i++ {
		child := g.orderCrossover(p1, p2)
		require.Len(t, child.genes, 5)
		seen := make(map[int]bool)
		for _, gn := range child.genes {
			assert.False(t, seen[gn.pieceIndex], "piece %d duplicated", gn.pieceIndex)
			seen[gn.pieceIndex] = true
		}
	}
}

func TestMutate_PreservesPermutation(t *testing.T) {
	g := &geneticSearch{
		settings: defaultTestSettings(),
		config:   DefaultGeneticConfig(),
	}
	g.config.MutationRate = 1.0 // force every mutation
	g.rng = newTestRng()

	c := chromosome{genes: []gene{{pieceIndex: 0}, {pieceIndex: 1}, {pieceIndex: 2}, {pieceIndex: 3}}}
	for i := 0; i < 50; i++ {
		g.mutate(&c)
		seen := make(map[int]bool)
		for _, gn := range c.genes {
			seen[gn.pieceIndex] = true
		}
		require.Len(t, seen, 4)
	}
}

func TestGreedyChromosome_MatchesPackingOrder(t *testing.T) {
	g := &geneticSearch{
		settings: defaultTestSettings(),
		pieces: []model.Piece{
			{ID: 0, Width: 10, Height: 10},
			{ID: 1, Width: 50, Height: 50},
			{ID: 2, Width: 30, Height: 30},
		},
	}

	c := g.greedyChromosome()

	require.Len(t, c.genes, 3)
	// Largest first: piece 1, then 2, then 0.
	assert.Equal(t, 1, c.genes[0].pieceIndex)
	assert.Equal(t, 2, c.genes[1].pieceIndex)
	assert.Equal(t, 0, c.genes[2].pieceIndex)
	for _, gn := range c.genes {
		assert.False(t, gn.rotated, "greedy seed carries no rotation preference")
	}
}
