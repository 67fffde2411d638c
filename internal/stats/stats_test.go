package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glasscut/internal/model"
)

func TestSummarize_PerSheetAndOverall(t *testing.T) {
	result := model.PackResult{
		Sheets: []model.Sheet{
			{
				Index: 0, Width: 100, Height: 100,
				Placements: []model.Placement{
					{Width: 50, Height: 50},
					{Width: 50, Height: 50},
				},
			},
			{
				Index: 1, Width: 100, Height: 100,
				Placements: []model.Placement{
					{Width: 100, Height: 25},
				},
			},
		},
		Unplaced: []model.Piece{{ID: 7}, {ID: 8}},
	}

	s := Summarize(result)

	assert.Equal(t, 2, s.SheetsUsed)
	assert.Equal(t, 3, s.PiecesPlaced)
	assert.Equal(t, 2, s.PiecesUnplaced)
	assert.Equal(t, 7500.0, s.UsedArea)
	assert.Equal(t, 20000.0, s.TotalArea)
	assert.InDelta(t, 37.5, s.UtilizationPct, 1e-9)
	assert.InDelta(t, 62.5, s.WastePct, 1e-9)

	require.Len(t, s.Sheets, 2)
	assert.Equal(t, 2, s.Sheets[0].PiecesPacked)
	assert.InDelta(t, 50.0, s.Sheets[0].UtilizationPct, 1e-9)
	assert.InDelta(t, 25.0, s.Sheets[1].UtilizationPct, 1e-9)
	assert.InDelta(t, 75.0, s.Sheets[1].WastePct, 1e-9)
}

func TestSummarize_EmptyResult(t *testing.T) {
	s := Summarize(model.PackResult{})

	assert.Equal(t, 0, s.SheetsUsed)
	assert.Equal(t, 0, s.PiecesPlaced)
	assert.Equal(t, 0.0, s.UtilizationPct)
	assert.Equal(t, 0.0, s.WastePct)
	assert.Empty(t, s.Sheets)
}

func TestSummarize_UnplacedOnly(t *testing.T) {
	s := Summarize(model.PackResult{Unplaced: []model.Piece{{ID: 0}}})

	assert.Equal(t, 1, s.PiecesUnplaced)
	assert.Equal(t, 0.0, s.UtilizationPct, "no sheets means no utilization figure")
}
