package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glasscut/internal/model"
	"glasscut/internal/units"
)

func TestChooseBest_ShortSideFitPicksTightestRect(t *testing.T) {
	free := []urect{
		{x: 0, y: 0, w: 100, h: 100}, // leftover short side 50
		{x: 0, y: 100, w: 55, h: 60}, // leftover short side 5
	}

	cand, ok := chooseBest(model.HeuristicBestShortSideFit, free, 50, 50, 0, false)

	require.True(t, ok)
	assert.Equal(t, free[1].x, cand.x)
	assert.Equal(t, free[1].y, cand.y)
}

func TestChooseBest_ShortSideTieFallsToLongSide(t *testing.T) {
	free := []urect{
		{x: 0, y: 0, w: 55, h: 90},  // short 5, long 40
		{x: 0, y: 90, w: 55, h: 70}, // short 5, long 20
	}

	cand, ok := chooseBest(model.HeuristicBestShortSideFit, free, 50, 50, 0, false)

	require.True(t, ok)
	assert.Equal(t, free[1].y, cand.y, "equal short sides resolve on the long side")
}

func TestChooseBest_FullTiePrefersLowestYThenX(t *testing.T) {
	free := []urect{
		{x: 30, y: 10, w: 60, h: 60},
		{x: 10, y: 10, w: 60, h: 60},
		{x: 0, y: 50, w: 60, h: 60},
	}

	cand, ok := chooseBest(model.HeuristicBestShortSideFit, free, 50, 50, 0, false)

	require.True(t, ok)
	assert.Equal(t, free[1].x, cand.x)
	assert.Equal(t, free[1].y, cand.y)
}

func TestChooseBest_RotationOnlyFit(t *testing.T) {
	free := []urect{{x: 0, y: 0, w: 40, h: 80}}

	_, ok := chooseBest(model.HeuristicBestShortSideFit, free, 60, 30, 0, false)
	assert.False(t, ok, "piece does not fit unrotated")

	cand, ok := chooseBest(model.HeuristicBestShortSideFit, free, 60, 30, 0, true)
	require.True(t, ok)
	assert.True(t, cand.rotated)
	assert.Equal(t, units.Unit(30), cand.w)
	assert.Equal(t, units.Unit(60), cand.h)
}

func TestChooseBest_KerfRejectsTightFit(t *testing.T) {
	free := []urect{{x: 0, y: 0, w: 50, h: 50}}

	_, ok := chooseBest(model.HeuristicBestShortSideFit, free, 50, 50, 2, false)
	assert.False(t, ok, "piece plus kerf exceeds the free rect")

	_, ok = chooseBest(model.HeuristicBestShortSideFit, free, 48, 48, 2, false)
	assert.True(t, ok)
}

func TestChooseBest_NoFit(t *testing.T) {
	free := []urect{{x: 0, y: 0, w: 10, h: 10}}
	_, ok := chooseBest(model.HeuristicBestShortSideFit, free, 20, 20, 0, true)
	assert.False(t, ok)
}

func TestChooseBest_BestAreaFitPicksSmallestRect(t *testing.T) {
	free := []urect{
		{x: 0, y: 0, w: 100, h: 100},
		{x: 0, y: 100, w: 60, h: 55},
	}

	cand, ok := chooseBest(model.HeuristicBestAreaFit, free, 50, 50, 0, false)

	require.True(t, ok)
	assert.Equal(t, free[1].y, cand.y, "best area fit takes the smallest admissible rect")
}

func TestChooseBest_BottomLeftMinimizesTopEdge(t *testing.T) {
	free := []urect{
		{x: 0, y: 40, w: 60, h: 60},
		{x: 50, y: 0, w: 60, h: 60},
	}

	cand, ok := chooseBest(model.HeuristicBottomLeft, free, 50, 50, 0, false)

	require.True(t, ok)
	assert.Equal(t, free[1].x, cand.x, "bottom-left picks the lowest resulting top edge")
	assert.Equal(t, free[1].y, cand.y)
}
