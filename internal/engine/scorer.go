package engine

import (
	"glasscut/internal/model"
	"glasscut/internal/units"
)

// candidate is one admissible (free rectangle, orientation) pair with its
// heuristic scores. Lower scores are better; ties fall through to the
// lowest y, then the lowest x, so selection is fully deterministic.
type candidate struct {
	x, y    units.Unit
	w, h    units.Unit // placed piece size, kerf not included
	rotated bool
	score1  int64
	score2  int64
}

func (c candidate) betterThan(o candidate) bool {
	if c.score1 != o.score1 {
		return c.score1 < o.score1
	}
	if c.score2 != o.score2 {
		return c.score2 < o.score2
	}
	if c.y != o.y {
		return c.y < o.y
	}
	return c.x < o.x
}

// score fills in the heuristic scores for placing a w x h piece into free
// rectangle f.
func score(heur model.Heuristic, f urect, w, h units.Unit) (int64, int64) {
	leftoverW := int64(f.w - w)
	leftoverH := int64(f.h - h)
	switch heur {
	case model.HeuristicBestAreaFit:
		return f.area() - int64(w)*int64(h), min64(leftoverW, leftoverH)
	case model.HeuristicBottomLeft:
		return int64(f.y) + int64(h), int64(f.x)
	default: // best short side fit
		return min64(leftoverW, leftoverH), max64(leftoverW, leftoverH)
	}
}

// chooseBest scans the free set for the best admissible placement of a
// pw x ph piece. The kerf is added to both dimensions for the fit test,
// because that is the area a cut actually consumes. Returns false when no
// free rectangle admits the piece in any allowed orientation.
func chooseBest(heur model.Heuristic, free []urect, pw, ph, kerf units.Unit, allowRotation bool) (candidate, bool) {
	var best candidate
	found := false

	consider := func(f urect, w, h units.Unit, rotated bool) {
		if w+kerf > f.w || h+kerf > f.h {
			return
		}
		c := candidate{x: f.x, y: f.y, w: w, h: h, rotated: rotated}
		c.score1, c.score2 = score(heur, f, w, h)
		if !found || c.betterThan(best) {
			best = c
			found = true
		}
	}

	for _, f := range free {
		consider(f, pw, ph, false)
		if allowRotation && pw != ph {
			consider(f, ph, pw, true)
		}
	}
	return best, found
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
