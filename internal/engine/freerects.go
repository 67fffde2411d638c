package engine

import "glasscut/internal/units"

// urect is an axis-aligned rectangle in fixed-point units. All packing
// geometry runs on these, so comparisons are exact and need no epsilon.
type urect struct {
	x, y, w, h units.Unit
}

func (r urect) right() units.Unit  { return r.x + r.w }
func (r urect) bottom() units.Unit { return r.y + r.h }
func (r urect) area() int64        { return int64(r.w) * int64(r.h) }

// contains reports whether r fully contains o.
func (r urect) contains(o urect) bool {
	return r.x <= o.x && r.y <= o.y &&
		r.right() >= o.right() && r.bottom() >= o.bottom()
}

// overlaps reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r urect) overlaps(o urect) bool {
	return r.x < o.right() && r.right() > o.x &&
		r.y < o.bottom() && r.bottom() > o.y
}

// freeTracker maintains the maximal set of empty rectangles on one sheet:
// no free rectangle is ever a proper subset of another, so the scorer sees
// every placement opportunity.
type freeTracker struct {
	free []urect
}

// newFreeTracker starts a tracker with a single free rectangle spanning
// the usable sheet area.
func newFreeTracker(usable urect) *freeTracker {
	t := &freeTracker{}
	if usable.w > 0 && usable.h > 0 {
		t.free = append(t.free, usable)
	}
	return t
}

// place subtracts the placed rectangle from the free set. Every free rect
// intersecting the placement is replaced by up to four strips (left,
// right, above, below, clipped to its own bounds), then fully contained
// rects are pruned so the set stays maximal.
func (t *freeTracker) place(p urect) {
	var next []urect
	for _, f := range t.free {
		if !f.overlaps(p) {
			next = append(next, f)
			continue
		}
		if p.x > f.x {
			next = append(next, urect{x: f.x, y: f.y, w: p.x - f.x, h: f.h})
		}
		if p.right() < f.right() {
			next = append(next, urect{x: p.right(), y: f.y, w: f.right() - p.right(), h: f.h})
		}
		if p.y > f.y {
			next = append(next, urect{x: f.x, y: f.y, w: f.w, h: p.y - f.y})
		}
		if p.bottom() < f.bottom() {
			next = append(next, urect{x: f.x, y: p.bottom(), w: f.w, h: f.bottom() - p.bottom()})
		}
	}
	t.free = pruneContained(next)
}

// pruneContained removes every rect fully contained within another. Exact
// duplicates keep their first occurrence.
func pruneContained(rects []urect) []urect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]urect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !b.contains(a) {
				continue
			}
			if a == b && j > i {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}
