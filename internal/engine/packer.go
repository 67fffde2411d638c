// Package engine implements the 2D rectangular cutting-stock optimizer:
// maximal-rectangles free-space tracking, pluggable placement scoring,
// sheet allocation, and a fixed-seed genetic order search.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"glasscut/internal/model"
	"glasscut/internal/units"
)

var (
	// ErrInvalidDimension reports a non-positive piece or sheet dimension.
	// This is a precondition violation by the caller, not a packing outcome.
	ErrInvalidDimension = errors.New("non-positive dimension")

	// ErrInvalidSettings reports an unusable engine configuration.
	ErrInvalidSettings = errors.New("invalid settings")
)

// Packer runs the 2D bin-packing algorithm over an immutable snapshot of
// the piece catalog. It holds no state between runs.
type Packer struct {
	Settings model.Settings
}

// New returns a packer for the given settings.
func New(settings model.Settings) *Packer {
	return &Packer{Settings: settings}
}

// Pack places every piece onto as few sheets as the heuristic manages,
// up to the configured maximum. Pieces that fit nowhere are reported in
// the result's Unplaced set; the run never aborts over them. The only
// errors are precondition violations in the settings or the catalog.
// Identical input and settings always produce an identical result.
func (p *Packer) Pack(pieces []model.Piece) (model.PackResult, error) {
	if err := p.validate(pieces); err != nil {
		return model.PackResult{}, err
	}
	if len(pieces) == 0 {
		return model.PackResult{}, nil
	}
	if p.Settings.Algorithm == model.AlgorithmGenetic {
		return p.packGenetic(pieces), nil
	}
	return p.packGreedy(pieces), nil
}

func (p *Packer) validate(pieces []model.Piece) error {
	s := p.Settings
	if s.SheetWidth <= 0 || s.SheetHeight <= 0 {
		return fmt.Errorf("%w: sheet %gx%g", ErrInvalidDimension, s.SheetWidth, s.SheetHeight)
	}
	if s.MaxSheets < 1 {
		return fmt.Errorf("%w: max sheets %d", ErrInvalidSettings, s.MaxSheets)
	}
	if s.KerfWidth < 0 {
		return fmt.Errorf("%w: kerf width %g", ErrInvalidSettings, s.KerfWidth)
	}
	if s.EdgeTrim < 0 {
		return fmt.Errorf("%w: edge trim %g", ErrInvalidSettings, s.EdgeTrim)
	}
	if 2*s.EdgeTrim >= s.SheetWidth || 2*s.EdgeTrim >= s.SheetHeight {
		return fmt.Errorf("%w: edge trim %g leaves no usable area on a %gx%g sheet",
			ErrInvalidSettings, s.EdgeTrim, s.SheetWidth, s.SheetHeight)
	}
	for _, piece := range pieces {
		if piece.Width <= 0 || piece.Height <= 0 {
			return fmt.Errorf("%w: piece %d (%q) %gx%g",
				ErrInvalidDimension, piece.ID, piece.Label, piece.Width, piece.Height)
		}
	}
	return nil
}

// packGreedy is the single-pass heuristic: largest pieces first, each one
// on the first open sheet whose scorer admits it.
func (p *Packer) packGreedy(pieces []model.Piece) model.PackResult {
	ordered := sortForPacking(pieces)
	r := newRun(p.Settings)
	for _, piece := range ordered {
		r.place(piece, orientAuto)
	}
	return r.result()
}

// sortForPacking fixes the placement order: descending longest side, ties
// by descending area, remaining ties by original input order. Placing big
// pieces first reduces fragmentation of the free set.
func sortForPacking(pieces []model.Piece) []model.Piece {
	ordered := make([]model.Piece, len(pieces))
	copy(ordered, pieces)
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := ordered[i].MaxSide(), ordered[j].MaxSide()
		if si != sj {
			return si > sj
		}
		return ordered[i].Area() > ordered[j].Area()
	})
	return ordered
}

// orientation preference for a single placement attempt.
type orientPref int

const (
	orientAuto         orientPref = iota // scorer picks the orientation
	orientNormalFirst                    // try as given, fall back to rotated
	orientRotatedFirst                   // try rotated, fall back to as given
)

// openSheet is one sheet mid-run: its free-space tracker and the
// placements committed so far.
type openSheet struct {
	tracker    *freeTracker
	placements []model.Placement
}

// run owns the mutable state of one packing run. Everything is expressed
// in fixed-point units derived from Settings.Precision.
type run struct {
	settings model.Settings
	scale    units.Scale
	kerf     units.Unit
	usable   urect
	sheets   []*openSheet
	unplaced []model.Piece
}

func newRun(settings model.Settings) *run {
	scale := units.NewScale(settings.Precision)
	trim := scale.ToUnits(settings.EdgeTrim)
	return &run{
		settings: settings,
		scale:    scale,
		kerf:     scale.ToUnits(settings.KerfWidth),
		usable: urect{
			x: trim,
			y: trim,
			w: scale.ToUnits(settings.SheetWidth) - 2*trim,
			h: scale.ToUnits(settings.SheetHeight) - 2*trim,
		},
	}
}

// fitsEmptySheet reports whether the piece fits a fresh sheet at all, in
// any allowed orientation.
func (r *run) fitsEmptySheet(pw, ph units.Unit) bool {
	if pw+r.kerf <= r.usable.w && ph+r.kerf <= r.usable.h {
		return true
	}
	if r.settings.AllowRotation {
		return ph+r.kerf <= r.usable.w && pw+r.kerf <= r.usable.h
	}
	return false
}

// place routes one piece: first open sheet with a fit, then a new sheet if
// the cap allows, otherwise the unplaced set. Returns true when placed.
func (r *run) place(piece model.Piece, pref orientPref) bool {
	pw := r.scale.ToUnits(piece.Width)
	ph := r.scale.ToUnits(piece.Height)

	if !r.fitsEmptySheet(pw, ph) {
		r.unplaced = append(r.unplaced, piece)
		return false
	}

	for _, sheet := range r.sheets {
		if r.tryPlace(sheet, piece, pw, ph, pref) {
			return true
		}
	}

	if len(r.sheets) >= r.settings.MaxSheets {
		r.unplaced = append(r.unplaced, piece)
		return false
	}

	sheet := &openSheet{tracker: newFreeTracker(r.usable)}
	r.sheets = append(r.sheets, sheet)
	if !r.tryPlace(sheet, piece, pw, ph, pref) {
		// fitsEmptySheet guarantees a spot on a fresh sheet.
		panic("glasscut: piece does not fit an empty sheet after fit check")
	}
	return true
}

func (r *run) tryPlace(sheet *openSheet, piece model.Piece, pw, ph units.Unit, pref orientPref) bool {
	var cand candidate
	var ok bool

	switch pref {
	case orientNormalFirst:
		cand, ok = chooseBest(r.settings.Heuristic, sheet.tracker.free, pw, ph, r.kerf, false)
		if !ok && r.settings.AllowRotation && pw != ph {
			cand, ok = chooseBest(r.settings.Heuristic, sheet.tracker.free, ph, pw, r.kerf, false)
			cand.rotated = ok
		}
	case orientRotatedFirst:
		if r.settings.AllowRotation && pw != ph {
			cand, ok = chooseBest(r.settings.Heuristic, sheet.tracker.free, ph, pw, r.kerf, false)
			cand.rotated = ok
		}
		if !ok {
			cand, ok = chooseBest(r.settings.Heuristic, sheet.tracker.free, pw, ph, r.kerf, false)
		}
	default:
		cand, ok = chooseBest(r.settings.Heuristic, sheet.tracker.free, pw, ph, r.kerf, r.settings.AllowRotation)
	}
	if !ok {
		return false
	}

	sheet.tracker.place(urect{x: cand.x, y: cand.y, w: cand.w + r.kerf, h: cand.h + r.kerf})
	sheet.placements = append(sheet.placements, model.Placement{
		PieceID: piece.ID,
		Label:   piece.Label,
		X:       r.scale.FromUnits(cand.x),
		Y:       r.scale.FromUnits(cand.y),
		Width:   r.scale.FromUnits(cand.w),
		Height:  r.scale.FromUnits(cand.h),
		Rotated: cand.rotated,
	})
	return true
}

// result freezes the run into an immutable PackResult, harvesting usable
// offcuts from each sheet's final free set.
func (r *run) result() model.PackResult {
	res := model.PackResult{Unplaced: r.unplaced}
	for i, sheet := range r.sheets {
		out := model.Sheet{
			Index:      i,
			Width:      r.settings.SheetWidth,
			Height:     r.settings.SheetHeight,
			Placements: sheet.placements,
		}
		for _, f := range sheet.tracker.free {
			w := r.scale.FromUnits(f.w)
			h := r.scale.FromUnits(f.h)
			if model.UsableOffcut(w, h) {
				out.Offcuts = append(out.Offcuts,
					model.NewOffcut(i, r.scale.FromUnits(f.x), r.scale.FromUnits(f.y), w, h))
			}
		}
		model.SortOffcuts(out.Offcuts)
		res.Sheets = append(res.Sheets, out)
	}
	return res
}
