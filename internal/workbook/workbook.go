// Package workbook holds tally's application state: the ordered list of
// sheets and which one is active. A Workbook is a value; every operation
// returns a new Workbook and never touches the receiver, so state handed to
// the view stays fixed while the next update is computed.
package workbook

import (
	"slices"
	"time"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/sheet"
)

// Workbook is the set of sheets plus the active sheet pointer.
type Workbook struct {
	sheets   []sheet.Sheet
	activeID string
}

// New builds a workbook. An activeID that names no sheet falls back to the
// first sheet.
func New(sheets []sheet.Sheet, activeID string) Workbook {
	w := Workbook{sheets: slices.Clone(sheets), activeID: activeID}
	if w.indexOf(activeID) < 0 && len(w.sheets) > 0 {
		w.activeID = w.sheets[0].ID
	}
	return w
}

func (w Workbook) indexOf(id string) int {
	return slices.IndexFunc(w.sheets, func(s sheet.Sheet) bool { return s.ID == id })
}

// Sheets returns the sheets in tab order.
func (w Workbook) Sheets() []sheet.Sheet {
	return slices.Clone(w.sheets)
}

// Len returns the number of sheets.
func (w Workbook) Len() int {
	return len(w.sheets)
}

// ActiveID returns the active sheet's id.
func (w Workbook) ActiveID() string {
	return w.activeID
}

// ActiveIndex returns the active sheet's tab position, or -1 when empty.
func (w Workbook) ActiveIndex() int {
	return w.indexOf(w.activeID)
}

// Active returns the active sheet. The zero Sheet is returned for an empty
// workbook.
func (w Workbook) Active() sheet.Sheet {
	if i := w.ActiveIndex(); i >= 0 {
		return w.sheets[i]
	}
	return sheet.Sheet{}
}

// Sheet returns the sheet with the given id.
func (w Workbook) Sheet(id string) (sheet.Sheet, error) {
	if i := w.indexOf(id); i >= 0 {
		return w.sheets[i], nil
	}
	return sheet.Sheet{}, errors.SheetNotFound(id)
}

// SetActive makes id the active sheet.
func (w Workbook) SetActive(id string) (Workbook, error) {
	if w.indexOf(id) < 0 {
		return w, errors.SheetNotFound(id)
	}
	out := w
	out.activeID = id
	return out, nil
}

// SetActiveIndex activates the sheet at tab position i, clamped to range.
func (w Workbook) SetActiveIndex(i int) Workbook {
	if len(w.sheets) == 0 {
		return w
	}
	i = max(0, min(i, len(w.sheets)-1))
	out := w
	out.activeID = w.sheets[i].ID
	return out
}

// replaceActive swaps in a new version of the active sheet.
func (w Workbook) replaceActive(s sheet.Sheet) Workbook {
	i := w.ActiveIndex()
	if i < 0 {
		return w
	}
	out := w
	out.sheets = slices.Clone(w.sheets)
	out.sheets[i] = s
	return out
}

// SetCell writes a value into the active sheet. ok is false for an
// out-of-range row or unknown column.
func (w Workbook) SetCell(row int, key, value string) (Workbook, bool) {
	s, ok := w.Active().SetCell(row, key, value)
	if !ok {
		return w, false
	}
	return w.replaceActive(s), true
}

// AddExtraColumn appends an extra column to the active sheet and returns
// its key.
func (w Workbook) AddExtraColumn() (Workbook, string) {
	if w.ActiveIndex() < 0 {
		return w, ""
	}
	s, key := w.Active().AddExtraColumn()
	return w.replaceActive(s), key
}

// AddHeaderGroup adds g to the active sheet.
func (w Workbook) AddHeaderGroup(g sheet.HeaderGroup) Workbook {
	return w.replaceActive(w.Active().AddHeaderGroup(g))
}

// withSheet adds s as the last tab and activates it.
func (w Workbook) withSheet(s sheet.Sheet) Workbook {
	out := Workbook{sheets: append(slices.Clone(w.sheets), s), activeID: s.ID}
	return out
}

// AddSheet appends a new empty sheet numbered after the existing tabs and
// activates it.
func (w Workbook) AddSheet() Workbook {
	n := len(w.sheets) + 1
	s := sheet.New(n)
	for w.indexOf(s.ID) >= 0 {
		n++
		s = sheet.New(n)
	}
	return w.withSheet(s)
}

// Import appends a copy of tpl under a fresh imported-<millis> id and
// activates it.
func (w Workbook) Import(tpl sheet.Sheet, now time.Time) Workbook {
	s := tpl.AsImported(now)
	for w.indexOf(s.ID) >= 0 {
		now = now.Add(time.Millisecond)
		s = tpl.AsImported(now)
	}
	return w.withSheet(s)
}
