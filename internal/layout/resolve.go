package layout

import (
	"strconv"

	"github.com/zhubert/tally/internal/sheet"
)

// index maps column references onto the column index space.
type index struct {
	byKey    map[string]int
	sentinel int
}

func newIndex(columns []sheet.Column) index {
	ix := index{byKey: make(map[string]int, len(columns)), sentinel: len(columns) - 1}
	for _, c := range columns {
		if c.Key != "" {
			ix.byKey[c.Key] = c.Index
		}
		if c.Kind == sheet.KindAddColumn {
			ix.sentinel = c.Index
		}
	}
	return ix
}

// resolve returns the index of ref. Keys win; otherwise ref must be the
// canonical decimal form of an index short of the add-column slot.
func (ix index) resolve(ref string) (int, bool) {
	if i, ok := ix.byKey[ref]; ok {
		return i, true
	}
	i, err := strconv.Atoi(ref)
	if err != nil || strconv.Itoa(i) != ref || i < 0 || i >= ix.sentinel {
		return 0, false
	}
	return i, true
}

// assignable reports whether i may belong to a header group.
func (ix index) assignable(i int) bool {
	return i >= sheet.FirstAssignable && i < ix.sentinel
}

// span resolves a group's references, dropping stale and reserved ones.
// ok is false when nothing is left.
func (ix index) span(g sheet.HeaderGroup) (lo, hi int, ok bool) {
	for _, ref := range g.ColumnSpans {
		i, found := ix.resolve(ref)
		if !found || !ix.assignable(i) {
			continue
		}
		if !ok || i < lo {
			lo = i
		}
		if !ok || i > hi {
			hi = i
		}
		ok = true
	}
	return lo, hi, ok
}
