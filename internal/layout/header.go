package layout

import (
	"sort"

	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/sheet"
)

// SegmentKind identifies what a header segment draws.
type SegmentKind int

const (
	SegmentCorner SegmentKind = iota
	SegmentTitle
	SegmentFiller
	SegmentGroup
	SegmentAddColumn
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentCorner:
		return "corner"
	case SegmentTitle:
		return "title"
	case SegmentFiller:
		return "filler"
	case SegmentGroup:
		return "group"
	case SegmentAddColumn:
		return "add-column"
	default:
		return "unknown"
	}
}

// Segment is one cell of the grouped header row. It covers Span columns
// starting at Start.
type Segment struct {
	Kind    SegmentKind
	Start   int
	Span    int
	GroupID string
	Label   string
	Color   string
}

// End returns the last column index the segment covers.
func (s Segment) End() int {
	return s.Start + s.Span - 1
}

type placed struct {
	group  sheet.HeaderGroup
	lo, hi int
}

// Header lays groups out over columns. The result covers every column index
// exactly once, in ascending order: a corner over the row number, a title
// over the title block, one segment per surviving group, a filler for every
// uncovered column and the add-column slot last.
//
// Groups are ordered by their leftmost column, ties by id. References that
// are stale or point into the reserved block are dropped, and a group left
// with nothing is skipped. When two groups overlap the later one wins and
// the earlier one is cut short in front of it.
func Header(columns []sheet.Column, groups []sheet.HeaderGroup) []Segment {
	if len(columns) == 0 {
		return nil
	}
	ix := newIndex(columns)

	var ps []placed
	for _, g := range groups {
		lo, hi, ok := ix.span(g)
		if !ok {
			logger.WithComponent("layout").Debug("skipping header group with no resolvable columns", "group", g.ID)
			continue
		}
		ps = append(ps, placed{group: g, lo: lo, hi: hi})
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].lo != ps[j].lo {
			return ps[i].lo < ps[j].lo
		}
		return ps[i].group.ID < ps[j].group.ID
	})
	for i := 0; i+1 < len(ps); i++ {
		if next := ps[i+1].lo; ps[i].hi >= next {
			ps[i].hi = next - 1
		}
	}

	segs := make([]Segment, 0, len(columns))
	segs = append(segs, Segment{Kind: SegmentCorner, Start: sheet.RowNumberIndex, Span: 1})
	titleEnd := sheet.TitleBlockEnd
	if titleEnd >= ix.sentinel {
		titleEnd = ix.sentinel - 1
	}
	if titleEnd >= sheet.TitleBlockStart {
		segs = append(segs, Segment{Kind: SegmentTitle, Start: sheet.TitleBlockStart, Span: titleEnd - sheet.TitleBlockStart + 1})
	}

	cursor := titleEnd + 1
	for _, p := range ps {
		if p.hi < p.lo {
			logger.WithComponent("layout").Debug("header group fully overlapped", "group", p.group.ID)
			continue
		}
		for ; cursor < p.lo; cursor++ {
			segs = append(segs, Segment{Kind: SegmentFiller, Start: cursor, Span: 1})
		}
		segs = append(segs, Segment{
			Kind:    SegmentGroup,
			Start:   p.lo,
			Span:    p.hi - p.lo + 1,
			GroupID: p.group.ID,
			Label:   p.group.Name,
			Color:   p.group.Color,
		})
		cursor = p.hi + 1
	}
	for ; cursor < ix.sentinel; cursor++ {
		segs = append(segs, Segment{Kind: SegmentFiller, Start: cursor, Span: 1})
	}
	segs = append(segs, Segment{Kind: SegmentAddColumn, Start: ix.sentinel, Span: 1})
	return segs
}

// ForSheet lays out s's own header groups over its columns.
func ForSheet(s sheet.Sheet) []Segment {
	return Header(s.Columns(), s.HeaderGroups)
}

// SegmentAt returns the segment covering column index i.
func SegmentAt(segs []Segment, i int) (Segment, bool) {
	for _, s := range segs {
		if i >= s.Start && i <= s.End() {
			return s, true
		}
	}
	return Segment{}, false
}
