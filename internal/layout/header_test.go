package layout

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/zhubert/tally/internal/sheet"
)

func grp(id string, refs ...string) sheet.HeaderGroup {
	return sheet.HeaderGroup{ID: id, Name: id, Color: "#D2E0D4", ColumnSpans: sheet.ColumnRefs(refs)}
}

// shape reduces segments to (kind, start, span) for comparison.
type shape struct {
	kind  SegmentKind
	start int
	span  int
}

func shapes(segs []Segment) []shape {
	out := make([]shape, len(segs))
	for i, s := range segs {
		out[i] = shape{s.Kind, s.Start, s.Span}
	}
	return out
}

func TestHeader_TwoGroups(t *testing.T) {
	cols := sheet.New(1).Columns()
	groups := []sheet.HeaderGroup{
		grp("A", sheet.KeyAssigned),
		grp("B", sheet.KeyPriority, sheet.KeyDue),
	}

	got := shapes(Header(cols, groups))
	want := []shape{
		{SegmentCorner, 0, 1},
		{SegmentTitle, 1, 4},
		{SegmentFiller, 5, 1},
		{SegmentGroup, 6, 1},
		{SegmentGroup, 7, 2},
		{SegmentFiller, 9, 1},
		{SegmentAddColumn, 10, 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Header() =\n%v\nwant\n%v", got, want)
	}
}

func TestHeader_Cases(t *testing.T) {
	base, _ := sheet.New(1).AddExtraColumn()
	cols := base.Columns() // 0..10 data, 11 add-column

	tests := []struct {
		name   string
		groups []sheet.HeaderGroup
		want   []shape
	}{
		{
			name:   "no groups",
			groups: nil,
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1}, {SegmentFiller, 6, 1}, {SegmentFiller, 7, 1},
				{SegmentFiller, 8, 1}, {SegmentFiller, 9, 1}, {SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "unsorted input",
			groups: []sheet.HeaderGroup{grp("late", "extra_1"), grp("early", sheet.KeyURL, sheet.KeyAssigned)},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentGroup, 5, 2},
				{SegmentFiller, 7, 1}, {SegmentFiller, 8, 1}, {SegmentFiller, 9, 1},
				{SegmentGroup, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "stale and reserved refs dropped",
			groups: []sheet.HeaderGroup{grp("g", "extra_9", sheet.KeyJob, sheet.KeyValue)},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1}, {SegmentFiller, 6, 1}, {SegmentFiller, 7, 1}, {SegmentFiller, 8, 1},
				{SegmentGroup, 9, 1},
				{SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "group emptied by stale refs is skipped",
			groups: []sheet.HeaderGroup{grp("gone", "extra_7", "status"), grp("kept", sheet.KeyDue)},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1}, {SegmentFiller, 6, 1}, {SegmentFiller, 7, 1},
				{SegmentGroup, 8, 1},
				{SegmentFiller, 9, 1}, {SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "numeric refs",
			groups: []sheet.HeaderGroup{grp("n", "7", "8")},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1}, {SegmentFiller, 6, 1},
				{SegmentGroup, 7, 2},
				{SegmentFiller, 9, 1}, {SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "overlap clips the earlier group",
			groups: []sheet.HeaderGroup{grp("a", "6", "7", "8", "9"), grp("b", "8", "9")},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1},
				{SegmentGroup, 6, 2},
				{SegmentGroup, 8, 2},
				{SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
		{
			name:   "same start: later id wins",
			groups: []sheet.HeaderGroup{grp("b", "6"), grp("a", "6", "7")},
			want: []shape{
				{SegmentCorner, 0, 1}, {SegmentTitle, 1, 4},
				{SegmentFiller, 5, 1},
				{SegmentGroup, 6, 1},
				{SegmentFiller, 7, 1}, {SegmentFiller, 8, 1}, {SegmentFiller, 9, 1}, {SegmentFiller, 10, 1},
				{SegmentAddColumn, 11, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(Header(cols, tt.groups))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Header() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestHeader_GroupLabels(t *testing.T) {
	segs := ForSheet(sheet.Defaults()[0])

	var labels []string
	for _, s := range segs {
		if s.Kind == SegmentGroup {
			labels = append(labels, s.Label)
		}
	}
	want := []string{"ABC", "Answer a question", "Extract"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}

	seg, ok := SegmentAt(segs, 8)
	if !ok || seg.Label != "Answer a question" || seg.Color != "#DCCFFC" {
		t.Errorf("SegmentAt(8) = %+v, %v", seg, ok)
	}
}

// checkCoverage fails unless segs cover 0..last exactly once in order.
func checkCoverage(t *testing.T, segs []Segment, last int) {
	t.Helper()
	next := 0
	for _, s := range segs {
		if s.Span < 1 {
			t.Fatalf("segment %+v has no span", s)
		}
		if s.Start != next {
			t.Fatalf("segment %+v starts at %d, want %d", s, s.Start, next)
		}
		next = s.End() + 1
	}
	if next != last+1 {
		t.Fatalf("segments end at %d, want %d", next-1, last)
	}
	if segs[len(segs)-1].Kind != SegmentAddColumn {
		t.Fatalf("last segment is %v", segs[len(segs)-1].Kind)
	}
}

func TestHeader_CoverageProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		s := sheet.New(1)
		for n := rng.Intn(6); n > 0; n-- {
			s, _ = s.AddExtraColumn()
		}
		cols := s.Columns()
		sentinel := s.AddColumnIndex()

		// Carve disjoint contiguous runs out of the assignable range.
		var groups []sheet.HeaderGroup
		for i := sheet.FirstAssignable; i < sentinel; {
			if rng.Intn(2) == 0 {
				i++
				continue
			}
			width := 1 + rng.Intn(3)
			var refs []string
			for j := i; j < i+width && j < sentinel; j++ {
				refs = append(refs, cols[j].Key)
			}
			groups = append(groups, grp("g"+cols[i].Key, refs...))
			i += width
		}
		rng.Shuffle(len(groups), func(a, b int) { groups[a], groups[b] = groups[b], groups[a] })

		segs := Header(cols, groups)
		checkCoverage(t, segs, sentinel)

		n := 0
		for _, seg := range segs {
			if seg.Kind == SegmentGroup {
				n++
			}
		}
		if n != len(groups) {
			t.Fatalf("trial %d: %d group segments, want %d", trial, n, len(groups))
		}
	}
}

func TestHeader_OverlapStillCovers(t *testing.T) {
	s, _ := sheet.New(1).AddExtraColumn()
	groups := []sheet.HeaderGroup{
		grp("a", "6", "7", "8", "9", "10"),
		grp("b", "7"),
		grp("c", "9"),
	}
	checkCoverage(t, Header(s.Columns(), groups), s.AddColumnIndex())
}

func TestSegmentKind_String(t *testing.T) {
	if SegmentAddColumn.String() != "add-column" || SegmentKind(99).String() != "unknown" {
		t.Error("unexpected SegmentKind names")
	}
}
