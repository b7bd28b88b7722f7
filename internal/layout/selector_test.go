package layout

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/sheet"
)

// fixture: 0 row, 1-4 title, 5 url, 6 assigned, 7 priority, 8 due, 9 value,
// 10 extra_1, 11 extra_2, 12 add-column.
func fixture(t *testing.T) sheet.Sheet {
	t.Helper()
	s := sheet.New(1)
	s, _ = s.AddExtraColumn()
	s, _ = s.AddExtraColumn()
	return s
}

func keys(cols []sheet.Column) []string {
	var out []string
	for _, c := range cols {
		out = append(out, c.Key)
	}
	return out
}

func TestAvailable(t *testing.T) {
	s := fixture(t)

	got := keys(Available(s.Columns(), nil))
	want := []string{"url", "assigned", "priority", "due", "value", "extra_1", "extra_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}

	groups := []sheet.HeaderGroup{grp("a", "priority", "due"), grp("b", "10")}
	got = keys(Available(s.Columns(), groups))
	want = []string{"url", "assigned", "value", "extra_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Available(with groups) = %v, want %v", got, want)
	}
}

func TestToggle_Scenario(t *testing.T) {
	s := fixture(t)
	avail := Available(s.Columns(), nil)

	var sel []string
	var res ToggleResult
	steps := []struct {
		id   string
		want ToggleResult
	}{
		{"assigned", Started},
		{"priority", Extended},
		{"due", Extended},
	}
	for _, st := range steps {
		sel, res = Toggle(avail, sel, st.id)
		if res != st.want {
			t.Fatalf("Toggle(%s) = %v, want %v", st.id, res, st.want)
		}
	}

	sel, res = Toggle(avail, sel, "extra_1")
	if res != Rejected {
		t.Errorf("skipping a column = %v, want rejected", res)
	}
	if !reflect.DeepEqual(sel, []string{"assigned", "priority", "due"}) {
		t.Errorf("selection = %v", sel)
	}
}

func TestToggle_Cases(t *testing.T) {
	s := fixture(t)
	avail := Available(s.Columns(), nil)

	tests := []struct {
		name    string
		sel     []string
		id      string
		want    []string
		wantRes ToggleResult
	}{
		{"start anywhere", nil, "extra_1", []string{"extra_1"}, Started},
		{"extend right", []string{"url"}, "assigned", []string{"url", "assigned"}, Extended},
		{"left of run rejected", []string{"priority"}, "assigned", []string{"priority"}, Rejected},
		{"deselect last", []string{"url", "assigned"}, "assigned", []string{"url"}, Truncated},
		{"deselect middle drops the tail", []string{"url", "assigned", "priority", "due"}, "assigned", []string{"url"}, Truncated},
		{"deselect first empties", []string{"url", "assigned"}, "url", []string{}, Truncated},
		{"reserved column", []string{"url"}, "job", []string{"url"}, Unknown},
		{"unknown id", nil, "extra_9", nil, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := Toggle(avail, tt.sel, tt.id)
			if res != tt.wantRes {
				t.Errorf("result = %v, want %v", res, tt.wantRes)
			}
			if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
				t.Errorf("selection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggle_DoesNotAliasInput(t *testing.T) {
	s := fixture(t)
	avail := Available(s.Columns(), nil)

	sel := make([]string, 1, 8)
	sel[0] = "url"
	a, _ := Toggle(avail, sel, "assigned")
	b, _ := Toggle(avail, sel, "extra_1")
	if len(sel) != 1 || sel[0] != "url" {
		t.Errorf("input changed: %v", sel)
	}
	if a[len(a)-1] != "assigned" || len(b) != 1 {
		t.Errorf("a = %v, b = %v", a, b)
	}
}

func TestToggle_GapFromUsedColumn(t *testing.T) {
	s := fixture(t)
	avail := Available(s.Columns(), []sheet.HeaderGroup{grp("used", "priority")})

	sel, _ := Toggle(avail, nil, "assigned")
	sel, res := Toggle(avail, sel, "due")
	if res != Rejected {
		t.Errorf("extending across a grouped column = %v, want rejected", res)
	}
	if !reflect.DeepEqual(sel, []string{"assigned"}) {
		t.Errorf("selection = %v", sel)
	}
}

func TestToggle_ContiguityProperty(t *testing.T) {
	s := fixture(t)
	cols := s.Columns()
	rng := rand.New(rand.NewSource(42))
	ids := []string{"job", "url", "assigned", "priority", "due", "value", "extra_1", "extra_2", "nope"}

	for trial := 0; trial < 200; trial++ {
		var groups []sheet.HeaderGroup
		if rng.Intn(2) == 0 {
			groups = append(groups, grp("used", ids[2+rng.Intn(6)]))
		}
		avail := Available(cols, groups)

		var sel []string
		for step := 0; step < 30; step++ {
			sel, _ = Toggle(avail, sel, ids[rng.Intn(len(ids))])

			for i := 1; i < len(sel); i++ {
				prev, _ := s.ColumnIndexOf(sel[i-1])
				cur, _ := s.ColumnIndexOf(sel[i])
				if cur != prev+1 {
					t.Fatalf("trial %d: selection %v is not a contiguous run", trial, sel)
				}
			}
		}
	}
}

func TestSelectable(t *testing.T) {
	s := fixture(t)
	avail := Available(s.Columns(), nil)

	if got := Selectable(avail, nil); len(got) != len(avail) {
		t.Errorf("empty selection offers %d columns, want %d", len(got), len(avail))
	}

	got := keys(Selectable(avail, []string{"assigned", "priority"}))
	want := []string{"assigned", "priority", "due"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Selectable() = %v, want %v", got, want)
	}

	got = keys(Selectable(avail, []string{"extra_2"}))
	if !reflect.DeepEqual(got, []string{"extra_2"}) {
		t.Errorf("Selectable(at end) = %v", got)
	}
}

func TestBuilder(t *testing.T) {
	s := fixture(t)

	b := NewBuilder(s.Columns(), s.HeaderGroups)
	if b.Color != Palette[0] {
		t.Errorf("default color = %v", b.Color)
	}
	if _, err := b.Build(); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Build() without name = %v, want invalid", err)
	}

	b.Name = "   "
	b.Toggle("url")
	if b.Ready() {
		t.Error("blank name should not be ready")
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build() with blank name should fail")
	}

	b.Name = "  Review  "
	b.Toggle("url")
	if _, err := b.Build(); err == nil {
		t.Error("Build() with empty selection should fail")
	}

	b.Toggle("value")
	b.Toggle("extra_1")
	b.Color = Palette[3]
	if !b.Ready() {
		t.Fatal("builder should be ready")
	}

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.HasPrefix(g.ID, "header-") || len(g.ID) <= len("header-") {
		t.Errorf("ID = %q", g.ID)
	}
	if g.Name != "Review" || g.Color != "#E3F2FD" {
		t.Errorf("group = %+v", g)
	}
	if !reflect.DeepEqual([]string(g.ColumnSpans), []string{"value", "extra_1"}) {
		t.Errorf("spans = %v", g.ColumnSpans)
	}

	g2, _ := b.Build()
	if g2.ID == g.ID {
		t.Error("each Build should mint a new id")
	}

	if c, ok := b.Column("extra_1"); !ok || c.Index != 10 {
		t.Errorf("Column(extra_1) = %+v, %v", c, ok)
	}
}

func TestToggleResult_Changed(t *testing.T) {
	for _, r := range []ToggleResult{Started, Extended, Truncated} {
		if !r.Changed() {
			t.Errorf("%v should report a change", r)
		}
	}
	for _, r := range []ToggleResult{Rejected, Unknown} {
		if r.Changed() {
			t.Errorf("%v should not report a change", r)
		}
	}
}
