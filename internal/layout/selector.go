package layout

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/sheet"
)

// ToggleResult reports what Toggle did with a click.
type ToggleResult int

const (
	// Started a new run with the first selected column.
	Started ToggleResult = iota
	// Extended the run by the next column to its right.
	Extended
	// Truncated the run at a selected column, dropping it and everything
	// to its right.
	Truncated
	// Rejected a column that would break the run. Selection unchanged.
	Rejected
	// Unknown column id, or one not available for grouping.
	Unknown
)

func (r ToggleResult) String() string {
	switch r {
	case Started:
		return "started"
	case Extended:
		return "extended"
	case Truncated:
		return "truncated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Changed reports whether the selection was modified.
func (r ToggleResult) Changed() bool {
	return r == Started || r == Extended || r == Truncated
}

// Available returns the columns a new header group may span: everything
// past the title block and short of the add-column slot that no existing
// group already uses.
func Available(columns []sheet.Column, groups []sheet.HeaderGroup) []sheet.Column {
	ix := newIndex(columns)
	used := make(map[int]bool)
	for _, g := range groups {
		for _, ref := range g.ColumnSpans {
			if i, ok := ix.resolve(ref); ok {
				used[i] = true
			}
		}
	}

	var out []sheet.Column
	for _, c := range columns {
		if c.Key == "" || !ix.assignable(c.Index) || used[c.Index] {
			continue
		}
		out = append(out, c)
	}
	return out
}

func position(available []sheet.Column, id string) int {
	return slices.IndexFunc(available, func(c sheet.Column) bool { return c.Key == id })
}

// next returns the position in available of the column that may extend
// selection, or -1. It must directly follow the rightmost selected column in
// available and in the column index space.
func next(available []sheet.Column, selection []string) int {
	maxPos := -1
	for _, id := range selection {
		if p := position(available, id); p > maxPos {
			maxPos = p
		}
	}
	if maxPos < 0 || maxPos+1 >= len(available) {
		return -1
	}
	if available[maxPos+1].Index != available[maxPos].Index+1 {
		return -1
	}
	return maxPos + 1
}

// Toggle applies a click on column id to selection and returns the new
// selection. The selection is always empty or a contiguous ascending run:
//
//   - clicking a selected column removes it and everything to its right
//   - any available column starts an empty selection
//   - otherwise only the column directly right of the run is accepted
//
// A rejected or unknown click returns selection unchanged.
func Toggle(available []sheet.Column, selection []string, id string) ([]string, ToggleResult) {
	pos := position(available, id)
	if pos < 0 {
		return selection, Unknown
	}
	if k := slices.Index(selection, id); k >= 0 {
		return slices.Clone(selection[:k]), Truncated
	}
	if len(selection) == 0 {
		return []string{id}, Started
	}
	if pos != next(available, selection) {
		return selection, Rejected
	}
	return append(slices.Clone(selection), id), Extended
}

// Selectable returns the columns worth offering in a picker: everything
// when nothing is selected, otherwise the selection plus the one column
// that may extend it.
func Selectable(available []sheet.Column, selection []string) []sheet.Column {
	if len(selection) == 0 {
		return slices.Clone(available)
	}
	n := next(available, selection)
	var out []sheet.Column
	for i, c := range available {
		if i == n || slices.Contains(selection, c.Key) {
			out = append(out, c)
		}
	}
	return out
}

// Color is a named header group color.
type Color struct {
	Name  string
	Value string
}

// Palette is the set of colors offered for new header groups.
var Palette = []Color{
	{"Green", "#D2E0D4"},
	{"Purple", "#DCCFFC"},
	{"Orange", "#FAC2AF"},
	{"Blue", "#E3F2FD"},
	{"Yellow", "#FFF8E1"},
	{"Pink", "#FCE4EC"},
}

// Builder assembles a new header group.
type Builder struct {
	Name  string
	Color Color

	available []sheet.Column
	selection []string
	newID     func() string
}

// NewBuilder starts a group for a sheet with the given columns and groups.
func NewBuilder(columns []sheet.Column, groups []sheet.HeaderGroup) *Builder {
	return &Builder{
		Color:     Palette[0],
		available: Available(columns, groups),
		newID:     func() string { return "header-" + uuid.NewString() },
	}
}

// Toggle applies a column click to the builder's selection.
func (b *Builder) Toggle(id string) ToggleResult {
	sel, res := Toggle(b.available, b.selection, id)
	b.selection = sel
	return res
}

// Selection returns the selected column keys, left to right.
func (b *Builder) Selection() []string {
	return slices.Clone(b.selection)
}

// Available returns every column the group could span.
func (b *Builder) Available() []sheet.Column {
	return b.available
}

// Selectable returns the columns currently offered for clicking.
func (b *Builder) Selectable() []sheet.Column {
	return Selectable(b.available, b.selection)
}

// Column returns the available column with key id.
func (b *Builder) Column(id string) (sheet.Column, bool) {
	if p := position(b.available, id); p >= 0 {
		return b.available[p], true
	}
	return sheet.Column{}, false
}

// Ready reports whether Build would succeed.
func (b *Builder) Ready() bool {
	return strings.TrimSpace(b.Name) != "" && len(b.selection) > 0
}

// Build returns the finished group.
func (b *Builder) Build() (sheet.HeaderGroup, error) {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return sheet.HeaderGroup{}, errors.HeaderGroupInvalid("name is required")
	}
	if len(b.selection) == 0 {
		return sheet.HeaderGroup{}, errors.HeaderGroupInvalid("select at least one column")
	}
	return sheet.HeaderGroup{
		ID:          b.newID(),
		Name:        name,
		Color:       b.Color.Value,
		ColumnSpans: sheet.ColumnRefs(slices.Clone(b.selection)),
	}, nil
}
