// Package sheet is tally's row/column model: sheets of job-request rows,
// their extra columns and header groups, the column index space the layout
// code works in, and the built-in sheets.
//
// Sheets are values. Every mutating operation returns a new Sheet and leaves
// the receiver untouched, so a Sheet handed to the renderer never changes
// underneath it.
package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DefaultRowCount is the number of rows every sheet is created with.
const DefaultRowCount = 100

// ExtraColumn is a user-appended column.
type ExtraColumn struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// HeaderGroup is a named, colored label spanning a contiguous run of
// columns in the grouped header row.
type HeaderGroup struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Color       string     `json:"color" yaml:"color"`
	ColumnSpans ColumnRefs `json:"columnSpans" yaml:"columnSpans"`
}

// ColumnRefs are the column references of a header group. Entries are
// column keys; a JSON number is kept as its decimal text and later resolved
// as a column index.
type ColumnRefs []string

func (c *ColumnRefs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	out := make(ColumnRefs, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		default:
			return fmt.Errorf("columnSpans: unexpected %T", v)
		}
	}
	*c = out
	return nil
}

// Sheet is one tab of the workbook.
type Sheet struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Title        string        `json:"title" yaml:"title"`
	Rows         []Row         `json:"data" yaml:"data"`
	ExtraColumns []ExtraColumn `json:"extraColumns" yaml:"extraColumns"`
	HeaderGroups []HeaderGroup `json:"dynamicHeaders" yaml:"dynamicHeaders"`
}

// MarshalJSON writes empty lists as [] rather than null.
func (s Sheet) MarshalJSON() ([]byte, error) {
	type plain Sheet
	p := plain(s)
	if p.Rows == nil {
		p.Rows = []Row{}
	}
	if p.ExtraColumns == nil {
		p.ExtraColumns = []ExtraColumn{}
	}
	if p.HeaderGroups == nil {
		p.HeaderGroups = []HeaderGroup{}
	}
	for i, g := range p.HeaderGroups {
		if g.ColumnSpans == nil {
			p.HeaderGroups[i].ColumnSpans = ColumnRefs{}
		}
	}
	return json.Marshal(p)
}

// EmptyRows returns n rows with every fixed field empty.
func EmptyRows(n int) []Row {
	return make([]Row, n)
}

// New returns the sheet created by the "new sheet" action for tab n.
func New(n int) Sheet {
	return Sheet{
		ID:           fmt.Sprintf("sheet-%d", n),
		Name:         fmt.Sprintf("Sheet %d", n),
		Title:        fmt.Sprintf("Sheet %d Overview", n),
		Rows:         EmptyRows(DefaultRowCount),
		ExtraColumns: []ExtraColumn{},
		HeaderGroups: []HeaderGroup{},
	}
}

// Clone returns a deep copy.
func (s Sheet) Clone() Sheet {
	out := s
	out.Rows = make([]Row, len(s.Rows))
	for i, r := range s.Rows {
		out.Rows[i] = r.clone()
	}
	out.ExtraColumns = append([]ExtraColumn{}, s.ExtraColumns...)
	out.HeaderGroups = make([]HeaderGroup, len(s.HeaderGroups))
	for i, g := range s.HeaderGroups {
		g.ColumnSpans = append(ColumnRefs{}, g.ColumnSpans...)
		out.HeaderGroups[i] = g
	}
	return out
}

// SetCell returns a sheet with (row, key) set to value. ok is false, and the
// receiver is returned unchanged, when row is out of range or key is not a
// column of the sheet. Any string is accepted.
func (s Sheet) SetCell(row int, key, value string) (Sheet, bool) {
	if row < 0 || row >= len(s.Rows) || !s.HasKey(key) {
		return s, false
	}
	out := s
	out.Rows = append([]Row(nil), s.Rows...)
	out.Rows[row] = s.Rows[row].With(key, value)
	return out, true
}

// AddExtraColumn appends an extra column, back-fills every row with "" for
// it and returns the new sheet along with the column's key.
func (s Sheet) AddExtraColumn() (Sheet, string) {
	n := len(s.ExtraColumns)
	id := "extra_" + strconv.Itoa(n+1)
	for k := n + 2; s.HasKey(id); k++ {
		id = "extra_" + strconv.Itoa(k)
	}

	out := s
	out.ExtraColumns = append(append([]ExtraColumn{}, s.ExtraColumns...), ExtraColumn{
		ID:    id,
		Title: "Title " + strconv.Itoa(n+6),
	})
	out.Rows = make([]Row, len(s.Rows))
	for i, r := range s.Rows {
		out.Rows[i] = r.With(id, "")
	}
	return out, id
}

// AddHeaderGroup returns a sheet with g appended to its header groups.
func (s Sheet) AddHeaderGroup(g HeaderGroup) Sheet {
	out := s
	out.HeaderGroups = append(append([]HeaderGroup{}, s.HeaderGroups...), g)
	return out
}

// Normalize makes every row carry a value for every extra column and
// replaces nil lists with empty ones.
func (s Sheet) Normalize() Sheet {
	out := s.Clone()
	for i, r := range out.Rows {
		for _, ec := range out.ExtraColumns {
			if !r.Has(ec.ID) {
				r = r.With(ec.ID, "")
			}
		}
		out.Rows[i] = r
	}
	return out
}

// AsImported returns a copy with a fresh imported-<unix millis> id.
func (s Sheet) AsImported(now time.Time) Sheet {
	out := s.Normalize()
	out.ID = fmt.Sprintf("imported-%d", now.UnixMilli())
	return out
}
