package sheet

import "strconv"

// Fixed field keys, in column order.
const (
	KeyJob       = "job"
	KeySubmitted = "submitted"
	KeyStatus    = "status"
	KeySubmitter = "submitter"
	KeyURL       = "url"
	KeyAssigned  = "assigned"
	KeyPriority  = "priority"
	KeyDue       = "due"
	KeyValue     = "value"
)

// FixedKeys lists the fixed fields in column order.
var FixedKeys = []string{
	KeyJob, KeySubmitted, KeyStatus, KeySubmitter, KeyURL,
	KeyAssigned, KeyPriority, KeyDue, KeyValue,
}

// Column index space landmarks.
const (
	RowNumberIndex  = 0
	TitleBlockStart = 1
	TitleBlockEnd   = 4
	FirstAssignable = 5
	FirstExtraIndex = 1 + 9
)

// Kind says how a column's cells behave.
type Kind int

const (
	KindRowNumber Kind = iota
	KindText
	KindChoice
	KindLink
	KindAmount
	KindAddColumn
)

// Align is the horizontal alignment of a column's cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Choice lists. The empty option means "unset".
var (
	StatusOptions   = []string{"", "In-process", "Need to start", "Complete", "Blocked"}
	PriorityOptions = []string{"", "High", "Medium", "Low"}
)

// Column describes one slot of the column index space.
type Column struct {
	Index   int
	Key     string // "" for the row number and the add-column slot
	Title   string
	Kind    Kind
	Align   Align
	Width   int // display cells
	Options []string
	Extra   bool
}

// Editable reports whether the column holds user data.
func (c Column) Editable() bool {
	return c.Key != ""
}

// IsChoice reports whether the column is edited through a choice list.
func (c Column) IsChoice() bool {
	return c.Kind == KindChoice
}

type fieldMeta struct {
	title   string
	kind    Kind
	align   Align
	width   int
	options []string
}

var fixedMeta = map[string]fieldMeta{
	KeyJob:       {"Job Request", KindText, AlignLeft, 30, nil},
	KeySubmitted: {"Submitted", KindText, AlignRight, 12, nil},
	KeyStatus:    {"Status", KindChoice, AlignCenter, 15, StatusOptions},
	KeySubmitter: {"Submitter", KindText, AlignLeft, 15, nil},
	KeyURL:       {"URL", KindLink, AlignLeft, 20, nil},
	KeyAssigned:  {"Assigned", KindText, AlignLeft, 16, nil},
	KeyPriority:  {"Priority", KindChoice, AlignCenter, 10, PriorityOptions},
	KeyDue:       {"Due Date", KindText, AlignRight, 12, nil},
	KeyValue:     {"Est. Value", KindAmount, AlignRight, 16, nil},
}

const (
	rowNumberWidth = 4
	extraWidth     = 14
	addColumnWidth = 5
)

// Columns returns the sheet's full column index space: the row number, the
// fixed fields, the extra columns in append order and the trailing
// add-column slot.
func (s Sheet) Columns() []Column {
	cols := make([]Column, 0, FirstExtraIndex+len(s.ExtraColumns)+1)
	cols = append(cols, Column{Index: RowNumberIndex, Title: "#", Kind: KindRowNumber, Align: AlignCenter, Width: rowNumberWidth})
	for i, key := range FixedKeys {
		m := fixedMeta[key]
		cols = append(cols, Column{
			Index:   1 + i,
			Key:     key,
			Title:   m.title,
			Kind:    m.kind,
			Align:   m.align,
			Width:   m.width,
			Options: m.options,
		})
	}
	for i, ec := range s.ExtraColumns {
		cols = append(cols, Column{
			Index: FirstExtraIndex + i,
			Key:   ec.ID,
			Title: ec.Title,
			Kind:  KindText,
			Width: extraWidth,
			Extra: true,
		})
	}
	cols = append(cols, Column{Index: len(cols), Title: "+", Kind: KindAddColumn, Align: AlignCenter, Width: addColumnWidth})
	return cols
}

// AddColumnIndex returns the index of the trailing add-column slot.
func (s Sheet) AddColumnIndex() int {
	return FirstExtraIndex + len(s.ExtraColumns)
}

// ColumnIndexOf resolves a column key to its index.
func (s Sheet) ColumnIndexOf(key string) (int, bool) {
	for i, k := range FixedKeys {
		if k == key {
			return 1 + i, true
		}
	}
	for i, ec := range s.ExtraColumns {
		if ec.ID == key {
			return FirstExtraIndex + i, true
		}
	}
	return 0, false
}

// ResolveColumnRef resolves a header-group span entry. Column keys win; an
// entry that is not a key but parses as an index inside the sheet (the add
// column slot excluded) is taken as that index.
func (s Sheet) ResolveColumnRef(ref string) (int, bool) {
	if idx, ok := s.ColumnIndexOf(ref); ok {
		return idx, true
	}
	idx, err := strconv.Atoi(ref)
	if err != nil || strconv.Itoa(idx) != ref {
		return 0, false
	}
	if idx < 0 || idx >= s.AddColumnIndex() {
		return 0, false
	}
	return idx, true
}

// HasKey reports whether key names a data column of the sheet.
func (s Sheet) HasKey(key string) bool {
	_, ok := s.ColumnIndexOf(key)
	return ok
}

// Keys returns every data column key in index order.
func (s Sheet) Keys() []string {
	keys := append([]string(nil), FixedKeys...)
	for _, ec := range s.ExtraColumns {
		keys = append(keys, ec.ID)
	}
	return keys
}
