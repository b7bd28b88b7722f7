package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zhubert/tally/internal/layout"
	"github.com/zhubert/tally/internal/sheet"
)

const (
	groupRow = 1
	titleRow = 2
	firstRow = 3

	maxSheetName = 31
)

// worksheetName makes a sheet name acceptable to Excel.
func worksheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	if name == "" {
		return "Sheet1"
	}
	return name
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// XLSX renders the sheet as a workbook with one worksheet: the grouped
// header row as merged, color-filled cells, the column titles, then the
// data rows. Column A holds row numbers.
func XLSX(s sheet.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	ws := worksheetName(s.Name)
	if err := f.SetSheetName("Sheet1", ws); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for _, seg := range layout.ForSheet(s) {
		if err := writeSegment(f, ws, s, seg, bold); err != nil {
			return nil, err
		}
	}

	for _, c := range s.Columns() {
		if c.Kind == sheet.KindAddColumn {
			continue
		}
		col := c.Index + 1
		if err := f.SetCellValue(ws, cellName(col, titleRow), c.Title); err != nil {
			return nil, err
		}
		colName, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(ws, colName, colName, float64(c.Width)+2); err != nil {
			return nil, err
		}
	}
	last := cellName(s.AddColumnIndex(), titleRow)
	if err := f.SetCellStyle(ws, cellName(1, titleRow), last, bold); err != nil {
		return nil, err
	}

	cols := dataColumns(s)
	for i, r := range s.Rows {
		row := firstRow + i
		if err := f.SetCellValue(ws, cellName(1, row), i+1); err != nil {
			return nil, err
		}
		for _, c := range cols {
			if err := f.SetCellStr(ws, cellName(c.Index+1, row), r.Cell(c.Key)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(ws, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      titleRow,
		TopLeftCell: cellName(2, firstRow),
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSegment(f *excelize.File, ws string, s sheet.Sheet, seg layout.Segment, bold int) error {
	start := cellName(seg.Start+1, groupRow)
	end := cellName(seg.End()+1, groupRow)

	switch seg.Kind {
	case layout.SegmentTitle:
		if err := f.SetCellValue(ws, start, s.Title); err != nil {
			return err
		}
		if seg.Span > 1 {
			if err := f.MergeCell(ws, start, end); err != nil {
				return err
			}
		}
		return f.SetCellStyle(ws, start, end, bold)

	case layout.SegmentGroup:
		if err := f.SetCellValue(ws, start, seg.Label); err != nil {
			return err
		}
		if seg.Span > 1 {
			if err := f.MergeCell(ws, start, end); err != nil {
				return err
			}
		}
		style, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{strings.TrimPrefix(seg.Color, "#")},
			},
		})
		if err != nil {
			return err
		}
		return f.SetCellStyle(ws, start, end, style)
	}
	return nil
}
