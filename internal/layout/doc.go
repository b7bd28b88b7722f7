// Package layout turns a sheet's header groups into the grouped header row
// drawn above the column titles, and enforces the contiguous-run rule used
// while a new header group is being assembled.
//
// Both halves work purely on the column index space from sheet.Columns:
//
//	0      row number
//	1..4   title block, never assignable
//	5..    assignable columns (fixed fields, then extra columns)
//	last   add-column slot
package layout
