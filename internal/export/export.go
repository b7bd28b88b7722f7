// Package export writes a sheet out as JSON, CSV or XLSX and reads sheets
// back in from JSON or YAML files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/sheet"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats in menu order.
var Formats = []Format{FormatJSON, FormatCSV, FormatXLSX}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.E(errors.Op("export.ParseFormat"), errors.KindInvalid, fmt.Sprintf("unknown format %q (want json, csv or xlsx)", s))
}

// Label is the menu text for f.
func (f Format) Label() string {
	switch f {
	case FormatJSON:
		return "Export as JSON"
	case FormatCSV:
		return "Export as CSV"
	case FormatXLSX:
		return "Export as Excel"
	}
	return string(f)
}

// safeName strips path separators so a sheet name can't escape the export
// directory.
func safeName(name string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "sheet"
	}
	return name
}

// Filename returns the file name a sheet exports to. JSON and XLSX replace
// spaces with underscores; CSV keeps the sheet name as is.
func Filename(s sheet.Sheet, f Format) string {
	name := safeName(s.Name)
	if f != FormatCSV {
		name = strings.Join(strings.Fields(name), "_")
		if name == "" {
			name = "sheet"
		}
	}
	return name + "." + string(f)
}

// Encode renders s in format f.
func Encode(s sheet.Sheet, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(s)
	case FormatCSV:
		return CSV(s)
	case FormatXLSX:
		return XLSX(s)
	}
	return nil, errors.E(errors.Op("export.Encode"), errors.KindInvalid, fmt.Sprintf("unknown format %q", f))
}

// WriteFile encodes s and writes it into dir, returning the path written.
func WriteFile(dir string, s sheet.Sheet, f Format) (string, error) {
	data, err := Encode(s, f)
	if err != nil {
		return "", errors.ExportFailed(string(f), s.ID, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.ExportFailed(string(f), s.ID, err)
	}
	path := filepath.Join(dir, Filename(s, f))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.ExportFailed(string(f), s.ID, err)
	}
	return path, nil
}
