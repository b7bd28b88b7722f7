package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/sheet"
)

// ReadSheetFile reads one sheet from a .json, .yaml or .yml file. The sheet
// is padded with empty rows up to sheet.DefaultRowCount and normalized; its
// id is left for the caller to replace.
func ReadSheetFile(path string) (sheet.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sheet.Sheet{}, errors.E(errors.Op("export.ReadSheetFile"), errors.KindIO, err)
	}
	return DecodeSheet(data, filepath.Ext(path), path)
}

// DecodeSheet decodes a sheet given its file extension. source names the
// input in errors.
func DecodeSheet(data []byte, ext, source string) (sheet.Sheet, error) {
	var s sheet.Sheet
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return sheet.Sheet{}, errors.ImportDecodeFailed(source, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return sheet.Sheet{}, errors.ImportDecodeFailed(source, err)
		}
	default:
		return sheet.Sheet{}, errors.E(errors.Op("export.ReadSheetFile"), errors.KindInvalid,
			fmt.Sprintf("unsupported file type %q (want .json, .yaml or .yml)", ext))
	}

	if strings.TrimSpace(s.Name) == "" {
		return sheet.Sheet{}, errors.E(errors.Op("export.ReadSheetFile"), errors.KindInvalid,
			fmt.Sprintf("%s: sheet has no name", source))
	}
	if s.Title == "" {
		s.Title = s.Name
	}
	if n := sheet.DefaultRowCount - len(s.Rows); n > 0 {
		s.Rows = append(s.Rows, sheet.EmptyRows(n)...)
	}
	return s.Normalize(), nil
}
