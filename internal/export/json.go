package export

import (
	"encoding/json"

	"github.com/zhubert/tally/internal/sheet"
)

// JSON renders the whole sheet with two-space indentation.
func JSON(s sheet.Sheet) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
