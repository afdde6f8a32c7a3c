package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kinkando/smartsheet-columns/model"
)

// JSON writes the columns as a 2-space indented array followed by a
// newline, ready for piping into jq.
func JSON(w io.Writer, result model.SheetResult) error {
	payload, err := json.MarshalIndent(result.Columns, "", "  ")
	if err != nil {
		return fmt.Errorf("render: json: %v", err)
	}
	payload = append(payload, '\n')

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("render: json: %v", err)
	}

	return nil
}
