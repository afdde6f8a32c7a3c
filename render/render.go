package render

import (
	"fmt"
	"io"

	"github.com/kinkando/smartsheet-columns/model"
)

// Render writes result to w in the requested text format. The xlsx format
// is a binary workbook and goes through XLSX instead.
func Render(w io.Writer, format model.Format, result model.SheetResult) error {
	switch format {
	case model.FormatTable:
		return Table(w, result)
	case model.FormatCSV:
		return CSV(w, result)
	case model.FormatJSON:
		return JSON(w, result)
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}
