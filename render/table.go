package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/util"
)

var tableHeaders = []string{"#", "Title", "ID", "Type"}

// Table writes the human readable layout: a title line naming the sheet,
// then one row per column. Every cell is padded to the widest value of its
// column, the position column right aligned, the rest left aligned, with
// two spaces between columns.
func Table(w io.Writer, result model.SheetResult) error {
	rows := make([][]string, 0, len(result.Columns))
	for _, col := range result.Columns {
		rows = append(rows, []string{
			strconv.Itoa(col.Position),
			util.Value(col.Title),
			formatID(col.ID),
			util.Value(col.Type),
		})
	}

	widths := columnWidths(tableHeaders, rows)

	if _, err := fmt.Fprintf(w, "Columns for sheet %q:\n", result.Name); err != nil {
		return fmt.Errorf("render: table: %v", err)
	}
	if err := writeTableRow(w, tableHeaders, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTableRow(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if width := utf8.RuneCountInString(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	return widths
}

func writeTableRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i], i == 0)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " ")); err != nil {
		return fmt.Errorf("render: table: %v", err)
	}

	return nil
}

func pad(cell string, width int, alignRight bool) string {
	gap := width - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	if alignRight {
		return strings.Repeat(" ", gap) + cell
	}

	return cell + strings.Repeat(" ", gap)
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}

	return strconv.FormatInt(*id, 10)
}
