package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/util"
	"github.com/xuri/excelize/v2"
)

var xlsxHeaders = []string{"#", "Title", "ID", "Type", "Primary"}

// XLSX writes the columns to path as a single sheet workbook. The tab is
// named after the source sheet, with characters Excel forbids replaced.
func XLSX(path string, result model.SheetResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := sheetTabName(result.Name)
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("render: xlsx: %v", err)
	}

	header := make([]any, len(xlsxHeaders))
	for i, h := range xlsxHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("render: xlsx: %v", err)
	}

	for index, col := range result.Columns {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return fmt.Errorf("render: xlsx: %v", err)
		}
		row := []any{col.Position, cellValue(col.Title), cellValue(col.ID), cellValue(col.Type), col.Primary}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("render: xlsx: %v", err)
		}
	}

	if err := fitColumnWidths(f, sheetName, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("render: xlsx: %v", err)
	}

	return nil
}

// fitColumnWidths sizes each workbook column to its longest value, the same
// measurement the table layout uses.
func fitColumnWidths(f *excelize.File, sheetName string, result model.SheetResult) error {
	rows := make([][]string, 0, len(result.Columns))
	for _, col := range result.Columns {
		rows = append(rows, []string{
			strconv.Itoa(col.Position),
			util.Value(col.Title),
			formatID(col.ID),
			util.Value(col.Type),
			strconv.FormatBool(col.Primary),
		})
	}

	for i, width := range columnWidths(xlsxHeaders, rows) {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("render: xlsx: %v", err)
		}
		if err := f.SetColWidth(sheetName, colName, colName, float64(width)+2); err != nil {
			return fmt.Errorf("render: xlsx: %v", err)
		}
	}

	return nil
}

func cellValue[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}

// sheetTabName makes name acceptable as an Excel tab: non empty, at most 31
// characters, none of the reserved punctuation.
func sheetTabName(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)

	if sanitized == "" {
		return "Columns"
	}
	if utf8.RuneCountInString(sanitized) > 31 {
		sanitized = string([]rune(sanitized)[:31])
	}

	return sanitized
}
