package render

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.xlsx")

	require.NoError(t, XLSX(path, onboardingResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Customer Onboarding"}, f.GetSheetList())

	rows, err := f.GetRows("Customer Onboarding")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"#", "Title", "ID", "Type", "Primary"},
		{"1", "Primary Column", "123456789012", "TEXT_NUMBER", "TRUE"},
		{"2", "Status", "223344556677", "PICKLIST", "FALSE"},
		{"3", "Due Date", "998877665544", "DATE", "FALSE"},
	}, rows)
}

func TestSheetTabName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Customer Onboarding", expected: "Customer Onboarding"},
		{name: "empty", input: "", expected: "Columns"},
		{name: "reserved characters", input: "Q1: A/B [test]?*", expected: "Q1_ A_B _test___"},
		{name: "truncated", input: strings.Repeat("x", 40), expected: strings.Repeat("x", 31)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, sheetTabName(test.input))
		})
	}
}
