package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinkando/smartsheet-columns/model"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, JSON(&buf, onboardingResult()))

	expected := `[
  {
    "position": 1,
    "title": "Primary Column",
    "id": 123456789012,
    "type": "TEXT_NUMBER",
    "primary": true
  },
  {
    "position": 2,
    "title": "Status",
    "id": 223344556677,
    "type": "PICKLIST",
    "primary": false
  },
  {
    "position": 3,
    "title": "Due Date",
    "id": 998877665544,
    "type": "DATE",
    "primary": false
  }
]
`
	require.Equal(t, expected, buf.String())
}

func TestJSONMissingValuesAreNull(t *testing.T) {
	result := model.SheetResult{
		Name:    "Sparse",
		Columns: []model.ColumnRow{{Position: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, result))

	expected := `[
  {
    "position": 1,
    "title": null,
    "id": null,
    "type": null,
    "primary": false
  }
]
`
	require.Equal(t, expected, buf.String())
}

func TestJSONEmptySheetIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, JSON(&buf, model.SheetResult{Name: "Empty", Columns: []model.ColumnRow{}}))

	require.Equal(t, "[]\n", buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	result := onboardingResult()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, result))

	var parsed []model.ColumnRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Equal(t, result.Columns, parsed)
}
