package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/util"
)

// onboardingResult is the canonical three column sheet used across the
// renderer tests.
func onboardingResult() model.SheetResult {
	return model.SheetResult{
		Name: "Customer Onboarding",
		Columns: []model.ColumnRow{
			{Position: 1, Title: util.Pointer("Primary Column"), ID: util.Pointer[int64](123456789012), Type: util.Pointer("TEXT_NUMBER"), Primary: true},
			{Position: 2, Title: util.Pointer("Status"), ID: util.Pointer[int64](223344556677), Type: util.Pointer("PICKLIST")},
			{Position: 3, Title: util.Pointer("Due Date"), ID: util.Pointer[int64](998877665544), Type: util.Pointer("DATE")},
		},
	}
}

func TestRenderDispatch(t *testing.T) {
	for _, format := range []model.Format{model.FormatTable, model.FormatCSV, model.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, format, onboardingResult()))
			require.NotZero(t, buf.Len())
		})
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, model.Format("yaml"), onboardingResult())

	require.ErrorContains(t, err, `unsupported format "yaml"`)
	require.Zero(t, buf.Len())
}
