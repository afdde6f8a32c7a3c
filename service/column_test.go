package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/option"
	"github.com/kinkando/smartsheet-columns/pkg/smartsheet"
	"github.com/kinkando/smartsheet-columns/pkg/util"
)

type stubResponse struct {
	sheet *smartsheet.Sheet
	err   error
}

type stubSmartsheetClient struct {
	calls     int
	responses []stubResponse
}

func (s *stubSmartsheetClient) GetSheet(ctx context.Context, sheetID int64, opts ...option.SmartsheetGetSheetOption) (*smartsheet.Sheet, error) {
	defer func() { s.calls++ }()
	if s.calls < len(s.responses) {
		response := s.responses[s.calls]
		return response.sheet, response.err
	}

	return nil, errors.New("unexpected extra call")
}

func onboardingSheet() *smartsheet.Sheet {
	return &smartsheet.Sheet{
		ID:   4583173393803140,
		Name: "Customer Onboarding",
		Columns: []smartsheet.Column{
			{ID: util.Pointer[int64](123456789012), Index: util.Pointer[int64](0), Title: util.Pointer("Primary Column"), Type: util.Pointer("TEXT_NUMBER"), Primary: util.Pointer(true)},
			{ID: util.Pointer[int64](223344556677), Index: util.Pointer[int64](1), Title: util.Pointer("Status"), Type: util.Pointer("PICKLIST")},
			{ID: util.Pointer[int64](998877665544), Index: util.Pointer[int64](2), Title: util.Pointer("Due Date"), Type: util.Pointer("DATE")},
		},
	}
}

func TestListColumns(t *testing.T) {
	client := &stubSmartsheetClient{responses: []stubResponse{{sheet: onboardingSheet()}}}

	result, err := NewColumnService(client).ListColumns(context.Background(), 4583173393803140)

	require.NoError(t, err)
	require.Equal(t, 1, client.calls)
	require.Equal(t, "Customer Onboarding", result.Name)
	require.Equal(t, []model.ColumnRow{
		{Position: 1, Title: util.Pointer("Primary Column"), ID: util.Pointer[int64](123456789012), Type: util.Pointer("TEXT_NUMBER"), Primary: true},
		{Position: 2, Title: util.Pointer("Status"), ID: util.Pointer[int64](223344556677), Type: util.Pointer("PICKLIST")},
		{Position: 3, Title: util.Pointer("Due Date"), ID: util.Pointer[int64](998877665544), Type: util.Pointer("DATE")},
	}, result.Columns)
}

func TestListColumnsEmptySheet(t *testing.T) {
	client := &stubSmartsheetClient{responses: []stubResponse{
		{sheet: &smartsheet.Sheet{Name: "Blank"}},
	}}

	result, err := NewColumnService(client).ListColumns(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, "Blank", result.Name)
	require.NotNil(t, result.Columns)
	require.Empty(t, result.Columns)
}

func TestListColumnsRetriesOnce(t *testing.T) {
	client := &stubSmartsheetClient{responses: []stubResponse{
		{err: errors.New("connection reset")},
		{sheet: onboardingSheet()},
	}}

	result, err := NewColumnService(client).ListColumns(context.Background(), 4583173393803140)

	require.NoError(t, err)
	require.Equal(t, 2, client.calls)
	require.Len(t, result.Columns, 3)
}

func TestListColumnsGivesUpAfterSecondFailure(t *testing.T) {
	lastErr := errors.New("connection reset by peer")
	client := &stubSmartsheetClient{responses: []stubResponse{
		{err: errors.New("i/o timeout")},
		{err: lastErr},
	}}

	_, err := NewColumnService(client).ListColumns(context.Background(), 4583173393803140)

	require.Equal(t, 2, client.calls)

	var fetchErr *model.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, 2, fetchErr.Attempts)
	require.ErrorIs(t, err, lastErr)
	require.ErrorContains(t, err, "connection reset by peer")
}

func TestListColumnsRetriesAuthFailureLikeAnyOther(t *testing.T) {
	client := &stubSmartsheetClient{responses: []stubResponse{
		{err: &smartsheet.APIError{StatusCode: 401, ErrorCode: 1002, Message: "Your Access Token is invalid."}},
		{sheet: onboardingSheet()},
	}}

	result, err := NewColumnService(client).ListColumns(context.Background(), 4583173393803140)

	require.NoError(t, err)
	require.Equal(t, 2, client.calls)
	require.Len(t, result.Columns, 3)
}
