package service

import (
	"context"
	"time"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/logger"
	"github.com/kinkando/smartsheet-columns/pkg/smartsheet"
	"github.com/kinkando/smartsheet-columns/pkg/util"
)

const (
	fetchAttempts  = 2
	fetchRetryWait = 500 * time.Millisecond
)

type Column interface {
	ListColumns(ctx context.Context, sheetID int64) (model.SheetResult, error)
}

type column struct {
	smartsheet smartsheet.Client
}

func NewColumnService(smartsheetClient smartsheet.Client) Column {
	return &column{
		smartsheet: smartsheetClient,
	}
}

// ListColumns fetches the sheet and flattens its column metadata into rows
// ordered the way the API returned them, positions numbered from 1.
func (s *column) ListColumns(ctx context.Context, sheetID int64) (model.SheetResult, error) {
	sheet, err := s.fetchSheet(ctx, sheetID)
	if err != nil {
		return model.SheetResult{}, err
	}

	result := model.SheetResult{
		Name:    sheet.Name,
		Columns: make([]model.ColumnRow, 0, len(sheet.Columns)),
	}
	for index, col := range sheet.Columns {
		result.Columns = append(result.Columns, model.ColumnRow{
			Position: index + 1,
			Title:    col.Title,
			ID:       col.ID,
			Type:     col.Type,
			Primary:  util.Value(col.Primary),
		})
	}

	return result, nil
}

// fetchSheet retries every failure the same way, an auth error exactly like
// a timeout, with a fixed wait between attempts.
func (s *column) fetchSheet(ctx context.Context, sheetID int64) (*smartsheet.Sheet, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(fetchRetryWait)
		}

		sheet, err := s.smartsheet.GetSheet(ctx, sheetID)
		if err == nil {
			return sheet, nil
		}

		lastErr = err
		logger.Debugf("service: column: fetch sheet %d: attempt %d/%d failed: %v", sheetID, attempt, fetchAttempts, err)
	}

	return nil, model.NewFetchError(fetchAttempts, lastErr)
}
