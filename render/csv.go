package render

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/kinkando/smartsheet-columns/model"
)

// CSV writes one record per column under a machine readable header. The
// sheet name is not part of the payload.
func CSV(w io.Writer, result model.SheetResult) error {
	if err := gocsv.Marshal(&result.Columns, w); err != nil {
		return fmt.Errorf("render: csv: %v", err)
	}

	return nil
}
