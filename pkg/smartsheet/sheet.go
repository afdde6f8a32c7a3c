package smartsheet

import "time"

// Sheet is the subset of the get-sheet response this tool consumes. Column
// fields are pointers so values the API omits survive as nil instead of a
// zero value.
type Sheet struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Permalink     string     `json:"permalink"`
	TotalRowCount int64      `json:"totalRowCount"`
	CreatedAt     *time.Time `json:"createdAt"`
	ModifiedAt    *time.Time `json:"modifiedAt"`
	Columns       []Column   `json:"columns"`
}

type Column struct {
	ID      *int64  `json:"id"`
	Index   *int64  `json:"index"`
	Title   *string `json:"title"`
	Type    *string `json:"type"`
	Primary *bool   `json:"primary"`
	Hidden  *bool   `json:"hidden"`
	Locked  *bool   `json:"locked"`
	Width   *int64  `json:"width"`
}
