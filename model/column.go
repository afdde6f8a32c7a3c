package model

// ColumnRow is one column of the remote sheet, flattened for rendering.
// Position is assigned 1-based over the iteration order of the API response,
// not taken from the API's own index field. Title, ID and Type stay pointers
// so that fields the API omitted render as null/empty instead of zero values.
type ColumnRow struct {
	Position int     `json:"position" csv:"position"`
	Title    *string `json:"title" csv:"title"`
	ID       *int64  `json:"id" csv:"id"`
	Type     *string `json:"type" csv:"type"`
	Primary  bool    `json:"primary" csv:"primary"`
}

// SheetResult holds the outcome of a single invocation: the sheet name and
// its columns in API order.
type SheetResult struct {
	Name    string
	Columns []ColumnRow
}
