package model

import "time"

// Format selects the output rendering of the column list.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatXLSX  Format = "xlsx"
)

// Config is the fully resolved configuration of one invocation, assembled
// once from flags and environment variables and immutable afterwards. It is
// passed explicitly to the fetch pipeline; there is no global client state.
type Config struct {
	AccessToken string        `validate:"required"`
	SheetID     int64         `validate:"required,gt=0"`
	Format      Format        `validate:"required,oneof=table csv json xlsx"`
	Timeout     time.Duration `validate:"gt=0"`
	Debug       bool
	// Output redirects the rendered payload to a file. Empty means stdout.
	// The xlsx format writes a binary workbook and always needs a file.
	Output  string `validate:"required_if=Format xlsx"`
	BaseURL string `validate:"required,url"`
}
