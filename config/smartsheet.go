package config

// SmartsheetConfig is the environment side of the configuration. SheetID
// stays a string here so a malformed value can be reported as a
// configuration error instead of a silent zero.
type SmartsheetConfig struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	SheetID     string `env:"SHEET_ID"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://api.smartsheet.com/2.0"`
}
