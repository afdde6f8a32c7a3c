package config

type Config struct {
	Smartsheet SmartsheetConfig `envPrefix:"SMARTSHEET_"`
}
