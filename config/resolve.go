package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/envconfig"
	"github.com/kinkando/smartsheet-columns/pkg/smartsheet"
)

var validate = validator.New()

// Flags carries the raw command line values. SheetID and Timeout arrive as
// the user typed them; Resolve owns parsing so a bad value surfaces as a
// configuration error, not a flag usage error.
type Flags struct {
	AccessToken string
	SheetID     string
	Format      string
	Timeout     int
	Debug       bool
	Output      string
	BaseURL     string
}

// Resolve merges flags with environment variables, an explicit flag winning
// over its environment counterpart, and returns the immutable configuration
// of this invocation. No network call happens here.
func Resolve(flags Flags) (model.Config, error) {
	var env Config
	if err := envconfig.Parse(&env); err != nil {
		return model.Config{}, model.NewConfigError("environment", err.Error())
	}

	accessToken := firstNonEmpty(flags.AccessToken, env.Smartsheet.AccessToken)
	if accessToken == "" {
		return model.Config{}, model.NewConfigError("access token", "set --access-token or SMARTSHEET_ACCESS_TOKEN")
	}

	rawSheetID := firstNonEmpty(flags.SheetID, env.Smartsheet.SheetID)
	if rawSheetID == "" {
		return model.Config{}, model.NewConfigError("sheet id", "set --sheet-id or SMARTSHEET_SHEET_ID")
	}
	sheetID, err := strconv.ParseInt(rawSheetID, 10, 64)
	if err != nil {
		return model.Config{}, model.NewConfigError("sheet id", fmt.Sprintf("%q is not an integer", rawSheetID))
	}

	cfg := model.Config{
		AccessToken: accessToken,
		SheetID:     sheetID,
		Format:      model.Format(flags.Format),
		Timeout:     time.Duration(flags.Timeout) * time.Second,
		Debug:       flags.Debug,
		Output:      flags.Output,
		BaseURL:     firstNonEmpty(flags.BaseURL, env.Smartsheet.BaseURL, smartsheet.DefaultBaseURL),
	}
	if err := validate.Struct(cfg); err != nil {
		return model.Config{}, configError(cfg, err)
	}

	return cfg, nil
}

// configError turns the first validator failure into the user facing
// message for that field.
func configError(cfg model.Config, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return model.NewConfigError("flags", err.Error())
	}

	switch field := validationErrors[0]; field.StructField() {
	case "SheetID":
		return model.NewConfigError("sheet id", "must be a positive integer")
	case "Format":
		return model.NewConfigError("format", fmt.Sprintf("%q is not one of table, csv, json or xlsx", cfg.Format))
	case "Timeout":
		return model.NewConfigError("timeout", "must be a positive number of seconds")
	case "Output":
		return model.NewConfigError("output", "xlsx is a binary format, pass --output to choose the file")
	case "BaseURL":
		return model.NewConfigError("base url", fmt.Sprintf("%q is not a valid URL", cfg.BaseURL))
	default:
		return model.NewConfigError("flags", fmt.Sprintf("%s failed %s validation", field.StructField(), field.Tag()))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
