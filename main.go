package main

import (
	"bytes"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/ratelimit"

	"github.com/kinkando/smartsheet-columns/config"
	"github.com/kinkando/smartsheet-columns/model"
	"github.com/kinkando/smartsheet-columns/pkg/logger"
	"github.com/kinkando/smartsheet-columns/pkg/option"
	"github.com/kinkando/smartsheet-columns/pkg/smartsheet"
	"github.com/kinkando/smartsheet-columns/render"
	"github.com/kinkando/smartsheet-columns/service"
)

// requestsPerMinute mirrors the documented Smartsheet API budget per token.
const requestsPerMinute = 300

var (
	accessToken string
	sheetID     string
	format      string
	timeout     int
	debug       bool
	output      string
	baseURL     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartsheet-columns",
		Short: "List the columns of a Smartsheet sheet",
		Long: `smartsheet-columns fetches one sheet from the Smartsheet API and prints
its column positions, titles, ids and types as a table, CSV, JSON or an
xlsx workbook. Only the rendered payload goes to stdout, everything else
goes to stderr.`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&accessToken, "access-token", "", "Smartsheet access token (overrides SMARTSHEET_ACCESS_TOKEN)")
	rootCmd.Flags().StringVar(&sheetID, "sheet-id", "", "sheet id to inspect (overrides SMARTSHEET_SHEET_ID)")
	rootCmd.Flags().StringVar(&format, "format", "table", "output format: table, csv, json or xlsx")
	rootCmd.Flags().IntVar(&timeout, "timeout", 30, "HTTP timeout in seconds")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log each fetch attempt to stderr")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write the payload to a file instead of stdout (required for xlsx)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Smartsheet API base URL (overrides SMARTSHEET_BASE_URL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(config.Flags{
		AccessToken: accessToken,
		SheetID:     sheetID,
		Format:      format,
		Timeout:     timeout,
		Debug:       debug,
		Output:      output,
		BaseURL:     baseURL,
	})
	if err != nil {
		return err
	}

	logger.New(cfg.Debug)
	defer logger.Sync()

	client, err := smartsheet.NewClient(
		option.WithSmartsheetClientAccessToken(cfg.AccessToken),
		option.WithSmartsheetClientBaseURL(cfg.BaseURL),
		option.WithSmartsheetClientTimeout(cfg.Timeout),
		option.WithSmartsheetClientRateLimiter(ratelimit.New(requestsPerMinute, ratelimit.Per(time.Minute))),
	)
	if err != nil {
		return err
	}

	result, err := service.NewColumnService(client).ListColumns(cmd.Context(), cfg.SheetID)
	if err != nil {
		return err
	}

	if cfg.Format == model.FormatXLSX {
		return render.XLSX(cfg.Output, result)
	}

	var payload bytes.Buffer
	if err := render.Render(&payload, cfg.Format, result); err != nil {
		return err
	}
	if cfg.Output != "" {
		return os.WriteFile(cfg.Output, payload.Bytes(), 0o644)
	}

	_, err = os.Stdout.Write(payload.Bytes())
	return err
}
