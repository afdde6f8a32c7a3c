package smartsheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpinterceptor "github.com/kinkando/smartsheet-columns/pkg/http/interceptor"
	"github.com/kinkando/smartsheet-columns/pkg/option"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the public Smartsheet API endpoint.
	DefaultBaseURL = "https://api.smartsheet.com/2.0"

	defaultUserAgent = "smartsheet-columns/1.0"
	defaultTimeout   = 30 * time.Second
)

type Client interface {
	GetSheet(ctx context.Context, sheetID int64, opts ...option.SmartsheetGetSheetOption) (*Sheet, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(opts ...option.SmartsheetClientOption) (Client, error) {
	opt := &option.SmartsheetClient{
		BaseURL:   DefaultBaseURL,
		UserAgent: defaultUserAgent,
		Timeout:   defaultTimeout,
	}
	for _, o := range opts {
		o.Apply(opt)
	}

	if opt.AccessToken == "" {
		return nil, errors.New("smartsheet: access token is required")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opt.AccessToken})
	httpClient := oauth2.NewClient(context.Background(), tokenSource)
	httpClient.Timeout = opt.Timeout

	transport := httpClient.Transport
	if opt.RateLimiter != nil {
		transport = httpinterceptor.NewRateLimiterTransport(
			option.WithHTTPInterceptorRateLimiterTransport(transport),
			option.WithHTTPInterceptorRateLimiterRateLimiter(opt.RateLimiter),
		)
	}
	httpClient.Transport = httpinterceptor.NewRequestIDTransport(
		option.WithHTTPInterceptorRequestIDTransport(transport),
		option.WithHTTPInterceptorRequestIDUserAgent(opt.UserAgent),
	)

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opt.BaseURL, "/"),
	}, nil
}

// GetSheet fetches a single sheet with its full column metadata.
func (c *client) GetSheet(ctx context.Context, sheetID int64, opts ...option.SmartsheetGetSheetOption) (*Sheet, error) {
	opt := &option.SmartsheetGetSheet{}
	for _, o := range opts {
		o.Apply(opt)
	}

	endpoint := fmt.Sprintf("%s/sheets/%d", c.baseURL, sheetID)
	if len(opt.Includes) > 0 {
		query := url.Values{"include": []string{strings.Join(opt.Includes, ",")}}
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("smartsheet: GetSheet: unable to build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("smartsheet: GetSheet: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("smartsheet: GetSheet: unable to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp, body)
	}

	var sheet Sheet
	if err := json.Unmarshal(body, &sheet); err != nil {
		return nil, fmt.Errorf("smartsheet: GetSheet: unable to decode response: %v", err)
	}

	return &sheet, nil
}
