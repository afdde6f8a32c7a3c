package smartsheet

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the error payload the Smartsheet API returns alongside a
// non-2xx status.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  int    `json:"errorCode"`
	Message    string `json:"message"`
	RefID      string `json:"refId"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("smartsheet: %d %s (errorCode %d, refId %s)", e.StatusCode, e.Message, e.ErrorCode, e.RefID)
}

// HTTPStatusError reports a non-2xx response whose body is not the API's
// JSON error shape, e.g. a proxy error page.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("smartsheet: %s: %s", e.Status, strings.TrimSpace(e.Body))
}

func newStatusError(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
}
