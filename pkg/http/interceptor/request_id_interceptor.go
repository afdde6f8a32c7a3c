package httpinterceptor

import (
	"net/http"

	"github.com/kinkando/smartsheet-columns/pkg/generator"
	"github.com/kinkando/smartsheet-columns/pkg/logger"
	"github.com/kinkando/smartsheet-columns/pkg/option"
)

const requestIDHeader = "X-Request-Id"

type RequestIDTransport struct {
	Transport http.RoundTripper
	UserAgent string
}

// NewRequestIDTransport stamps every outbound request with a fresh
// X-Request-Id and, when configured, a User-Agent.
func NewRequestIDTransport(opts ...option.HTTPInterceptorRequestIDOption) *RequestIDTransport {
	hi := &option.HTTPInterceptorRequestID{
		Transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt.Apply(hi)
	}

	return &RequestIDTransport{
		Transport: hi.Transport,
		UserAgent: hi.UserAgent,
	}
}

func (rt *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := generator.UUID()

	// RoundTrip must not mutate the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set(requestIDHeader, requestID)
	if rt.UserAgent != "" {
		req.Header.Set("User-Agent", rt.UserAgent)
	}

	logger.Debugf("http: %s %s request_id=%s", req.Method, req.URL, requestID)
	return rt.Transport.RoundTrip(req)
}
