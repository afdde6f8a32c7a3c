package option

import (
	"time"

	"go.uber.org/ratelimit"
)

type SmartsheetClientOption interface {
	Apply(*SmartsheetClient)
}

type smartsheetClientOptionFunc func(*SmartsheetClient)

func (f smartsheetClientOptionFunc) Apply(o *SmartsheetClient) {
	f(o)
}

func WithSmartsheetClientAccessToken(accessToken string) SmartsheetClientOption {
	return smartsheetClientOptionFunc(func(o *SmartsheetClient) {
		o.AccessToken = accessToken
	})
}

func WithSmartsheetClientBaseURL(baseURL string) SmartsheetClientOption {
	return smartsheetClientOptionFunc(func(o *SmartsheetClient) {
		o.BaseURL = baseURL
	})
}

func WithSmartsheetClientUserAgent(userAgent string) SmartsheetClientOption {
	return smartsheetClientOptionFunc(func(o *SmartsheetClient) {
		o.UserAgent = userAgent
	})
}

// WithSmartsheetClientTimeout bounds each HTTP exchange. The deadline is
// handed to the underlying http.Client, nothing else enforces it.
func WithSmartsheetClientTimeout(timeout time.Duration) SmartsheetClientOption {
	return smartsheetClientOptionFunc(func(o *SmartsheetClient) {
		o.Timeout = timeout
	})
}

func WithSmartsheetClientRateLimiter(rateLimiter ratelimit.Limiter) SmartsheetClientOption {
	return smartsheetClientOptionFunc(func(o *SmartsheetClient) {
		o.RateLimiter = rateLimiter
	})
}

type SmartsheetClient struct {
	AccessToken string
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	RateLimiter ratelimit.Limiter
}
