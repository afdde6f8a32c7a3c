package httpinterceptor

import (
	"net/http"
	"time"

	"github.com/kinkando/smartsheet-columns/pkg/option"
	"go.uber.org/ratelimit"
)

type RateLimiterTransport struct {
	Transport   http.RoundTripper
	RateLimiter ratelimit.Limiter
}

// NewRateLimiterTransport throttles outbound requests before they reach the
// wrapped transport. The default budget matches the Smartsheet API limit of
// 300 requests per minute per token.
func NewRateLimiterTransport(opts ...option.HTTPInterceptorRateLimiterOption) *RateLimiterTransport {
	hi := &option.HTTPInterceptorRateLimiter{
		Transport:   http.DefaultTransport,
		RateLimiter: ratelimit.New(300, ratelimit.Per(time.Minute)),
	}
	for _, opt := range opts {
		opt.Apply(hi)
	}

	return &RateLimiterTransport{
		Transport:   hi.Transport,
		RateLimiter: hi.RateLimiter,
	}
}

func (rt *RateLimiterTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.RateLimiter.Take()
	return rt.Transport.RoundTrip(req)
}
