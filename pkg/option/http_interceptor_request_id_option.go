package option

import "net/http"

type HTTPInterceptorRequestIDOption interface {
	Apply(*HTTPInterceptorRequestID)
}

type httpInterceptorRequestIDOptionFunc func(*HTTPInterceptorRequestID)

func (hirif httpInterceptorRequestIDOptionFunc) Apply(hiri *HTTPInterceptorRequestID) {
	hirif(hiri)
}

func WithHTTPInterceptorRequestIDTransport(transport http.RoundTripper) HTTPInterceptorRequestIDOption {
	return httpInterceptorRequestIDOptionFunc(func(hiri *HTTPInterceptorRequestID) {
		hiri.Transport = transport
	})
}

func WithHTTPInterceptorRequestIDUserAgent(userAgent string) HTTPInterceptorRequestIDOption {
	return httpInterceptorRequestIDOptionFunc(func(hiri *HTTPInterceptorRequestID) {
		hiri.UserAgent = userAgent
	})
}

type HTTPInterceptorRequestID struct {
	Transport http.RoundTripper
	UserAgent string
}
