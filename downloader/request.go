package downloader

import (
	"net/http"
	"net/url"
)

// Request represents a standard HTTP request. It is not concurrency-safe.
//
// The crawler only ever issues bodyless GET requests, so there is no body
// handling here; headers are still overridable by middleware.
type Request struct {
	Method  string
	Url     *url.URL
	Headers http.Header
}

// SetHeader sets an http header on the request.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = http.Header{}
	}
	r.Headers.Set(key, value)
	return r
}

// MustParseUrl attempts to parse the given rawUrl into a [*url.URL],
// if an error is encountered, it panics.
func MustParseUrl(rawUrl string) *url.URL {
	res, err := url.Parse(rawUrl)
	if err != nil {
		panic(err)
	}
	return res
}

// NewRequest creates a new request with no headers.
func NewRequest(method string, url *url.URL) *Request {
	return &Request{Method: method, Url: url}
}

// GETRequest returns a GET request with no headers.
func GETRequest(url *url.URL) *Request {
	return &Request{Method: http.MethodGet, Url: url}
}

// HEADRequest returns a HEAD request with no headers.
func HEADRequest(url *url.URL) *Request {
	return &Request{Method: http.MethodHead, Url: url}
}
