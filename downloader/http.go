package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
)

// Client defines a generic interface for http clients.
type Client interface {
	Do(ctx context.Context, request *Request) (*Response, error)
}

// HttpClient implements Client using the standard library's http client.
type HttpClient struct {
	client *http.Client
}

// NewHttpClient creates a HttpClient
func NewHttpClient(client *http.Client) HttpClient {
	return HttpClient{client: client}
}

// NewPooledHttpClient creates a HttpClient over a fresh pooled client from
// [cleanhttp], so crawls do not share transport state with the rest of the
// process.
func NewPooledHttpClient() HttpClient {
	return HttpClient{client: cleanhttp.DefaultPooledClient()}
}

// Do implements Client.Do
func (c HttpClient) Do(ctx context.Context, request *Request) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, request.Method, request.Url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new http request: %w", err)
	}
	for k, values := range request.Headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do http request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read http body: %w", err)
	}

	endUrl := res.Request.URL
	loc, err := res.Location()
	if err == nil {
		endUrl = loc
	}

	return &Response{
		request: request,
		status:  res.StatusCode,
		url:     endUrl,
		headers: res.Header,
		body:    body,
	}, nil
}
