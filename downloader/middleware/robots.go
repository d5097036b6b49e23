package middleware

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nvila/wikidex/downloader"
	"github.com/nvila/wikidex/telemetry"

	"github.com/temoto/robotstxt"
)

// Robots checks each request against the robots.txt of its host and drops
// requests the crawl agent is not allowed to make.
//
// robots.txt files are fetched with the given client and kept per host for
// the lifetime of the middleware.
type Robots struct {
	client downloader.Client
	agent  string
	hosts  map[string]*robotstxt.Group
}

// NewRobots creates a Robots middleware for the given user agent string.
func NewRobots(client downloader.Client, agent string) *Robots {
	return &Robots{
		client: client,
		agent:  agent,
		hosts:  map[string]*robotstxt.Group{},
	}
}

func (r *Robots) group(ctx context.Context, u *url.URL) *robotstxt.Group {
	group, ok := r.hosts[u.Host]
	if ok {
		return group
	}

	robotsUrl := &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/robots.txt"}
	res, err := r.client.Do(ctx, downloader.GETRequest(robotsUrl))
	if err != nil {
		telemetry.Warn("robots", "fetch robots.txt", "host", u.Host, "err", err)
		r.hosts[u.Host] = nil
		return nil
	}

	data, err := robotstxt.FromStatusAndBytes(res.Status(), res.RawBody())
	if err != nil {
		telemetry.Warn("robots", "parse robots.txt", "host", u.Host, "err", err)
		r.hosts[u.Host] = nil
		return nil
	}

	group = data.FindGroup(r.agent)
	r.hosts[u.Host] = group
	return group
}

func (r *Robots) HandleRequest(ctx context.Context, req *downloader.Request, meta downloader.RequestMetadata) (*downloader.Response, error) {
	group := r.group(ctx, req.Url)
	if group == nil {
		return nil, nil
	}
	if !group.Test(req.Url.Path) {
		return nil, downloader.DroppedRequest(fmt.Errorf(
			"robots: '%s' is disallowed for agent '%s'", req.Url.String(), r.agent,
		))
	}
	return nil, nil
}

func (r *Robots) HandleResponse(ctx context.Context, res *downloader.Response, meta downloader.ResponseMetadata) error {
	return nil
}
