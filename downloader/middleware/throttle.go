package middleware

import (
	"context"

	"github.com/nvila/wikidex/downloader"

	"golang.org/x/time/rate"
)

// Throttle limits crawling speed to ease load on website servers.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle that allows at most perSecond requests per
// second with the given burst.
func NewThrottle(perSecond float64, burst int) Throttle {
	return Throttle{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (t Throttle) HandleRequest(ctx context.Context, req *downloader.Request, meta downloader.RequestMetadata) (*downloader.Response, error) {
	err := t.limiter.Wait(ctx)
	if err != nil {
		return nil, downloader.DroppedRequest(err)
	}
	return nil, nil
}

func (t Throttle) HandleResponse(ctx context.Context, res *downloader.Response, meta downloader.ResponseMetadata) error {
	return nil
}
