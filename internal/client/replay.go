package client

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// ReplayOptions bounds a replay run.
type ReplayOptions struct {
	// Count is the number of requests to send; zero sends until ctx is done.
	Count int
	// Rate is the number of requests per second; zero sends back to back.
	Rate float64
}

// Replay sends req repeatedly and calls onResult with each response. It stops
// at the first request error and returns it, along with the number of
// requests that completed. A run ended by ctx returns a nil error.
func Replay(ctx context.Context, c *Client, req protocol.Request, opts ReplayOptions, onResult func(i int, resp protocol.Response)) (int, error) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	done := 0
	for opts.Count == 0 || done < opts.Count {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return done, nil
			}
			return done, err
		}
		resp, err := c.Clip(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return done, nil
			}
			return done, fmt.Errorf("request %d: %w", done, err)
		}
		if onResult != nil {
			onResult(done, resp)
		}
		done++
	}
	return done, nil
}
