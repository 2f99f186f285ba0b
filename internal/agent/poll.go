package agent

import (
	"context"
	"time"
)

// DefaultPollInterval is the delay between status checks in WaitForCompletion.
const DefaultPollInterval = time.Second

// WaitForCompletion polls Status every interval until the agent reports it
// is no longer active, then returns the result of LatestAnswer. A missing
// is_active field counts as active, so error envelopes keep the loop
// polling. When ctx expires first, the zero Envelope and ctx.Err() are
// returned.
func (c *Client) WaitForCompletion(ctx context.Context, interval time.Duration) (Envelope, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	for {
		if err := ctx.Err(); err != nil {
			return Envelope{}, err
		}

		status := c.Status(ctx)
		if !status.BoolField("is_active", true) {
			return c.LatestAnswer(ctx), nil
		}

		select {
		case <-ctx.Done():
			return Envelope{}, ctx.Err()
		case <-time.After(interval):
		}
	}
}
