package smsc

import (
	"context"
	"errors"

	"github.com/brandshopru/smsc-go/internal/delivery"
)

// WaitForStatus polls the status of message id sent to phone until it is
// final, or until the predicate set with [WithStatusPredicate] accepts it.
// Polling backs off from the initial interval up to the maximum.
//
// When the wait times out a *StatusTimeoutError carrying the last status
// seen is returned. Vendor errors stop the wait and are returned as
// *APIError.
func (c *Client) WaitForStatus(ctx context.Context, id, phone string, opts ...WaitOption) (*StatusResult, error) {
	cfg := &waitConfig{
		timeout:   defaultWaitTimeout,
		predicate: (*StatusResult).Final,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.timeout <= 0 {
		cfg.timeout = defaultWaitTimeout
	}

	waitCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	poller := delivery.NewPoller(delivery.Config{
		InitialInterval: cfg.pollInterval,
		MaxBackoff:      cfg.maxInterval,
		JitterFactor:    delivery.PollingJitterFactor,
	})

	var last *StatusResult
	err := poller.Run(waitCtx, func(ctx context.Context) (bool, error) {
		status, err := c.Status(ctx, id, phone, 0)
		if err != nil {
			return false, err
		}
		last = status
		return cfg.predicate(status), nil
	})
	if err == nil {
		return last, nil
	}

	// Only the wait's own deadline counts as a timeout.
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return last, &StatusTimeoutError{
			ID:      id,
			Phone:   phone,
			Last:    last,
			Timeout: cfg.timeout.String(),
		}
	}
	return last, err
}
