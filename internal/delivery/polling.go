package delivery

import (
	"context"
	"math/rand"
	"time"
)

const (
	PollingInitialInterval   = 2 * time.Second
	PollingMaxBackoff        = 30 * time.Second
	PollingBackoffMultiplier = 1.5
	PollingJitterFactor      = 0.3
)

// CheckFunc performs one poll. It reports done when polling should stop.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Config configures a Poller. Zero fields take the package defaults.
type Config struct {
	InitialInterval   time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
	JitterFactor      float64
}

// Poller runs a check repeatedly with exponential backoff.
type Poller struct {
	initial    time.Duration
	maxBackoff time.Duration
	multiplier float64
	jitter     float64
}

// NewPoller creates a poller from cfg.
func NewPoller(cfg Config) *Poller {
	p := &Poller{
		initial:    cfg.InitialInterval,
		maxBackoff: cfg.MaxBackoff,
		multiplier: cfg.BackoffMultiplier,
		jitter:     cfg.JitterFactor,
	}
	if p.initial <= 0 {
		p.initial = PollingInitialInterval
	}
	if p.maxBackoff <= 0 {
		p.maxBackoff = PollingMaxBackoff
	}
	if p.maxBackoff < p.initial {
		p.maxBackoff = p.initial
	}
	if p.multiplier < 1 {
		p.multiplier = PollingBackoffMultiplier
	}
	if p.jitter < 0 {
		p.jitter = 0
	}
	return p
}

// Run calls check immediately and then after each backoff interval until
// check reports done, returns an error, or ctx ends.
func (p *Poller) Run(ctx context.Context, check CheckFunc) error {
	interval := p.initial
	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		timer := time.NewTimer(p.withJitter(interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		interval = p.next(interval)
	}
}

// next returns the interval following current, capped at the max backoff.
func (p *Poller) next(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * p.multiplier)
	if next > p.maxBackoff {
		next = p.maxBackoff
	}
	return next
}

// withJitter adds up to jitter*interval of random delay.
func (p *Poller) withJitter(interval time.Duration) time.Duration {
	if p.jitter == 0 {
		return interval
	}
	return interval + time.Duration(rand.Float64()*p.jitter*float64(interval))
}
