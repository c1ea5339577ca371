package llm

import (
	"context"
	"sync"
	"time"
)

// RateLimitedProvider paces calls to the wrapped provider so that at most
// rpm requests start per minute. The serve path wraps the vendor with this
// so an auto-generate loop left running cannot exceed the configured rate.
type RateLimitedProvider struct {
	provider Provider
	interval time.Duration
	mu       sync.Mutex
	nextAt   time.Time
}

// NewRateLimitedProvider wraps provider with a minimum spacing of
// time.Minute/rpm between request starts. rpm <= 0 disables pacing.
func NewRateLimitedProvider(provider Provider, rpm int) Provider {
	if rpm <= 0 {
		return provider
	}
	return &RateLimitedProvider{
		provider: provider,
		interval: time.Minute / time.Duration(rpm),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := r.reserve(ctx); err != nil {
		return nil, err
	}
	return r.provider.Complete(ctx, req)
}

// reserve claims the next available start slot and sleeps until it arrives.
func (r *RateLimitedProvider) reserve(ctx context.Context) error {
	r.mu.Lock()
	now := time.Now()
	if r.nextAt.Before(now) {
		r.nextAt = now
	}
	wait := r.nextAt.Sub(now)
	r.nextAt = r.nextAt.Add(r.interval)
	r.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
