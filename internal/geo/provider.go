package geo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"urbanscribe/pkg/utils"
)

// Reading is one geolocation fix. Accuracy is optional; At records when the
// fix was taken so the cache can judge staleness.
type Reading struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
	At        time.Time
}

// Provider abstracts a geolocation source. On the browser this would be the
// platform location API; on the server it is whatever stands in for it.
type Provider interface {
	CurrentLocation(ctx context.Context) (Reading, error)
}

// StaticProvider always reports the same configured coordinates. It backs the
// demo deployment and doubles as a test fixture.
type StaticProvider struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

func (p *StaticProvider) CurrentLocation(_ context.Context) (Reading, error) {
	acc := p.Accuracy
	return Reading{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Accuracy:  &acc,
		At:        time.Now(),
	}, nil
}

// CachedProvider decorates another Provider with a bounded wait per lookup
// and tolerance for a recent cached reading in place of a fresh one.
type CachedProvider struct {
	mu      sync.Mutex
	inner   Provider
	timeout time.Duration
	maxAge  time.Duration
	last    *Reading
}

const (
	DefaultLookupTimeout = 10 * time.Second
	DefaultMaxAge        = 60 * time.Second
)

func NewCachedProvider(inner Provider, timeout, maxAge time.Duration) *CachedProvider {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if maxAge < 0 {
		maxAge = DefaultMaxAge
	}
	return &CachedProvider{inner: inner, timeout: timeout, maxAge: maxAge}
}

// CurrentLocation serves a cached reading younger than maxAge, otherwise
// performs one lookup bounded by timeout. A failed lookup does not evict the
// cache; the next call within maxAge may still be served from it.
func (p *CachedProvider) CurrentLocation(ctx context.Context) (Reading, error) {
	p.mu.Lock()
	if p.last != nil && time.Since(p.last.At) <= p.maxAge {
		r := *p.last
		p.mu.Unlock()
		return r, nil
	}
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	r, err := p.inner.CurrentLocation(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Reading{}, fmt.Errorf("%w: timed out after %s", utils.ErrLocationUnavailable, p.timeout)
		}
		return Reading{}, fmt.Errorf("%w: %v", utils.ErrLocationUnavailable, err)
	}
	if r.At.IsZero() {
		r.At = time.Now()
	}

	p.mu.Lock()
	p.last = &r
	p.mu.Unlock()
	return r, nil
}
