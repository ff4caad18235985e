package geo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"urbanscribe/internal/geo"
	"urbanscribe/pkg/utils"
)

type fakeProvider struct {
	calls  int
	currFn func(ctx context.Context) (geo.Reading, error)
}

func (f *fakeProvider) CurrentLocation(ctx context.Context) (geo.Reading, error) {
	f.calls++
	if f.currFn != nil {
		return f.currFn(ctx)
	}
	return geo.Reading{Latitude: 1, Longitude: 2, At: time.Now()}, nil
}

func TestStaticProvider(t *testing.T) {
	p := &geo.StaticProvider{Latitude: 40.0, Longitude: -74.0, Accuracy: 15}

	r, err := p.CurrentLocation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Latitude != 40.0 || r.Longitude != -74.0 {
		t.Errorf("got (%v, %v)", r.Latitude, r.Longitude)
	}
	if r.Accuracy == nil || *r.Accuracy != 15 {
		t.Errorf("expected accuracy 15, got %v", r.Accuracy)
	}
	if r.At.IsZero() {
		t.Error("reading should be timestamped")
	}
}

func TestCachedProvider_ServesCachedReading(t *testing.T) {
	inner := &fakeProvider{}
	p := geo.NewCachedProvider(inner, time.Second, time.Minute)

	if _, err := p.CurrentLocation(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.CurrentLocation(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("second lookup within maxAge should come from cache, inner called %d times", inner.calls)
	}
}

func TestCachedProvider_LookupFailure(t *testing.T) {
	inner := &fakeProvider{
		currFn: func(ctx context.Context) (geo.Reading, error) {
			return geo.Reading{}, errors.New("permission denied")
		},
	}
	p := geo.NewCachedProvider(inner, time.Second, time.Minute)

	_, err := p.CurrentLocation(context.Background())
	if !errors.Is(err, utils.ErrLocationUnavailable) {
		t.Errorf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestCachedProvider_BoundedWait(t *testing.T) {
	inner := &fakeProvider{
		currFn: func(ctx context.Context) (geo.Reading, error) {
			<-ctx.Done()
			return geo.Reading{}, ctx.Err()
		},
	}
	p := geo.NewCachedProvider(inner, 20*time.Millisecond, time.Minute)

	start := time.Now()
	_, err := p.CurrentLocation(context.Background())
	if !errors.Is(err, utils.ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("lookup was not bounded, took %v", elapsed)
	}
}
