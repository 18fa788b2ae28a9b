// Package location produces a best-effort coordinate pair via a strict
// priority chain: cached value, then the geolocation provider bounded by a
// timeout, then an IP-based lookup.
package location

import (
	"context"
	"encoding/json"
	"time"

	"tasker/internal/domain"
	"tasker/internal/errors"
	"tasker/internal/logging"
	"tasker/internal/storage"
)

// Geolocator supplies a device position. The platform geolocation prompt of
// the browser world maps to this interface; implementations may block until
// the position is known.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinates, error)
}

// GeolocatorFunc adapts a function to the Geolocator interface
type GeolocatorFunc func(ctx context.Context) (domain.Coordinates, error)

// CurrentPosition implements the Geolocator interface
func (f GeolocatorFunc) CurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	return f(ctx)
}

// StaticGeolocator returns fixed coordinates, standing in for a device
// position source.
type StaticGeolocator struct {
	Coords domain.Coordinates
}

// CurrentPosition returns the configured coordinates
func (s StaticGeolocator) CurrentPosition(_ context.Context) (domain.Coordinates, error) {
	return s.Coords, nil
}

// Resolver resolves the user's location. The first strategy to succeed
// short-circuits the chain and persists its result to the cache.
type Resolver struct {
	storage storage.Store
	geo     Geolocator // may be nil when no position source is available
	ip      Geolocator
	timeout time.Duration
}

// NewResolver creates a new location resolver. geo may be nil; ip is the
// mandatory fallback.
func NewResolver(store storage.Store, geo Geolocator, ip Geolocator, timeout time.Duration) *Resolver {
	return &Resolver{
		storage: store,
		geo:     geo,
		ip:      ip,
		timeout: timeout,
	}
}

// Resolve returns the user's coordinates. A cached location wins without any
// lookup; otherwise the geolocation provider is raced against the timeout,
// and on its failure the IP lookup runs. When every strategy is exhausted a
// location error is returned.
func (r *Resolver) Resolve(ctx context.Context) (domain.Coordinates, error) {
	if coords, ok := r.cached(ctx); ok {
		logging.Debugf("location: using cached coordinates %+v\n", coords)
		return coords, nil
	}

	if r.geo != nil {
		coords, err := r.position(ctx)
		if err == nil {
			r.persist(ctx, coords)
			return coords, nil
		}
		logging.Debugf("location: geolocation failed: %v\n", err)
	}

	coords, err := r.ip.CurrentPosition(ctx)
	if err != nil {
		return domain.Coordinates{}, errors.NewLocationError("all location strategies exhausted", err)
	}
	r.persist(ctx, coords)
	return coords, nil
}

// Reset clears the cached location so the next Resolve re-runs the chain
func (r *Resolver) Reset(ctx context.Context) error {
	return r.storage.Delete(ctx, storage.KeyLocation)
}

// cached returns the persisted location, if any
func (r *Resolver) cached(ctx context.Context) (domain.Coordinates, bool) {
	raw, ok, err := r.storage.Get(ctx, storage.KeyLocation)
	if err != nil || !ok {
		return domain.Coordinates{}, false
	}

	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		return domain.Coordinates{}, false
	}
	return coords, true
}

// position races the geolocation provider against the configured timeout.
// The losing branch's eventual result is discarded.
func (r *Resolver) position(ctx context.Context) (domain.Coordinates, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		coords domain.Coordinates
		err    error
	}

	// Buffered so a late provider result never blocks the goroutine
	ch := make(chan result, 1)
	go func() {
		coords, err := r.geo.CurrentPosition(timeoutCtx)
		ch <- result{coords: coords, err: err}
	}()

	select {
	case res := <-ch:
		return res.coords, res.err
	case <-timeoutCtx.Done():
		return domain.Coordinates{}, errors.NewTimeoutError("geolocation", r.timeout)
	}
}

// persist writes coordinates to the cache. Cache write failures are not
// fatal to resolution; the coordinates are still returned to the caller.
func (r *Resolver) persist(ctx context.Context, coords domain.Coordinates) {
	raw, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := r.storage.Set(ctx, storage.KeyLocation, string(raw)); err != nil {
		logging.Debugf("location: failed to cache coordinates: %v\n", err)
	}
}
