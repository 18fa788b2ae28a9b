package store

import (
	"context"
	"time"

	"tasker/internal/domain"
	"tasker/internal/errors"
	"tasker/internal/logging"
	"tasker/internal/weather"
)

// WeatherStatus is a point-in-time view of the weather fetch lifecycle
type WeatherStatus struct {
	State      domain.WeatherState
	Snapshot   *domain.WeatherSnapshot
	Err        string
	LastUpdate time.Time
}

// Weather returns the current weather lifecycle state and snapshot
func (s *Store) Weather() WeatherStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := WeatherStatus{
		State:      s.weatherState,
		Err:        s.weatherErr,
		LastUpdate: s.lastWeatherUpdate,
	}
	if s.snapshot != nil {
		snapshot := *s.snapshot
		status.Snapshot = &snapshot
	}
	return status
}

// FetchWeatherByLocation resolves a location and fetches the weather for it.
// Failures are absorbed into the lifecycle state, never returned: the task
// list stays fully usable when weather is unavailable.
func (s *Store) FetchWeatherByLocation(ctx context.Context) {
	seq := s.beginFetch()

	coords, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.failFetch(seq, err)
		return
	}

	reading, err := s.client.CurrentByCoords(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.failFetch(seq, err)
		return
	}
	s.completeFetch(seq, reading)
}

// FetchWeatherByCity fetches the weather for a city by name, with the same
// lifecycle transitions as the location-based fetch.
func (s *Store) FetchWeatherByCity(ctx context.Context, city string) {
	seq := s.beginFetch()

	reading, err := s.client.CurrentByCity(ctx, city)
	if err != nil {
		s.failFetch(seq, err)
		return
	}
	s.completeFetch(seq, reading)
}

// RefreshWeather re-fetches the weather, but only when a snapshot already
// exists. Intended to run on a timer while outdoor tasks are present.
func (s *Store) RefreshWeather(ctx context.Context) {
	s.mu.Lock()
	hasSnapshot := s.snapshot != nil
	s.mu.Unlock()

	if !hasSnapshot {
		return
	}
	s.FetchWeatherByLocation(ctx)
}

// UpdateLocation clears the cached location and re-runs the full fetch,
// forcing a fresh lookup.
func (s *Store) UpdateLocation(ctx context.Context) error {
	if err := s.resolver.Reset(ctx); err != nil {
		return err
	}
	s.FetchWeatherByLocation(ctx)
	return nil
}

// beginFetch enters the loading state and returns this fetch's sequence
// number. The latest request wins: only the fetch holding the current
// sequence number may publish a result.
func (s *Store) beginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchSeq++
	s.weatherState = domain.WeatherLoading
	s.weatherErr = ""
	return s.fetchSeq
}

// completeFetch publishes a successful reading unless a newer fetch has
// started in the meantime, in which case the stale response is discarded.
func (s *Store) completeFetch(seq uint64, reading *weather.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		logging.Debugf("weather: discarding stale response (seq %d, current %d)\n", seq, s.fetchSeq)
		return
	}

	now := s.now()
	s.snapshot = &domain.WeatherSnapshot{
		Temp:        reading.Temp,
		ConditionID: reading.ConditionID,
		Condition:   reading.Condition,
		Place:       reading.Place,
		FetchedAt:   now,
	}
	s.weatherState = domain.WeatherReady
	s.weatherErr = ""
	s.lastWeatherUpdate = now
}

// failFetch records a fetch failure unless a newer fetch has started
func (s *Store) failFetch(seq uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		return
	}

	logging.Debugf("weather: fetch failed: %v\n", err)
	s.weatherState = domain.WeatherError
	s.weatherErr = errors.GetUserMessage(err)
}
