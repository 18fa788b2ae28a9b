package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "tasker.db", cfg.Storage.Filename)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.BaseURL)
	assert.Equal(t, "https://ipapi.co/json/", cfg.Weather.IPLookupURL)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Equal(t, 30*time.Minute, cfg.Weather.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.Location.GeolocationTimeout)
	assert.Equal(t, 255, cfg.Validation.TitleMaxLength)
	assert.False(t, cfg.HasStaticLocation())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TK_STORAGE_DIR", "/tmp/tk-test")
	t.Setenv("TK_WEATHER_API_KEY", "secret")
	t.Setenv("TK_WEATHER_REFRESH_INTERVAL", "15m")
	t.Setenv("TK_LATITUDE", "51.5074")
	t.Setenv("TK_LONGITUDE", "-0.1278")
	t.Setenv("TK_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/tk-test", cfg.Storage.Dir)
	assert.Equal(t, "secret", cfg.Weather.APIKey)
	assert.Equal(t, 15*time.Minute, cfg.Weather.RefreshInterval)
	require.True(t, cfg.HasStaticLocation())
	assert.InDelta(t, 51.5074, *cfg.Location.Latitude, 0.0001)
	assert.InDelta(t, -0.1278, *cfg.Location.Longitude, 0.0001)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironmentIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TK_WEATHER_REFRESH_INTERVAL", "not-a-duration")
	t.Setenv("TK_LATITUDE", "not-a-float")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 30*time.Minute, cfg.Weather.RefreshInterval)
	assert.Nil(t, cfg.Location.Latitude)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty storage dir",
			mutate:  func(c *Config) { c.Storage.Dir = "" },
			wantErr: "storage.dir",
		},
		{
			name:    "empty weather base URL",
			mutate:  func(c *Config) { c.Weather.BaseURL = "" },
			wantErr: "weather.base_url",
		},
		{
			name:    "non-positive refresh interval",
			mutate:  func(c *Config) { c.Weather.RefreshInterval = 0 },
			wantErr: "weather.refresh_interval",
		},
		{
			name: "latitude without longitude",
			mutate: func(c *Config) {
				lat := 41.0
				c.Location.Latitude = &lat
			},
			wantErr: "location",
		},
		{
			name:    "zero title max length",
			mutate:  func(c *Config) { c.Validation.TitleMaxLength = 0 },
			wantErr: "validation.title_max_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	dir := "/tmp/tk-override"
	interval := 10 * time.Minute
	lat, lon := 48.8566, 2.3522

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		StorageDir:      &dir,
		RefreshInterval: &interval,
		Latitude:        &lat,
		Longitude:       &lon,
	})

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, interval, cfg.Weather.RefreshInterval)
	require.True(t, cfg.HasStaticLocation())
}
