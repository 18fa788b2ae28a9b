package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task manager application
type Config struct {
	Storage     StorageConfig
	Weather     WeatherConfig
	Location    LocationConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Dir            string        `env:"TK_STORAGE_DIR"`
	Filename       string        `env:"TK_STORAGE_FILENAME"`
	QueryTimeout   time.Duration `env:"TK_STORAGE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TK_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TK_STORAGE_DIR_PERMISSIONS"`
}

// WeatherConfig holds weather client configuration
type WeatherConfig struct {
	BaseURL         string        `env:"TK_WEATHER_BASE_URL"`
	IPLookupURL     string        `env:"TK_WEATHER_IP_URL"`
	APIKey          string        `env:"TK_WEATHER_API_KEY"`
	RequestTimeout  time.Duration `env:"TK_WEATHER_TIMEOUT"`
	RefreshInterval time.Duration `env:"TK_WEATHER_REFRESH_INTERVAL"`
	Units           string        `env:"TK_WEATHER_UNITS"`
}

// LocationConfig holds location resolution configuration. Latitude and
// Longitude stand in for the platform geolocation source; when both are
// unset the resolver skips straight to the IP fallback.
type LocationConfig struct {
	Latitude           *float64      `env:"TK_LATITUDE"`
	Longitude          *float64      `env:"TK_LONGITUDE"`
	GeolocationTimeout time.Duration `env:"TK_LOCATION_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength        int `env:"TK_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength  int `env:"TK_VALIDATION_DESCRIPTION_MAX"`
	CategoryNameMaxLength int `env:"TK_VALIDATION_CATEGORY_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TK_APP_TIMEOUT"`
	Verbose bool          `env:"TK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStorageDir := filepath.Join(homeDir, ".tk")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultStorageDir,
			Filename:       "tasker.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Weather: WeatherConfig{
			BaseURL:         "https://api.openweathermap.org/data/2.5",
			IPLookupURL:     "https://ipapi.co/json/",
			RequestTimeout:  10 * time.Second,
			RefreshInterval: 30 * time.Minute,
			Units:           "metric",
		},
		Location: LocationConfig{
			GeolocationTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength:        255,
			DescriptionMaxLength:  1000,
			CategoryNameMaxLength: 64,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the storage database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// HasStaticLocation reports whether fixed coordinates were configured
func (c *Config) HasStaticLocation() bool {
	return c.Location.Latitude != nil && c.Location.Longitude != nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TK_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TK_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("TK_STORAGE_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TK_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TK_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Weather configuration
	if url := os.Getenv("TK_WEATHER_BASE_URL"); url != "" {
		c.Weather.BaseURL = url
	}
	if url := os.Getenv("TK_WEATHER_IP_URL"); url != "" {
		c.Weather.IPLookupURL = url
	}
	if key := os.Getenv("TK_WEATHER_API_KEY"); key != "" {
		c.Weather.APIKey = key
	}
	if timeout := os.Getenv("TK_WEATHER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Weather.RequestTimeout = d
		}
	}
	if interval := os.Getenv("TK_WEATHER_REFRESH_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Weather.RefreshInterval = d
		}
	}
	if units := os.Getenv("TK_WEATHER_UNITS"); units != "" {
		c.Weather.Units = units
	}

	// Location configuration
	if lat := os.Getenv("TK_LATITUDE"); lat != "" {
		if f, err := strconv.ParseFloat(lat, 64); err == nil {
			c.Location.Latitude = &f
		}
	}
	if lon := os.Getenv("TK_LONGITUDE"); lon != "" {
		if f, err := strconv.ParseFloat(lon, 64); err == nil {
			c.Location.Longitude = &f
		}
	}
	if timeout := os.Getenv("TK_LOCATION_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Location.GeolocationTimeout = d
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TK_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}
	if maxLen := os.Getenv("TK_VALIDATION_CATEGORY_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.CategoryNameMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate weather configuration
	if c.Weather.BaseURL == "" {
		return &ConfigError{Field: "weather.base_url", Message: "weather base URL cannot be empty"}
	}
	if c.Weather.IPLookupURL == "" {
		return &ConfigError{Field: "weather.ip_lookup_url", Message: "IP lookup URL cannot be empty"}
	}
	if c.Weather.RequestTimeout <= 0 {
		return &ConfigError{Field: "weather.request_timeout", Message: "request timeout must be positive"}
	}
	if c.Weather.RefreshInterval <= 0 {
		return &ConfigError{Field: "weather.refresh_interval", Message: "refresh interval must be positive"}
	}

	// Validate location configuration
	if c.Location.GeolocationTimeout <= 0 {
		return &ConfigError{Field: "location.geolocation_timeout", Message: "geolocation timeout must be positive"}
	}
	if (c.Location.Latitude == nil) != (c.Location.Longitude == nil) {
		return &ConfigError{Field: "location", Message: "latitude and longitude must be set together"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}
	if c.Validation.CategoryNameMaxLength < 1 {
		return &ConfigError{Field: "validation.category_name_max_length", Message: "category name maximum length must be at least 1"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
