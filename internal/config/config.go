package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Ping     PingConfig     `mapstructure:"ping"`
	Journey  JourneyConfig  `mapstructure:"journey"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Location LocationConfig `mapstructure:"location"`
	Client   ClientConfig   `mapstructure:"client"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type PingConfig struct {
	Message string `mapstructure:"message"`
}

type JourneyConfig struct {
	DelayMS int `mapstructure:"delay_ms"`
}

func (j JourneyConfig) Delay() time.Duration { return time.Duration(j.DelayMS) * time.Millisecond }

type UploadConfig struct {
	DelayMS      int   `mapstructure:"delay_ms"`
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

func (u UploadConfig) Delay() time.Duration { return time.Duration(u.DelayMS) * time.Millisecond }

// LocationConfig configures the static geolocation provider and the caching
// decorator around it.
type LocationConfig struct {
	Latitude       float64 `mapstructure:"latitude"`
	Longitude      float64 `mapstructure:"longitude"`
	Accuracy       float64 `mapstructure:"accuracy"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	MaxAgeSeconds  int     `mapstructure:"max_age_seconds"`
}

func (l LocationConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

func (l LocationConfig) MaxAge() time.Duration {
	return time.Duration(l.MaxAgeSeconds) * time.Second
}

// ClientConfig bounds outbound HTTP calls made by the API clients and the
// session store.
type ClientConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// Load reads configuration from an optional config file and environment
// variables. Environment variables use the URBANSCRIBE_ prefix, e.g.
// URBANSCRIBE_PING_MESSAGE -> ping.message.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("ping.message", "UrbanScribe API is running")
	v.SetDefault("journey.delay_ms", 2000)
	v.SetDefault("upload.delay_ms", 1500)
	v.SetDefault("upload.max_size_bytes", 10*1024*1024)
	v.SetDefault("location.latitude", 6.855)
	v.SetDefault("location.longitude", 7.38)
	v.SetDefault("location.accuracy", 25.0)
	v.SetDefault("location.timeout_seconds", 10)
	v.SetDefault("location.max_age_seconds", 60)
	v.SetDefault("client.timeout_seconds", 15)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.origins", []string{
		"http://localhost",
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:8080",
	})

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	v.SetEnvPrefix("URBANSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Journey.DelayMS < 0 {
		errs = append(errs, "journey.delay_ms must not be negative")
	}
	if c.Upload.DelayMS < 0 {
		errs = append(errs, "upload.delay_ms must not be negative")
	}
	if c.Upload.MaxSizeBytes <= 0 {
		errs = append(errs, "upload.max_size_bytes must be positive")
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		errs = append(errs, fmt.Sprintf("location.latitude out of range: %v", c.Location.Latitude))
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		errs = append(errs, fmt.Sprintf("location.longitude out of range: %v", c.Location.Longitude))
	}
	if c.Location.TimeoutSeconds <= 0 {
		errs = append(errs, "location.timeout_seconds must be positive")
	}
	if c.Location.MaxAgeSeconds < 0 {
		errs = append(errs, "location.max_age_seconds must not be negative")
	}
	if c.Client.TimeoutSeconds <= 0 {
		errs = append(errs, "client.timeout_seconds must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
