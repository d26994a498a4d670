package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the top-level service configuration, loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Storage  StorageConfig  `toml:"storage"`
	Demo     DemoConfig     `toml:"demo"`
	Tracking TrackingConfig `toml:"tracking"`
	Upstream UpstreamConfig `toml:"upstream"`
	Contact  ContactConfig  `toml:"contact"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host               string   `toml:"host"`
	Port               int      `toml:"port"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	ReadTimeoutSecs    int      `toml:"read_timeout_secs"`
	WriteTimeoutSecs   int      `toml:"write_timeout_secs"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// StorageConfig holds SQLite settings.
type StorageConfig struct {
	Path string `toml:"path"`
}

// DemoConfig controls the scripted demo player.
type DemoConfig struct {
	// TickIntervalMs is the transcript-advance timer period. Sub-second so
	// message delays in the tens-of-ms range land on time.
	TickIntervalMs int `toml:"tick_interval_ms"`
	// CountdownRefreshSecs is the departure-countdown re-projection period.
	CountdownRefreshSecs int `toml:"countdown_refresh_secs"`
}

// TickInterval returns the transcript timer period as a duration.
func (d DemoConfig) TickInterval() time.Duration {
	return time.Duration(d.TickIntervalMs) * time.Millisecond
}

// CountdownRefresh returns the countdown refresh period as a duration.
func (d DemoConfig) CountdownRefresh() time.Duration {
	return time.Duration(d.CountdownRefreshSecs) * time.Second
}

// TrackingConfig controls passenger location tracking.
type TrackingConfig struct {
	// WalkingPace selects the walking-speed profile: normal, elderly, rushed.
	WalkingPace string `toml:"walking_pace"`
	// SessionExpiryMins is the helper-link/session lifetime.
	SessionExpiryMins int `toml:"session_expiry_mins"`
}

// SessionExpiry returns the session lifetime as a duration.
func (t TrackingConfig) SessionExpiry() time.Duration {
	return time.Duration(t.SessionExpiryMins) * time.Minute
}

// UpstreamConfig points at a live concierge backend. An empty base URL means
// the service runs self-contained on demo fixtures.
type UpstreamConfig struct {
	BaseURL     string `toml:"base_url"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// Timeout returns the upstream request timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSecs) * time.Second
}

// ContactConfig carries the product's fixed contact surface: the concierge
// phone line and the optional voice-agent identifier supplied by the
// deployment. Neither is user-editable at runtime.
type ContactConfig struct {
	PhoneNumber  string `toml:"phone_number"`
	VoiceAgentID string `toml:"voice_agent_id"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			CORSAllowedOrigins: []string{"*"},
			ReadTimeoutSecs:    15,
			WriteTimeoutSecs:   30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Path: "concierge.db",
		},
		Demo: DemoConfig{
			TickIntervalMs:       100,
			CountdownRefreshSecs: 60,
		},
		Tracking: TrackingConfig{
			WalkingPace:       "elderly",
			SessionExpiryMins: 30,
		},
		Upstream: UpstreamConfig{
			BaseURL:     "",
			TimeoutSecs: 10,
		},
		Contact: ContactConfig{
			PhoneNumber: "1-800-433-7300",
		},
	}
}

// Load reads configuration from path, applying defaults for anything the
// file omits. A missing file is an error; callers decide whether to fall
// back to Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Demo.TickIntervalMs <= 0 {
		return fmt.Errorf("demo tick_interval_ms must be positive, got %d", c.Demo.TickIntervalMs)
	}
	if c.Demo.CountdownRefreshSecs <= 0 {
		return fmt.Errorf("demo countdown_refresh_secs must be positive, got %d", c.Demo.CountdownRefreshSecs)
	}
	if c.Tracking.SessionExpiryMins <= 0 {
		return fmt.Errorf("tracking session_expiry_mins must be positive, got %d", c.Tracking.SessionExpiryMins)
	}
	switch c.Tracking.WalkingPace {
	case "normal", "elderly", "rushed":
	default:
		return fmt.Errorf("unknown walking_pace: %s", c.Tracking.WalkingPace)
	}
	return nil
}
