package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"kosmos/internal/model"
)

type Config struct {
	ListenAddr              string
	ServerReadHeaderTimeout time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	RequestTimeout          time.Duration
	StateDir                string
	CORSOrigins             []string
	DefaultTheme            model.Theme
	LogLevel                string
}

// fileConfig is the TOML shape of the optional config file. Durations are
// strings in Go duration syntax ("30s", "2m").
type fileConfig struct {
	ListenAddr        string   `toml:"listen_addr"`
	StateDir          string   `toml:"state_dir"`
	RequestTimeout    string   `toml:"request_timeout"`
	ReadHeaderTimeout string   `toml:"read_header_timeout"`
	WriteTimeout      string   `toml:"write_timeout"`
	IdleTimeout       string   `toml:"idle_timeout"`
	CORSOrigins       []string `toml:"cors_origins"`
	LogLevel          string   `toml:"log_level"`
	UI                struct {
		DefaultTheme string `toml:"default_theme"`
	} `toml:"ui"`
}

// Load builds the runtime configuration: defaults, then the TOML config
// file if present, then environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:              "127.0.0.1:8750",
		ServerReadHeaderTimeout: 10 * time.Second,
		ServerWriteTimeout:      30 * time.Second,
		ServerIdleTimeout:       120 * time.Second,
		RequestTimeout:          30 * time.Second,
		StateDir:                defaultStateDir(),
		CORSOrigins:             nil,
		DefaultTheme:            model.ThemeLight,
		LogLevel:                "info",
	}

	if err := cfg.applyFile(configFilePath()); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ListenAddr != "" {
		c.ListenAddr = fc.ListenAddr
	}
	if fc.StateDir != "" {
		c.StateDir = expandHome(fc.StateDir)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	if theme, ok := model.ParseTheme(fc.UI.DefaultTheme); ok {
		c.DefaultTheme = theme
	}
	for _, d := range []struct {
		raw string
		dst *time.Duration
	}{
		{fc.RequestTimeout, &c.RequestTimeout},
		{fc.ReadHeaderTimeout, &c.ServerReadHeaderTimeout},
		{fc.WriteTimeout, &c.ServerWriteTimeout},
		{fc.IdleTimeout, &c.ServerIdleTimeout},
	} {
		if d.raw == "" {
			continue
		}
		parsed, parseErr := time.ParseDuration(d.raw)
		if parseErr != nil {
			return fmt.Errorf("parse duration %q in %s: %w", d.raw, path, parseErr)
		}
		*d.dst = parsed
	}

	return nil
}

func (c *Config) applyEnv() {
	c.ListenAddr = getEnv("KOSMOS_LISTEN_ADDR", c.ListenAddr)
	c.StateDir = expandHome(getEnv("KOSMOS_STATE_DIR", c.StateDir))
	c.LogLevel = getEnv("KOSMOS_LOG_LEVEL", c.LogLevel)
	c.RequestTimeout = getDuration("KOSMOS_REQUEST_TIMEOUT", c.RequestTimeout)
	c.ServerWriteTimeout = getDuration("KOSMOS_WRITE_TIMEOUT", c.ServerWriteTimeout)
	c.ServerIdleTimeout = getDuration("KOSMOS_IDLE_TIMEOUT", c.ServerIdleTimeout)

	if origins := splitCSV(os.Getenv("KOSMOS_CORS_ORIGINS")); len(origins) > 0 {
		c.CORSOrigins = origins
	}
	if theme, ok := model.ParseTheme(strings.TrimSpace(os.Getenv("KOSMOS_DEFAULT_THEME"))); ok {
		c.DefaultTheme = theme
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen address cannot be empty")
	}

	if strings.TrimSpace(c.StateDir) == "" {
		return fmt.Errorf("state directory cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	return nil
}

// StatePath resolves a file name inside the state directory.
func (c *Config) StatePath(name string) string {
	return filepath.Join(c.StateDir, name)
}

func configFilePath() string {
	if path := strings.TrimSpace(os.Getenv("KOSMOS_CONFIG")); path != "" {
		return expandHome(path)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kosmos", "config.toml")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./state"
	}
	return filepath.Join(home, ".local", "share", "kosmos")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
