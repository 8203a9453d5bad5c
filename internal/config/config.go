package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings (dev server emulating the story backend)
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string `env:"-"`
	ClientDBPath  string `env:"CLIENT_DB_PATH"`
	SessionDir    string `env:"SESSION_DIR"`
	GenTimeoutSec int    `env:"GENERATE_TIMEOUT_SEC"`
	RateLimitMax  int    `env:"RATE_LIMIT_MAX"`
	RateWindowSec int    `env:"RATE_LIMIT_WINDOW_SEC"`
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

// GenerateTimeout — фиксированный дедлайн запроса генерации.
func (c *Config) GenerateTimeout() time.Duration {
	return time.Duration(c.GenTimeoutSec) * time.Second
}

// RateWindow — длительность скользящего окна лимитера генерации.
func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateWindowSec) * time.Second
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the SpellTales backend (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "base path for per-user client SQLite DBs")
	flag.StringVar(&cfg.SessionDir, "session-dir", cfg.SessionDir, "path to the session (token/email) directory")
	flag.IntVar(&cfg.GenTimeoutSec, "gen-timeout", cfg.GenTimeoutSec, "story generation deadline, seconds")
	flag.IntVar(&cfg.RateLimitMax, "rate-max", cfg.RateLimitMax, "max generation requests per window")
	flag.IntVar(&cfg.RateWindowSec, "rate-window", cfg.RateWindowSec, "rate limit window, seconds")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.GenTimeoutSec <= 0 {
		cfg.GenTimeoutSec = 30
	}
	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 5
	}
	if cfg.RateWindowSec <= 0 {
		cfg.RateWindowSec = 60
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(home, ".spelltales")
	}

	return cfg
}
