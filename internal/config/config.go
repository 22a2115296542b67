package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	League  League
	Bot     Bot
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"league-table"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
	MaxBodyBytes      int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"131072"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type League struct {
	CacheTTL        time.Duration `env:"LEAGUE_CACHE_TTL" envDefault:"5m"`
	CacheCleanup    time.Duration `env:"LEAGUE_CACHE_CLEANUP" envDefault:"10m"`
	CacheMaxEntries int           `env:"LEAGUE_CACHE_MAX_ENTRIES" envDefault:"1024"`
}

// Bot is optional: an empty token leaves the Telegram surface off.
type Bot struct {
	Token         string `env:"BOT_TOKEN" json:"-"`
	AllowedChatID int64  `env:"BOT_ALLOWED_CHAT_ID" envDefault:"0"`
	// LogRequests dumps every Bot API call with the token masked.
	LogRequests    bool `env:"BOT_LOG_REQUESTS" envDefault:"false"`
	LogFieldMaxLen int  `env:"BOT_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
