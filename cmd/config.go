package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/compound"
)

// Environment variables seeding the global flags. They are also passed to extensions.
const (
	EnvPortfolioFile   = "INVEST_PORTFOLIO_FILE"
	EnvDefaultCurrency = "INVEST_DEFAULT_CURRENCY"
	EnvVerbose         = "INVEST_VERBOSE"
	EnvAddr            = "INVEST_ADDR"
	EnvCacheTTL        = "INVEST_CACHE_TTL"
)

// Config holds the defaults read from the environment.
type Config struct {
	PortfolioFile   string        `env:"INVEST_PORTFOLIO_FILE" envDefault:"portfolio.jsonl"`
	DefaultCurrency string        `env:"INVEST_DEFAULT_CURRENCY" envDefault:"USD"`
	Verbose         bool          `env:"INVEST_VERBOSE" envDefault:"false"`
	Addr            string        `env:"INVEST_ADDR" envDefault:":8080"`
	CacheTTL        time.Duration `env:"INVEST_CACHE_TTL" envDefault:"5m"`
}

// ParseConfig reads the configuration from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// defaultConfig is the configuration of an empty environment.
var defaultConfig = Config{
	PortfolioFile:   "portfolio.jsonl",
	DefaultCurrency: compound.DefaultCurrency,
	Addr:            ":8080",
	CacheTTL:        5 * time.Minute,
}

// loadConfig is ParseConfig falling back to defaultConfig on error.
func loadConfig() Config {
	cfg, err := ParseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning, ignoring environment: %v\n", err)
		return defaultConfig
	}
	return cfg
}
