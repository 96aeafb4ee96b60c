// internal/config/config.go
//
// Runtime configuration for every wordmaster sub-command.
// Responsibilities:
//   - Load .env (if present) into the process environment.
//   - Parse WORDMASTER_* / PORT / LOG_LEVEL into Config.
//   - Let command-line flags override the environment.
//   - Validate ranges before anything starts.

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ahnaf-chowdhury/wordmaster/internal/render"
	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds wordmaster configuration.
type Config struct {
	// Words is a file path, http(s) URL or "sqlite:" DSN; empty means the
	// embedded dictionary.
	Words string `env:"WORDMASTER_WORDS"`
	// Length of the hidden word; 0 prompts for it.
	Length          int           `env:"WORDMASTER_LENGTH"           envDefault:"0"`
	MaxAttempts     int           `env:"WORDMASTER_MAX_ATTEMPTS"     envDefault:"6"`
	Daily           bool          `env:"WORDMASTER_DAILY"`
	DailySalt       string        `env:"WORDMASTER_DAILY_SALT"`
	Color           string        `env:"WORDMASTER_COLOR"            envDefault:"auto"`
	DownloadTimeout time.Duration `env:"WORDMASTER_DOWNLOAD_TIMEOUT" envDefault:"10s"`

	Port          string `env:"PORT"                        envDefault:"5175"`
	AllowedOrigin string `env:"WORDMASTER_ALLOWED_ORIGIN"`
	StoreCapacity int    `env:"WORDMASTER_STORE_CAPACITY"   envDefault:"10000"`

	LogLevel string `env:"LOG_LEVEL"`
}

// Parse reads the environment into a Config without loading .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads .env, parses the environment, then applies flags from args.
// Extra registers sub-command specific flags on fs before parsing.
func Load(fs *flag.FlagSet, args []string, extra func(fs *flag.FlagSet)) (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bind registers flags whose defaults are the current values of cfg.
func (cfg *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Words, "words", cfg.Words, "word list: file path, URL or sqlite:<path> (default embedded)")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "word length 3-8 (0 prompts)")
	fs.IntVar(&cfg.MaxAttempts, "attempts", cfg.MaxAttempts, "guesses per round")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play the word of the day")
	fs.StringVar(&cfg.DailySalt, "salt", cfg.DailySalt, "salt for the word of the day")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "colour output: auto, always or never")
	fs.DurationVar(&cfg.DownloadTimeout, "timeout", cfg.DownloadTimeout, "word list download timeout")
	fs.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port for serve")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
}

// Validate checks value ranges.
func (cfg Config) Validate() error {
	if cfg.Length != 0 && !words.ValidLength(cfg.Length) {
		return fmt.Errorf("%w: length %d outside %d-%d", ErrInvalid, cfg.Length, words.MinLength, words.MaxLength)
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("%w: attempts must be positive", ErrInvalid)
	}
	switch cfg.Color {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, cfg.Color)
	}
	if cfg.DownloadTimeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	if cfg.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalid)
	}
	return nil
}
