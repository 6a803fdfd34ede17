package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dvloznov/bank-middleware-mock/internal/statement"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the mock API.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	Location             *time.Location
	Accounts             []string
	NarrationMode        statement.NarrationMode
	IncludeAccountNumber bool
	ExactDate            bool
	Shuffle              bool
	Seed                 int64

	FixturesDir    string
	FixturesGCSURI string
	GCSEndpoint    string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file, then the environment. It reports whether a
// .env file was found so callers can log it.
func Load() (Config, bool, error) {
	dotenv := godotenv.Load() == nil
	cfg, err := FromEnv(os.Getenv)
	return cfg, dotenv, err
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	e := env{getenv: getenv}

	cfg := Config{
		Port:           e.getString("PORT", "3001"),
		LogLevel:       e.getString("LOG_LEVEL", "info"),
		LogFormat:      e.getString("LOG_FORMAT", "console"),
		Accounts:       e.getCSV("STATEMENT_ACCOUNTS", statement.DefaultAccounts),
		FixturesDir:    e.getString("FIXTURES_DIR", ""),
		FixturesGCSURI: e.getString("FIXTURES_GCS_URI", ""),
		GCSEndpoint:    e.getString("GCS_ENDPOINT", ""),

		IncludeAccountNumber: e.getBool("STATEMENT_INCLUDE_ACCOUNT", true),
		ExactDate:            e.getBool("STATEMENT_EXACT_DATE", false),
		Shuffle:              e.getBool("STATEMENT_SHUFFLE", true),
		Seed:                 e.getInt64("STATEMENT_SEED", 0),

		ReadTimeout:     e.getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    e.getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     e.getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: e.getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	mode, err := statement.ParseNarrationMode(e.getString("STATEMENT_NARRATION_MODE", string(statement.ModeCharges)))
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("STATEMENT_NARRATION_MODE: %w", err))
	}
	cfg.NarrationMode = mode

	tz := e.getString("STATEMENT_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("STATEMENT_TIMEZONE: %w", err))
	}
	cfg.Location = loc

	if len(e.errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(e.errs...))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("config: PORT is empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if len(c.Accounts) == 0 {
		return fmt.Errorf("config: STATEMENT_ACCOUNTS is empty")
	}
	if c.FixturesDir != "" && c.FixturesGCSURI != "" {
		return fmt.Errorf("config: FIXTURES_DIR and FIXTURES_GCS_URI are mutually exclusive")
	}
	return nil
}

// Catalog returns the statement catalog described by the config.
func (c Config) Catalog() statement.Catalog {
	catalog := statement.DefaultCatalog(c.NarrationMode)
	catalog.Accounts = append([]string(nil), c.Accounts...)
	return catalog
}

// StatementOptions returns generator options for the configured catalog, seeded
// from Seed and anchored to the configured location.
func (c Config) StatementOptions() statement.Options {
	return statement.Options{
		Catalog:   c.Catalog(),
		Source:    statement.NewSource(c.Seed),
		Now:       c.Now,
		Shuffle:   c.Shuffle,
		ExactDate: c.ExactDate,
	}
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

type env struct {
	getenv func(string) string
	errs   []error
}

func (e *env) getString(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *env) getCSV(key string, fallback []string) []string {
	v := e.getString(key, "")
	if v == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (e *env) getBool(key string, fallback bool) bool {
	v := e.getString(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return b
}

func (e *env) getInt64(key string, fallback int64) int64 {
	v := e.getString(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (e *env) getDuration(key string, fallback time.Duration) time.Duration {
	v := e.getString(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
