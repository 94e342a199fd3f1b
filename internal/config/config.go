// Package config loads settings from the environment, an optional .env file
// and an optional TOML render profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"resume-pdf/internal/model"
	"resume-pdf/pkg/infrastructure"
)

// ErrMissingConfig is returned by Validate when a required variable is unset.
var ErrMissingConfig = errors.New("missing required configuration")

// Defaults policies.
const (
	DefaultsSample = "sample"
	DefaultsNone   = "none"
)

type Config struct {
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	ResumeName  string
	OutputFile  string
	PreviewFile string
	Port        string

	ChromePath     string
	Theme          string
	Defaults       string
	PageSize       string
	MarginMM       float64
	RenderTimeout  time.Duration
	RenderAttempts int
	Labels         map[string]string

	RedisURL           string
	CacheTTL           time.Duration
	RendersDatabaseURL string

	LogLevel string
}

// Profile is the TOML file named by RENDER_PROFILE. Environment variables
// still win over anything set here.
type Profile struct {
	Theme    string `toml:"theme"`
	Defaults string `toml:"defaults"`
	Page     struct {
		Size     string   `toml:"size"`
		MarginMM *float64 `toml:"margin_mm"`
	} `toml:"page"`
	Labels map[string]string `toml:"labels"`
}

func defaults() *Config {
	return &Config{
		MongoDatabase:   "resumes",
		MongoCollection: "resumes",
		ResumeName:      model.Default().Name,
		OutputFile:      "resume.pdf",
		PreviewFile:     "resume.html",
		Port:            "10000",
		Theme:           "modern",
		Defaults:        DefaultsSample,
		PageSize:        string(infrastructure.PageA4),
		MarginMM:        infrastructure.DefaultMarginMM,
		RenderTimeout:   60 * time.Second,
		RenderAttempts:  1,
		CacheTTL:        time.Hour,
		LogLevel:        "info",
	}
}

// Load reads .env when present and builds the configuration from the process
// environment. It does not validate; call Validate before use.
func Load() (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration using lookup for every variable.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	if path, ok := lookup("RENDER_PROFILE"); ok && path != "" {
		if err := cfg.applyProfile(path); err != nil {
			return nil, err
		}
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("MONGO_URI", &cfg.MongoURI)
	str("MONGO_DATABASE", &cfg.MongoDatabase)
	str("MONGO_COLLECTION", &cfg.MongoCollection)
	str("RESUME_NAME", &cfg.ResumeName)
	str("OUTPUT_FILE", &cfg.OutputFile)
	str("PREVIEW_FILE", &cfg.PreviewFile)
	str("PORT", &cfg.Port)
	str("CHROME_PATH", &cfg.ChromePath)
	str("RENDER_THEME", &cfg.Theme)
	str("RESUME_DEFAULTS", &cfg.Defaults)
	str("PAGE_SIZE", &cfg.PageSize)
	str("REDIS_URL", &cfg.RedisURL)
	str("RENDERS_DATABASE_URL", &cfg.RendersDatabaseURL)
	str("LOG_LEVEL", &cfg.LogLevel)

	var errs []error
	if v, ok := lookup("PAGE_MARGIN_MM"); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 {
			errs = append(errs, fmt.Errorf("PAGE_MARGIN_MM: invalid margin %q", v))
		}
		cfg.MarginMM = f
	}
	if v, ok := lookup("RENDER_ATTEMPTS"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			errs = append(errs, fmt.Errorf("RENDER_ATTEMPTS: want a positive integer, got %q", v))
		}
		cfg.RenderAttempts = n
	}
	if v, ok := lookup("RENDER_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("RENDER_TIMEOUT: %w", err))
		}
		cfg.RenderTimeout = d
	}
	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("CACHE_TTL: %w", err))
		}
		cfg.CacheTTL = d
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyProfile(path string) error {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return fmt.Errorf("read render profile %s: %w", path, err)
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	if p.Defaults != "" {
		c.Defaults = p.Defaults
	}
	if p.Page.Size != "" {
		c.PageSize = p.Page.Size
	}
	if m := p.Page.MarginMM; m != nil {
		if *m < 0 {
			return fmt.Errorf("render profile %s: invalid margin_mm %v", path, *m)
		}
		c.MarginMM = *m
	}
	if len(p.Labels) > 0 {
		c.Labels = p.Labels
	}
	return nil
}

// Validate checks required variables and enumerated values.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("%w: MONGO_URI", ErrMissingConfig)
	}
	if c.ResumeName == "" {
		return fmt.Errorf("%w: RESUME_NAME", ErrMissingConfig)
	}
	switch c.Defaults {
	case DefaultsSample, DefaultsNone:
	default:
		return fmt.Errorf("RESUME_DEFAULTS: want %q or %q, got %q", DefaultsSample, DefaultsNone, c.Defaults)
	}
	if _, err := c.PageOptions(); err != nil {
		return fmt.Errorf("PAGE_SIZE: %w", err)
	}
	return nil
}

// PageOptions converts the page settings for the renderer.
func (c *Config) PageOptions() (infrastructure.PageOptions, error) {
	size, err := infrastructure.ParsePageSize(c.PageSize)
	if err != nil {
		return infrastructure.PageOptions{}, err
	}
	return infrastructure.PageOptions{Size: size, MarginMM: c.MarginMM}, nil
}

// BaseRecord is the record inputs are merged over under the defaults policy.
func (c *Config) BaseRecord() model.Record {
	if c.Defaults == DefaultsNone {
		return model.Record{}
	}
	return model.Default()
}
