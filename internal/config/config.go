package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	godotenv.Load(".env")
}

// Get returns a trimmed environment value, with .env already loaded.
func Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetBool(key, defaultVal string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		v = defaultVal
	}
	return v == "1" || v == "true" || v == "yes"
}

var (
	// CacheDir enables the on-disk market-data cache when set.
	CacheDir = Get("DIRIGEANTS_CACHE_DIR")
)

// Scrape holds the scraper settings. Durations are strings ("30s", "2s") so
// the file stays readable; the Parse* accessors apply the defaults.
type Scrape struct {
	BaseURL       string `json:"base_url" yaml:"base_url"`
	StartPage     int    `json:"start_page" yaml:"start_page"`
	EndPage       int    `json:"end_page" yaml:"end_page"`
	Timeout       string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RetryAttempts int    `json:"retry_attempts,omitempty" yaml:"retry_attempts,omitempty"`
	RetryWait     string `json:"retry_wait,omitempty" yaml:"retry_wait,omitempty"`
	PageDelay     string `json:"page_delay,omitempty" yaml:"page_delay,omitempty"`
}

const (
	DefaultBaseURL       = "https://www.abcbourse.com/marches/transactions_dirigeants"
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 3
	DefaultRetryWait     = 2 * time.Second
	DefaultPageDelay     = 1 * time.Second
)

// DefaultScrape returns the settings matching the production site.
func DefaultScrape() Scrape {
	return Scrape{
		BaseURL:       DefaultBaseURL,
		StartPage:     1,
		EndPage:       1,
		RetryAttempts: DefaultRetryAttempts,
	}
}

// LoadScrape reads a YAML scrape config, filling unset fields with defaults.
func LoadScrape(path string) (Scrape, error) {
	cfg := DefaultScrape()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (s Scrape) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if s.StartPage < 1 || s.EndPage < s.StartPage {
		return fmt.Errorf("page range %d..%d is invalid", s.StartPage, s.EndPage)
	}
	if s.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1")
	}
	for _, d := range []string{s.Timeout, s.RetryWait, s.PageDelay} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("bad duration %q: %w", d, err)
		}
	}
	return nil
}

func (s Scrape) ParseTimeout() time.Duration   { return durationOr(s.Timeout, DefaultTimeout) }
func (s Scrape) ParseRetryWait() time.Duration { return durationOr(s.RetryWait, DefaultRetryWait) }
func (s Scrape) ParsePageDelay() time.Duration { return durationOr(s.PageDelay, DefaultPageDelay) }

func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
