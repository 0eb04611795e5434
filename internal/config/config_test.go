package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScrape(t *testing.T) {
	t.Parallel()

	cfg := DefaultScrape()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 1, cfg.StartPage)
	assert.Equal(t, 1, cfg.EndPage)
	assert.Equal(t, DefaultRetryAttempts, cfg.RetryAttempts)
	require.NoError(t, cfg.Validate())
}

func TestLoadScrape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scrape.yaml")
	body := `
base_url: https://example.test/insiders
start_page: 2
end_page: 5
timeout: 10s
retry_wait: 500ms
page_delay: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := LoadScrape(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/insiders", cfg.BaseURL)
	assert.Equal(t, 2, cfg.StartPage)
	assert.Equal(t, 5, cfg.EndPage)
	assert.Equal(t, 10*time.Second, cfg.ParseTimeout())
	assert.Equal(t, 500*time.Millisecond, cfg.ParseRetryWait())
	assert.Equal(t, 250*time.Millisecond, cfg.ParsePageDelay())
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultRetryAttempts, cfg.RetryAttempts)
}

func TestLoadScrapeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadScrape(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Scrape)
		wantOK bool
	}{
		{"defaults", func(*Scrape) {}, true},
		{"empty base url", func(s *Scrape) { s.BaseURL = "" }, false},
		{"start page zero", func(s *Scrape) { s.StartPage = 0 }, false},
		{"end before start", func(s *Scrape) { s.StartPage = 5; s.EndPage = 2 }, false},
		{"zero retries", func(s *Scrape) { s.RetryAttempts = 0 }, false},
		{"bad duration", func(s *Scrape) { s.Timeout = "soon" }, false},
		{"good duration", func(s *Scrape) { s.Timeout = "45s" }, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultScrape()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDurationDefaults(t *testing.T) {
	t.Parallel()

	var cfg Scrape
	assert.Equal(t, DefaultTimeout, cfg.ParseTimeout())
	assert.Equal(t, DefaultRetryWait, cfg.ParseRetryWait())
	assert.Equal(t, DefaultPageDelay, cfg.ParsePageDelay())
}

func TestGetBool(t *testing.T) {
	t.Setenv("DIRIGEANTS_TEST_FLAG", "yes")
	assert.True(t, GetBool("DIRIGEANTS_TEST_FLAG", "false"))

	t.Setenv("DIRIGEANTS_TEST_FLAG", "")
	assert.True(t, GetBool("DIRIGEANTS_TEST_FLAG", "true"))
	assert.False(t, GetBool("DIRIGEANTS_TEST_FLAG", "false"))
}
