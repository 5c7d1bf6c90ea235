package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
	SourceObject   = "object"
	SourceFile     = "file"
)

var ErrNoSource = errors.New("unknown feed source")

// Config holds all application configuration.
type Config struct {
	Port string `yaml:"port"`

	Feed struct {
		Source        string        `yaml:"source"`
		URL           string        `yaml:"url"`
		File          string        `yaml:"file"`
		CacheTTL      time.Duration `yaml:"cache_ttl"`
		RefreshCron   string        `yaml:"refresh_cron"`
		RetryAttempts uint          `yaml:"retry_attempts"`
		Timeout       time.Duration `yaml:"timeout"`
	} `yaml:"feed"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	R2 struct {
		Endpoint      string `yaml:"endpoint"`
		AccessKey     string `yaml:"access_key"`
		SecretKey     string `yaml:"secret_key"`
		Bucket        string `yaml:"bucket"`
		FeedKey       string `yaml:"feed_key"`
		PublicBaseURL string `yaml:"public_base_url"`
	} `yaml:"r2"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// Load reads config from a YAML file if path is set, then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read config")
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "parse config")
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.Feed.Source, "FEED_SOURCE")
	setString(&c.Feed.URL, "FEED_URL")
	setString(&c.Feed.File, "FEED_FILE")
	setString(&c.Feed.RefreshCron, "FEED_REFRESH_CRON")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.R2.Endpoint, "R2_ENDPOINT")
	setString(&c.R2.AccessKey, "R2_ACCESS_KEY")
	setString(&c.R2.SecretKey, "R2_SECRET_KEY")
	setString(&c.R2.Bucket, "R2_BUCKET_NAME")
	setString(&c.R2.FeedKey, "R2_FEED_KEY")
	setString(&c.R2.PublicBaseURL, "R2_PUBLIC_BASE_URL")

	if v := os.Getenv("FEED_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "FEED_CACHE_TTL=%q", v)
		}
		c.Feed.CacheTTL = d
	}
	if v := os.Getenv("FEED_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "FEED_TIMEOUT=%q", v)
		}
		c.Feed.Timeout = d
	}
	if v := os.Getenv("FEED_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "FEED_RETRY_ATTEMPTS=%q", v)
		}
		c.Feed.RetryAttempts = uint(n)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.Feed.Source == "" {
		c.Feed.Source = SourceHTTP
	}
	if c.Feed.CacheTTL == 0 {
		c.Feed.CacheTTL = 60 * time.Second
	}
	if c.Feed.RefreshCron == "" {
		c.Feed.RefreshCron = "@every 1m"
	}
	if c.Feed.RetryAttempts == 0 {
		c.Feed.RetryAttempts = 3
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 10 * time.Second
	}
	if c.R2.FeedKey == "" {
		c.R2.FeedKey = "feeds/restaurants.json"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
}

// Validate checks that the selected feed source has what it needs.
func (c *Config) Validate() error {
	switch c.Feed.Source {
	case SourceHTTP:
		if c.Feed.URL == "" {
			return errors.New("feed.url is required for the http source")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres source")
		}
	case SourceObject:
		if err := c.ValidateR2(); err != nil {
			return err
		}
	case SourceFile:
		if c.Feed.File == "" {
			return errors.New("feed.file is required for the file source")
		}
	default:
		return errors.Wrapf(ErrNoSource, "%q", c.Feed.Source)
	}

	if c.Feed.CacheTTL < 0 {
		return errors.New("feed.cache_ttl must not be negative")
	}
	return nil
}

// ValidateR2 checks the object store settings.
func (c *Config) ValidateR2() error {
	settings := []struct {
		name  string
		value string
	}{
		{"r2.endpoint", c.R2.Endpoint},
		{"r2.access_key", c.R2.AccessKey},
		{"r2.secret_key", c.R2.SecretKey},
		{"r2.bucket", c.R2.Bucket},
	}

	missing := []string{}
	for _, s := range settings {
		if s.value == "" {
			missing = append(missing, s.name)
		}
	}
	if len(missing) > 0 {
		return errors.Newf("missing object store settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
