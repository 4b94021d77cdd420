// Package config loads the optional scoopfind configuration file.
//
// The file is TOML. Every key is optional; a missing file at the default
// location yields the zero Config, which selects built-in defaults
// everywhere. An explicitly requested file must exist.
//
//	user_agent   = "..."
//	api_url      = "https://api.github.com"
//	github_token = ""
//	timeout      = "30s"
//	workers      = 0
//	no_remote    = false
//
//	[buckets]
//	mybucket = "https://api.github.com/repos/me/my-bucket/git/trees/HEAD?recursive=1"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/scoop"
)

const (
	appName  = "scoopfind"
	fileName = "config.toml"

	// EnvToken supplies the GitHub token when the file does not.
	EnvToken = "GITHUB_TOKEN"
)

// Config is the decoded configuration file.
type Config struct {
	UserAgent   string            `toml:"user_agent"`
	APIURL      string            `toml:"api_url"`
	GitHubToken string            `toml:"github_token"`
	Timeout     Duration          `toml:"timeout"`
	Workers     int               `toml:"workers"`
	NoRemote    bool              `toml:"no_remote"`
	Buckets     map[string]string `toml:"buckets"`
}

// Duration is a time.Duration written as a string ("30s", "1m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/scoopfind/config.toml, falling
// back to ~/.config/scoopfind/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. An empty path selects
// DefaultPath, where a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return withEnv(&Config{}), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return withEnv(&Config{}), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return withEnv(cfg), nil
}

// Parse decodes and validates TOML configuration data.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. Bucket entries are checked when the
// known bucket table is built.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		if err := errors.ValidateURL(c.APIURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "api_url")
		}
	}
	if c.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must not be negative: %s", c.Timeout)
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative: %d", c.Workers)
	}
	return nil
}

// KnownBuckets returns the built-in known buckets merged with [buckets].
func (c *Config) KnownBuckets() (scoop.KnownBuckets, error) {
	known, err := scoop.NewKnownBuckets(c.Buckets)
	if err != nil {
		return scoop.KnownBuckets{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "buckets")
	}
	return known, nil
}

func withEnv(c *Config) *Config {
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv(EnvToken)
	}
	return c
}
