package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable overriding the configuration,
// eg. CLUBHOUSE_HTTP_ADDRESS.
const EnvPrefix = "CLUBHOUSE"

type Config struct {
	// HTTPAddress is the host:port the web server listens on.
	HTTPAddress string `split_words:"true"`

	// DatabasePath is the SQLite database file.
	DatabasePath string `split_words:"true"`

	// ResourcesDir holds the migrations/, templates/, locales/ and static/
	// directories.
	ResourcesDir string `split_words:"true"`

	// DevMode relaxes cookies and enables human-readable logs.
	DevMode bool `split_words:"true"`

	// CookieHashKey signs the flash message cookie, a random key is generated
	// at startup when empty.
	CookieHashKey string `split_words:"true"`

	// Accepted POST requests per second over the whole server, and the burst
	// allowed on top of it. A PostRate ≤ 0 disables throttling.
	PostRate  float64 `split_words:"true"`
	PostBurst int     `split_words:"true"`

	// DefaultLocale is used when Accept-Language matches nothing we have.
	DefaultLocale string `split_words:"true"`
}

// Default returns a configuration usable out of the box from the repository
// root.
func Default() Config {
	return Config{
		HTTPAddress:   "127.0.0.1:3001",
		DatabasePath:  "./clubhouse.db",
		ResourcesDir:  "./resources",
		PostRate:      5,
		PostBurst:     10,
		DefaultLocale: "en",
	}
}

func NewFromUserConfigDir() (*Config, error) {
	c := &Config{}
	if err := c.ReloadFromUserConfigDir(); err != nil {
		return nil, err
	}

	return c, nil
}

// ReloadFromUserConfigDir resets the configuration to the defaults, applies the
// user config file on top if it exists, then the environment.
func (c *Config) ReloadFromUserConfigDir() error {
	*c = Default()

	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return err
	}

	if err := c.loadFile(path); err != nil {
		return errors.Wrapf(err, "unable to read config from %s", path)
	}

	return c.expandFromEnv()
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(c)
}

func (c *Config) expandFromEnv() error {
	return envconfig.Process(EnvPrefix, c)
}

func (c *Config) MigrationsDir() string {
	return filepath.Join(c.ResourcesDir, "migrations")
}

func getOrCreateUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "clubhouse")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

// Write saves the configuration in the user config dir and returns the file
// path.
func (c *Config) Write() (string, error) {
	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		if err2 := f.Close(); err2 != nil {
			return "", fmt.Errorf("unable to close file (%s) after error: %w", err2, err)
		}

		return "", err
	}

	return path, f.Close()
}
