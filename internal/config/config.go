// Package config resolves zseed settings from defaults, a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zarlcorp/zseed/internal/generate"
)

// environment variable names
const (
	EnvDataDir        = "ZSEED_DATA_DIR"
	EnvPasswordLength = "ZSEED_PASSWORD_LENGTH"
	EnvPriceMin       = "ZSEED_PRICE_MIN"
	EnvPriceMax       = "ZSEED_PRICE_MAX"
	EnvSeed           = "ZSEED_SEED"
	EnvFixtures       = "ZSEED_FIXTURES"
	EnvAuthor         = "ZSEED_AUTHOR"
	EnvAuthorGithub   = "ZSEED_AUTHOR_GITHUB"
)

const (
	defaultAuthor       = "samus.io"
	defaultAuthorGithub = "samus-io"
)

// Config holds resolved settings.
type Config struct {
	DataDir        string
	PasswordLength int
	PriceMin       int
	PriceMax       int
	// Seed makes generation reproducible when HasSeed is set.
	Seed         uint64
	HasSeed      bool
	FixturesPath string
	Author       string
	AuthorGithub string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:        DataDir(),
		PasswordLength: generate.DefaultPasswordLength,
		PriceMin:       generate.DefaultPriceMin,
		PriceMax:       generate.DefaultPriceMax,
		Author:         defaultAuthor,
		AuthorGithub:   defaultAuthorGithub,
	}
}

// Load reads an optional .env file from the working directory, then applies
// environment overrides to the defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load .env", "err", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv applies overrides from getenv to the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()

	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := getenv(EnvFixtures); v != "" {
		c.FixturesPath = v
	}
	if v := getenv(EnvAuthor); v != "" {
		c.Author = v
	}
	if v := getenv(EnvAuthorGithub); v != "" {
		c.AuthorGithub = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{EnvPasswordLength, &c.PasswordLength},
		{EnvPriceMin, &c.PriceMin},
		{EnvPriceMax, &c.PriceMax},
	}
	for _, i := range ints {
		v := strings.TrimSpace(getenv(i.env))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %q is not an integer", i.env, v)
		}
		*i.dst = n
	}

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		if err := c.SetSeed(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SetSeed parses and sets a generation seed.
func (c *Config) SetSeed(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("seed %q is not an unsigned integer", v)
	}
	c.Seed = n
	c.HasSeed = true
	return nil
}

// Validate checks settings that cannot be reported later. Password length is
// left to the generator, which rejects values below its minimum.
func (c Config) Validate() error {
	if c.PriceMin > c.PriceMax {
		return fmt.Errorf("price range %d..%d is empty", c.PriceMin, c.PriceMax)
	}
	if c.PriceMin < 0 {
		return fmt.Errorf("price minimum %d is negative", c.PriceMin)
	}
	return nil
}

// Generator returns a seeded generator when a seed is set, otherwise a
// crypto-backed one.
func (c Config) Generator() *generate.Generator {
	if c.HasSeed {
		return generate.NewSeeded(c.Seed)
	}
	return generate.New()
}

// DataDir returns the default data directory for zseed.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zseed"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zseed"
	}
	return home + "/.local/share/zseed"
}
