package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// LedgerFileVar names the ledger file to append to. Required.
	LedgerFileVar = "LEDGER_FILE"
	// TimezoneVar overrides Config.Timezone when set.
	TimezoneVar = "BUY_TZ"
)

// Config holds the resolved runtime settings.
type Config struct {
	LedgerPath string    `yaml:"ledger_file,omitempty"`
	Timezone   string    `yaml:"timezone"` // IANA name; "" or "Local" = host zone
	UI         UIConfig  `yaml:"ui"`
	Git        GitConfig `yaml:"git"`
}

// UIConfig controls the point-and-click page served by `buy serve`.
type UIConfig struct {
	Addr string `yaml:"addr"`
}

// GitConfig controls committing the ledger after each entry.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// MissingEnvError reports a required environment variable that is unset.
type MissingEnvError struct {
	Var string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Var)
}

// Default returns settings used when no settings file is given.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Addr: "127.0.0.1:8417",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "buy",
			AuthorEmail: "buy@localhost",
		},
	}
}

// Load reads a YAML settings file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// The ledger path only ever comes from the environment.
	cfg.LedgerPath = ""
	return cfg, nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// LedgerPathFromEnv returns $LEDGER_FILE or a *MissingEnvError.
func LedgerPathFromEnv() (string, error) {
	path, ok := os.LookupEnv(LedgerFileVar)
	if !ok || path == "" {
		return "", &MissingEnvError{Var: LedgerFileVar}
	}
	return path, nil
}

// Resolve builds the startup configuration: .env in the working directory
// (if any), the optional settings file, then the environment.
func Resolve(settingsPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if settingsPath != "" {
		loaded, err := Load(settingsPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if tz, ok := os.LookupEnv(TimezoneVar); ok {
		cfg.Timezone = tz
	}

	path, err := LedgerPathFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.LedgerPath = path

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves Timezone. Dates on ledger lines are civil dates in this zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
