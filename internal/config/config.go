// Package config resolves runtime settings from defaults, a YAML file and
// the environment. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory name under the XDG config and data homes.
	AppDir = "todo"
	// ConfigFile is the config file name.
	ConfigFile = "config.yaml"
	// DatabaseFile is the default database file name.
	DatabaseFile = "todo.db"
)

// Environment variables read by Load.
const (
	EnvDatabase = "TODO_DB"
	EnvFormat   = "TODO_FORMAT"
	EnvVerbose  = "TODO_VERBOSE"
)

// Config holds resolved settings.
type Config struct {
	Database string `yaml:"database,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Verbose  bool   `yaml:"verbose,omitempty"`

	// DefaultDatabase is set when Database came from the built-in default,
	// in which case the caller may create its directory.
	DefaultDatabase bool `yaml:"-"`
}

// Path returns the default config file path.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/todo/config.yaml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppDir, ConfigFile)
}

// DefaultDatabasePath returns the default database path.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/todo/todo.db.
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DatabaseFile
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppDir, DatabaseFile)
}

// Load resolves settings: defaults, then the YAML file at path, then the
// environment. An empty path means Path(), which may be missing; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{Format: "text"}

	required := path != ""
	if !required {
		path = Path()
	}
	if path != "" {
		if err := cfg.loadFile(path, required); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if cfg.Database == "" {
		cfg.Database = DefaultDatabasePath()
		cfg.DefaultDatabase = true
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	// Strict field validation catches typos like "databse:".
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if c.Database != "" {
		c.Database = ExpandTilde(c.Database)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDatabase); ok && v != "" {
		c.Database = ExpandTilde(v)
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	return nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
