// Package config loads the provider file. Values may reference environment
// variables as ${NAME}; a .env file next to the process is loaded first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/blogem/codeauth/authadapter"
	"github.com/blogem/codeauth/authenticator"
	"github.com/blogem/codeauth/logger"
)

const defaultDatabase = "codeauth.db"

// envRef matches ${NAME}. A bare $ stays literal.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Config is the root of the provider file.
type Config struct {
	// Database is the SQLite path for the attempt audit trail.
	Database  string                          `yaml:"database"`
	Log       logger.Config                   `yaml:"log"`
	Providers map[string]authenticator.Config `yaml:"providers"`
}

// Load reads envFiles (default ".env"; missing files are skipped), then the
// YAML file at path with ${VAR} references expanded. Every provider's
// options are validated before Load returns.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(expandEnv(raw))
}

// expandEnv replaces ${NAME} references with the environment value. Unset
// names expand to the empty string.
func expandEnv(raw []byte) []byte {
	return envRef.ReplaceAllFunc(raw, func(ref []byte) []byte {
		name := envRef.FindSubmatch(ref)[1]
		return []byte(os.Getenv(string(name)))
	})
}

// Parse decodes and validates an already expanded provider file.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}

	if len(cfg.Providers) == 0 {
		return nil, errors.New("no providers configured")
	}

	for name, p := range cfg.Providers {
		if err := authadapter.ValidateOptions(name, &p.Options); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
