// Package config loads and validates the watchdog configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/watchdog/domain"
)

// Config is the top-level configuration for watchdog.
type Config struct {
	Dependencies []DependencyConfig `yaml:"dependencies"`
}

// DependencyConfig describes a single watched dependency.
type DependencyConfig struct {
	Name       string           `yaml:"name"`
	Source     SourceConfig     `yaml:"source"`
	Repository RepositoryConfig `yaml:"repository"`
}

// SourceConfig points at the manifest file carrying the watchdog markers.
type SourceConfig struct {
	File string `yaml:"file"`
}

// RepositoryConfig describes the upstream release source.
type RepositoryConfig struct {
	Type  string `yaml:"type"`  // "rss" or "oci"
	URL   string `yaml:"url"`   // feed URL or oci://registry/repository
	Token string `yaml:"token"` // Inline, ${ENV_VAR}, or file path (optional)
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables and resolving token file paths for registry credentials.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range cfg.Dependencies {
		cfg.Dependencies[i].Repository.Token = resolveToken(cfg.Dependencies[i].Repository.Token)
	}

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".watchdog.yaml",
		".watchdog.yml",
		"watchdog.yaml",
		"watchdog.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ToDomain converts a configuration entry into its runtime form.
func (d *DependencyConfig) ToDomain() domain.Dependency {
	return domain.Dependency{
		Name:       d.Name,
		SourceFile: d.Source.File,
		Repository: domain.Repository{
			Type:  d.Repository.Type,
			URL:   d.Repository.URL,
			Token: d.Repository.Token,
		},
	}
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if len(cfg.Dependencies) == 0 {
		return errors.New("no 'dependencies' section in config file")
	}

	for i, d := range cfg.Dependencies {
		if d.Name == "" {
			return fmt.Errorf("dependencies[%d].name is required", i)
		}
		if d.Source.File == "" {
			return fmt.Errorf("dependencies[%d].source.file is required", i)
		}
		if d.Repository.Type != domain.RepositoryTypeRSS &&
			d.Repository.Type != domain.RepositoryTypeOCI {
			return fmt.Errorf(
				"dependencies[%d].repository.type must be %q or %q, got %q",
				i, domain.RepositoryTypeRSS, domain.RepositoryTypeOCI, d.Repository.Type,
			)
		}
		if d.Repository.URL == "" {
			return fmt.Errorf("dependencies[%d].repository.url is required", i)
		}
	}

	return nil
}
