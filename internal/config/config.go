// Package config provides hierarchical configuration management for
// changes using koanf. Configuration is loaded with priority:
// environment variables > project config (.changes.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ProjectConfigName is the config file looked up in the working directory.
const ProjectConfigName = ".changes.yml"

// envPrefix namespaces the environment variable overrides, e.g.
// CHANGES_PRE_RELEASE_PREFIX sets pre_release_prefix.
const envPrefix = "CHANGES_"

// Configuration holds the changes CLI settings.
type Configuration struct {
	// Scope restricts history to version tags and commits for one scope.
	Scope string `koanf:"scope"`

	// PreReleasePrefix is used when generating pre-release versions.
	PreReleasePrefix string `koanf:"pre_release_prefix"`

	// Remote is the git remote tags are pushed to.
	Remote string `koanf:"remote"`

	// Template is an optional path to a custom notes template.
	Template string `koanf:"template"`

	// History is an optional path to a YAML file declaring releases made
	// before the repository adopted conventional commits.
	History string `koanf:"history"`
}

// defaults returns the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"scope":              "",
		"pre_release_prefix": "rc",
		"remote":             "origin",
		"template":           "",
		"history":            "",
	}
}

// Load loads configuration from the project config file and environment.
// A missing config file is not an error; a malformed one is. An empty
// path uses ProjectConfigName in the current directory.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		k.Set(key, value)
	}

	if path == "" {
		path = ProjectConfigName
	}
	if fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGES_PRE_RELEASE_PREFIX -> pre_release_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
