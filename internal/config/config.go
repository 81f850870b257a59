// Package config reads swagsplit defaults from SWAGSPLIT_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/swagsplit/bundler"
	"github.com/erraggy/swagsplit/oaserrors"
	"github.com/erraggy/swagsplit/parser"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBundler        = "SWAGSPLIT_BUNDLER"
	EnvBundlerTimeout = "SWAGSPLIT_BUNDLER_TIMEOUT"
	EnvMaxAttempts    = "SWAGSPLIT_MAX_ATTEMPTS"
	EnvBundleOutput   = "SWAGSPLIT_BUNDLE_OUTPUT"
	EnvExclusionsFile = "SWAGSPLIT_EXCLUSIONS_FILE"
	EnvNative         = "SWAGSPLIT_NATIVE"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	// Bundler is the external bundler command.
	Bundler string
	// BundlerTimeout bounds each bundler run. Zero waits indefinitely.
	BundlerTimeout time.Duration
	// MaxAttempts bounds the resolution loop. Zero is unbounded.
	MaxAttempts int
	// BundleOutput overrides the bundle path.
	BundleOutput string
	// ExclusionsFile is the exclusion table used when none is given.
	ExclusionsFile string
	// Native selects the in-process bundler.
	Native bool
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &oaserrors.ConfigError{Option: "env-file", Value: f, Cause: err}
		}
	}
	return nil
}

// Load reads configuration from the environment. Invalid values log a
// warning and fall back to the default.
func Load(logger parser.Logger) *Config {
	logger = parser.LoggerOrNop(logger)
	return &Config{
		Bundler:        envString(EnvBundler, bundler.DefaultCommand),
		BundlerTimeout: envDuration(logger, EnvBundlerTimeout, 0),
		MaxAttempts:    envInt(logger, EnvMaxAttempts, 0),
		BundleOutput:   os.Getenv(EnvBundleOutput),
		ExclusionsFile: os.Getenv(EnvExclusionsFile),
		Native:         envBool(logger, EnvNative, false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(logger parser.Logger, key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(logger parser.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		logger.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(logger parser.Logger, key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		logger.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
