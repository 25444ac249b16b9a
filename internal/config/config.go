// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultEagleAddress is where Eagle serves its local API unless told
// otherwise.
const DefaultEagleAddress = "http://localhost:41595"

// DefaultOutput is the CLI output format used when none is configured.
const DefaultOutput = "json"

// StructuredConfig is the top-level configuration container for go-eagle.
// It aggregates all sub-configurations and is populated by merging values
// from a config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address of the Eagle local API and the outbound
	// request timeout.
	Adapter Adapter `envPrefix:"EAGLE_"`

	// Log holds logger verbosity and the optional rotating log file.
	Log Log `envPrefix:"LOG_"`

	// Scanner holds settings for direct library folder scans.
	Scanner Scanner `envPrefix:"SCANNER_"`

	// Output is the CLI rendering format: "json", "yaml" or "table".
	// Env: OUTPUT
	Output string `env:"OUTPUT"`

	// FilePath is the optional path to a JSON or TOML configuration file,
	// chosen by extension. Populated via the CONFIG environment variable or
	// the --config flag.
	FilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the outbound Eagle HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the Eagle API, either a full URL
	// ("http://localhost:41595") or "host:port".
	// Env: EAGLE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request (e.g. "30s"). Zero leaves the
	// transport default, which never times out.
	// Env: EAGLE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// FilePath enables a rotating log file instead of stderr.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// Scanner holds settings for library folder scans.
type Scanner struct {
	// Workers is the number of metadata files parsed in parallel.
	// Zero or one scans sequentially.
	// Env: SCANNER_WORKERS
	Workers int `env:"WORKERS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Config file (path resolved from env and flags)
//  2. Environment variables, after loading a .env file if present
//  3. Command-line flags registered with [BindFlags]
//
// Defaults fill whatever is still empty. flags may be nil when no flag set
// is in use.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
