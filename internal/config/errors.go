package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid Eagle API settings
	// (for example, an unparsable address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidScannerConfigs indicates invalid scanner settings
	// (for example, a negative worker count).
	ErrInvalidScannerConfigs = errors.New("invalid scanner configuration")
	// ErrUnsupportedConfigFormat is returned for config files that are
	// neither .json nor .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
