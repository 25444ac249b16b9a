// Package config provides configuration loading, merging, and validation
// for go-eagle.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or TOML config file
//  2. Environment variables, including those from a .env file
//  3. Command-line flags
//
// Fields left empty by every source take their defaults, most notably
// [DefaultEagleAddress]. The main entry point is [GetStructuredConfig].
package config
