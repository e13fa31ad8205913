// Package config loads, normalizes, and validates streamgate configuration.
//
// It supplies repository defaults for every rule family and the relocation
// utilities, expands user paths (including tilde shortcuts), reads TOML files,
// and honours environment overrides such as STREAMGATE_LOG_LEVEL. Rule
// builders turn the loaded values into rules.Rule values so the CLI and the
// host adapter share one source of defaults.
package config
