package config

import (
	"errors"
	"fmt"
	"strings"

	"streamgate/internal/language"
	"streamgate/internal/rules"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCompliance(); err != nil {
		return err
	}
	if err := c.validateRelocate(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCompliance() error {
	if c.Compliance.TargetChannels < 0 {
		return errors.New("compliance.target_channels must be positive")
	}
	return nil
}

func (c *Config) validateRelocate() error {
	if c.Relocate.BufferMiB < 0 {
		return errors.New("relocate.buffer_mib must be positive")
	}
	if c.Relocate.BufferMiB > 1024 {
		return fmt.Errorf("relocate.buffer_mib must be at most 1024, got %d", c.Relocate.BufferMiB)
	}
	if c.Relocate.KeepRelativePath && strings.TrimSpace(c.Relocate.LibraryRoot) == "" {
		return errors.New("relocate.library_root must be set when relocate.keep_relative_path is true")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if c.Probe.TimeoutSeconds < 0 {
		return errors.New("probe.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// Warnings reports settings that load but are probably mistakes, such as
// language codes no rule will ever match.
func (c *Config) Warnings() []string {
	var warnings []string
	check := func(field, value string) {
		if unknown := language.Unknown(rules.ParseList(value)); len(unknown) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: unrecognized language codes %s", field, strings.Join(unknown, ", ")))
		}
	}
	check("compliance.languages", c.Compliance.Languages)
	check("order.preferred_languages", c.Order.PreferredLanguages)
	return warnings
}
