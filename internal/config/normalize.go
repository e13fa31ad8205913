package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRules()
	if err := c.normalizeRelocate(); err != nil {
		return err
	}
	c.normalizeProbe()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv(envWorkDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.WorkDir = value
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(strings.TrimSpace(c.Paths.WorkDir)); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRules() {
	c.Compliance.Languages = strings.TrimSpace(c.Compliance.Languages)
	c.Compliance.TargetCodec = strings.ToLower(strings.TrimSpace(c.Compliance.TargetCodec))
	if c.Compliance.TargetCodec == "" {
		c.Compliance.TargetCodec = defaultTargetCodec
	}
	if c.Compliance.TargetChannels == 0 {
		c.Compliance.TargetChannels = defaultTargetChannels
	}
	c.Order.PreferredLanguages = strings.TrimSpace(c.Order.PreferredLanguages)
	c.Codecs.UnwantedVideo = strings.TrimSpace(c.Codecs.UnwantedVideo)
}

func (c *Config) normalizeRelocate() error {
	var err error
	if c.Relocate.OutputDir, err = expandPath(strings.TrimSpace(c.Relocate.OutputDir)); err != nil {
		return fmt.Errorf("relocate.output_dir: %w", err)
	}
	if c.Relocate.LibraryRoot, err = expandPath(strings.TrimSpace(c.Relocate.LibraryRoot)); err != nil {
		return fmt.Errorf("relocate.library_root: %w", err)
	}
	if c.Relocate.BufferMiB == 0 {
		c.Relocate.BufferMiB = defaultBufferMiB
	}
	return nil
}

func (c *Config) normalizeProbe() {
	c.Probe.FFprobeBinary = strings.TrimSpace(c.Probe.FFprobeBinary)
	if c.Probe.FFprobeBinary == "" {
		c.Probe.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Probe.TimeoutSeconds == 0 {
		c.Probe.TimeoutSeconds = defaultProbeTimeout
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "text", "console":
		c.Logging.Format = "console"
	default:
		c.Logging.Format = format
	}
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	default:
		c.Logging.Level = level
	}
}
