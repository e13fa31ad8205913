package testsupport

import (
	"path/filepath"
	"testing"

	"streamgate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.WorkDir = filepath.Join(base, "work")
	cfgVal.Paths.LogDir = ""
	cfgVal.Relocate.BufferMiB = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithComplianceLanguages sets the compliance language list.
func WithComplianceLanguages(list string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Compliance.Languages = list
	}
}

// WithPreferredLanguages sets the order rule's preferred audio languages.
func WithPreferredLanguages(list string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Order.PreferredLanguages = list
	}
}

// WithUnwantedCodecs sets the unwanted video codec denylist.
func WithUnwantedCodecs(list string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Codecs.UnwantedVideo = list
	}
}

// WithOutputDir points relocation at a temp "out" directory.
func WithOutputDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Relocate.OutputDir = filepath.Join(b.baseDir, "out")
	}
}

// WithLibraryRoot points relocation at a temp "library" directory and keeps
// relative paths.
func WithLibraryRoot() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Relocate.LibraryRoot = filepath.Join(b.baseDir, "library")
		b.cfg.Relocate.KeepRelativePath = true
	}
}

// WithLogDir enables the file log under the temp base directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithFFprobe sets the ffprobe binary.
func WithFFprobe(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Probe.FFprobeBinary = binary
	}
}
