package preflight

import (
	"strings"

	"streamgate/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the directory checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Work directory", cfg.Paths.WorkDir)}
	if strings.TrimSpace(cfg.Paths.LogDir) != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	if strings.TrimSpace(cfg.Relocate.OutputDir) != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Relocate.OutputDir))
	}
	if strings.TrimSpace(cfg.Relocate.LibraryRoot) != "" {
		results = append(results, CheckReadable("Library root", cfg.Relocate.LibraryRoot))
	}
	return results
}
