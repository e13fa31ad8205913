// Package preflight provides readiness checks for the external binaries and
// filesystem paths streamgate depends on.
//
// The CLI "streamgate doctor" command runs RunAll and CheckSystemDeps to show
// whether ffprobe is reachable and the configured directories are usable.
// Directories that are not configured are skipped.
package preflight
