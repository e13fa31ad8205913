// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no streamgate-specific dependencies. Hosts usually hand
// us probe data they already collected, so Parse is the common entry point;
// Inspect runs ffprobe directly for the CLI.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//   - Format: container-level metadata (duration, size, bitrate)
//
// Helper methods on Result report stream counts and whether any stream data
// was present at all, which the rule evaluators use to pick their
// missing-data policy.
package ffprobe
