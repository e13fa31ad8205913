// Package streams classifies ffprobe stream records into typed groups.
//
// Classify never fails. Missing fields fall back to safe defaults (empty
// codec, zero channels, "und" language) and records with an unrecognized
// codec_type stay in the combined list so ordering checks still see them.
//
// This package depends only on internal/media/ffprobe and internal/language.
package streams
