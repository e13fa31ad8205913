// Package services defines shared utilities consumed by the rule evaluators,
// the relocation helpers and the host adapter.
//
// Key responsibilities:
//   - Context helpers that stamp rule names, file references and invocation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure causes
//     classifiable, and ExitCode which maps them onto CLI exit statuses.
package services
