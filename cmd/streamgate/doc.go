// Package main hosts the streamgate CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the rule evaluator to the terminal
// ("check", "inspect"), to the transcoding host ("evaluate" reads one JSON
// request from stdin and writes the response to stdout), and the relocation
// utilities ("copy", "copy-workdir"). It centralizes configuration resolution
// and logger setup so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality in the internal packages
// first, then surface it through commands or flags here.
package main
