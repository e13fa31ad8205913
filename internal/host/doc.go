// Package host adapts streamgate's rule evaluator and copy utilities to the
// transcoding host's JSON calling conventions.
//
// A request names a rule (or a copy operation), carries the file reference,
// the host's ffprobe data, and the plugin inputs as the host's strings.
// Inputs the host omits fall back to configuration. The adapter owns every
// calling-convention difference: filters answer with the "flag" shape
// ({processFile, infoLog}) and routers with the "ports" shape (which adds
// output 1 or 2). Nothing is retained between invocations.
package host
