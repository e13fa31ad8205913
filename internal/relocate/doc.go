// Package relocate copies the host's working file into another directory.
//
// Copy places the file under an output directory, optionally preserving the
// original file's sub-path below the library root. ToWorkDir copies into the
// job's working directory and always makes the copy the working file. Both
// skip the transfer when source and destination resolve to the same path,
// create missing directories, serialize concurrent local copies to the same
// destination with an advisory lock, and fail the whole operation on the
// first I/O error. Partial destination files are left for the host to clean
// up.
package relocate
