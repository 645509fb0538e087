// Package emitter renders and writes the Cathode key files.
//
// Keys are substituted into two fixed templates without escaping. Each file
// is written to a pending temp file in its target directory and renamed over
// the target, so a reader never sees a partially written file. Directories
// are never created: a missing directory is reported as ErrFilesystem.
package emitter
