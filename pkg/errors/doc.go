// Package errors defines the error kinds reported by cathode-keys.
//
// Two kinds abort a run:
//   - ErrMissingArgument: the API key argument was not supplied
//   - ErrFilesystem: a generated file could not be written
//
// Write failures are returned as *EmitError values carrying the failed
// operation and path. Use errors.Is against the sentinels, or the
// IsMissingArgument and IsFilesystem helpers, to classify them.
package errors
