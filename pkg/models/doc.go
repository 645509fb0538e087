// Package models defines the values cathode-keys writes into the Cathode
// build.
//
// It includes:
//   - Keys: the Trakt API key and the Crashlytics API key
//
// Keys are opaque strings. They are neither validated nor escaped.
package models
