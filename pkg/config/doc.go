// Package config provides the output locations for cathode-keys.
//
// The paths are compile-time constants matching the layout of the Cathode
// Android project:
//   - cathode/src/main/res/values/secrets.xml (Trakt API key resource)
//   - cathode/src/release/AndroidManifest.xml (Crashlytics key manifest fragment)
//
// No environment variables are read. A Config is built with Default and
// handed to the emitter explicitly, so tests can point it at another root.
package config
