package models

import "cathode-keys/pkg/errors"

// DefaultCrashlyticsKey is the 40-character placeholder used when no
// Crashlytics key is supplied
const DefaultCrashlyticsKey = "0000000000000000000000000000000000000000"

// Keys holds the credentials embedded into the generated files.
// Both values are opaque and written verbatim.
type Keys struct {
	APIKey         string
	CrashlyticsKey string
}

// KeysFromArgs builds Keys from positional arguments: the API key first,
// then an optional Crashlytics key. Arguments past the second are ignored.
func KeysFromArgs(args []string) (Keys, error) {
	if len(args) == 0 {
		return Keys{}, errors.MissingArgument("api_key")
	}

	keys := Keys{
		APIKey:         args[0],
		CrashlyticsKey: DefaultCrashlyticsKey,
	}
	if len(args) > 1 {
		keys.CrashlyticsKey = args[1]
	}
	return keys, nil
}

// UsesDefaultCrashlyticsKey reports whether the placeholder key is in use
func (k Keys) UsesDefaultCrashlyticsKey() bool {
	return k.CrashlyticsKey == DefaultCrashlyticsKey
}
