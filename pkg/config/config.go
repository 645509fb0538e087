package config

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultRoot is the directory the output paths are resolved against
	DefaultRoot = "."

	// DefaultSecretsPath is the string resource file holding the Trakt API key
	DefaultSecretsPath = "cathode/src/main/res/values/secrets.xml"

	// DefaultManifestPath is the release manifest fragment holding the Crashlytics key
	DefaultManifestPath = "cathode/src/release/AndroidManifest.xml"
)

// Config holds the output locations of the generated files
type Config struct {
	// Root is the directory relative paths are joined to
	Root string

	// Output files, relative to Root
	SecretsPath  string
	ManifestPath string
}

// Default returns the hard-coded output locations, relative to the
// working directory.
func Default() *Config {
	return &Config{
		Root:         DefaultRoot,
		SecretsPath:  DefaultSecretsPath,
		ManifestPath: DefaultManifestPath,
	}
}

// WithRoot returns a copy of the config resolved against root
func (c *Config) WithRoot(root string) *Config {
	cp := *c
	cp.Root = root
	return &cp
}

// SecretsFile returns the full path of the secrets resource file
func (c *Config) SecretsFile() string {
	return c.resolve(c.SecretsPath)
}

// ManifestFile returns the full path of the release manifest
func (c *Config) ManifestFile() string {
	return c.resolve(c.ManifestPath)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.SecretsPath == "" {
		return fmt.Errorf("secrets path is required")
	}
	if c.ManifestPath == "" {
		return fmt.Errorf("manifest path is required")
	}
	if c.SecretsFile() == c.ManifestFile() {
		return fmt.Errorf("secrets and manifest must be written to different files")
	}
	return nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.Root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Root, path)
}
