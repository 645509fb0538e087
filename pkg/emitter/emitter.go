package emitter

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"cathode-keys/pkg/config"
	"cathode-keys/pkg/errors"
	"cathode-keys/pkg/models"
)

// filePerm is applied to newly created files; existing files keep their mode
const filePerm = 0o644

// Emitter writes the generated resource and manifest files
type Emitter struct {
	cfg    *config.Config
	logger log.FieldLogger
}

type output struct {
	name   string
	path   string
	render func(models.Keys) ([]byte, error)
}

// New creates an emitter writing to the locations in cfg.
// A nil logger falls back to the standard logrus logger.
func New(cfg *config.Config, logger log.FieldLogger) (*Emitter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Emitter{cfg: cfg, logger: logger}, nil
}

// Emit writes the secrets file and then the manifest, returning the paths
// written. It stops at the first failure; a file already written stays in
// place.
func (e *Emitter) Emit(ctx context.Context, keys models.Keys) ([]string, error) {
	outputs := []output{
		{name: "secrets", path: e.cfg.SecretsFile(), render: RenderSecrets},
		{name: "manifest", path: e.cfg.ManifestFile(), render: RenderManifest},
	}

	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		data, err := out.render(keys)
		if err != nil {
			return written, &errors.EmitError{Op: "render " + out.name, Path: out.path, Err: err}
		}

		logger := e.logger.WithFields(log.Fields{
			"file": out.name,
			"path": out.path,
		})
		logger.WithField("bytes", len(data)).Debug("Rendered file")

		if err := writeFile(logger, out.path, data); err != nil {
			return written, errors.NewFilesystemError("write "+out.name, out.path, err)
		}

		logger.Info("Wrote file")
		written = append(written, out.path)
	}

	if keys.UsesDefaultCrashlyticsKey() {
		e.logger.Debug("No Crashlytics key supplied, wrote placeholder")
	}
	return written, nil
}
