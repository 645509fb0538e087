//go:build !windows

package emitter

import (
	"fmt"

	"github.com/google/renameio/v2"
	log "github.com/sirupsen/logrus"
)

// writeFile atomically replaces path with data using renameio.
// The pending file lives next to the target, so a missing directory fails
// here instead of being created.
func writeFile(logger log.FieldLogger, path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(filePerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.WithError(err).Debug("Failed to clean up pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}

	// Target keeps its old content until the rename succeeds
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}
