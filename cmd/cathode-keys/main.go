package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"cathode-keys/pkg/config"
	"cathode-keys/pkg/emitter"
	"cathode-keys/pkg/errors"
	"cathode-keys/pkg/models"
)

const (
	exitOK    = 0
	exitError = 1
)

const usage = "usage: cathode-keys <api_key> [crashlytics_key]"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], config.Default(), os.Stderr))
}

// run writes the key files for args and returns the process exit code.
// Every argument is positional, so keys may look like flags ("-v", "--").
// Logs and usage go to stderr so build scripts can keep stdout.
func run(ctx context.Context, args []string, cfg *config.Config, stderr io.Writer) int {
	logger := newLogger(stderr)

	// Setup keys before touching the filesystem
	keys, err := models.KeysFromArgs(args)
	if err != nil {
		logger.WithError(err).Error("Failed to read keys")
		if errors.IsMissingArgument(err) {
			fmt.Fprintln(stderr, usage)
		}
		return exitError
	}
	if extra := len(args) - 2; extra > 0 {
		logger.WithField("count", extra).Warn("Ignoring extra arguments")
	}

	em, err := emitter.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to create emitter")
		return exitError
	}

	written, err := em.Emit(ctx, keys)
	if err != nil {
		entry := logger.WithError(err).WithField("written", len(written))
		if errors.IsFilesystem(err) {
			entry.Error("Failed to write key files")
		} else {
			entry.Error("Failed to emit key files")
		}
		return exitError
	}

	logger.WithField("files", len(written)).Debug("Key files generated")
	return exitOK
}

func newLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)
	return logger
}
