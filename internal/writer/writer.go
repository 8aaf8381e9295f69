// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package writer persists generated configuration files under the config
// root. Every write replaces the whole file; whether the file existed
// before only changes the log line.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/seatable-init/internal/logger"
)

// ErrFileSystem wraps every filesystem failure; the message names the path.
var ErrFileSystem = errors.New("filesystem failure")

// Writer writes files into a single config root directory.
type Writer struct {
	root   string
	logger *logger.Logger
}

// New returns a Writer for root.
func New(root string, log *logger.Logger) *Writer {
	return &Writer{root: root, logger: log}
}

// Root returns the config root directory.
func (w *Writer) Root() string {
	return w.root
}

// Path returns the absolute location of name inside the config root.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.root, name)
}

// EnsureRoot creates the config root if it does not exist.
func (w *Writer) EnsureRoot() error {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("%w: creating config directory %q: %w", ErrFileSystem, w.root, err)
	}

	return nil
}

// Exists reports whether name is present in the config root.
func (w *Writer) Exists(name string) (bool, error) {
	_, err := os.Stat(w.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %q: %w", ErrFileSystem, w.Path(name), err)
	}
}

// Write replaces name with content. The data goes to a temporary file in the
// same directory first and is renamed over the target, so a reader never
// sees a partially written file.
func (w *Writer) Write(name string, content []byte) error {
	exists, err := w.Exists(name)
	if err != nil {
		return err
	}

	if exists {
		w.logger.Info().Str("file", name).Msg("updating")
	} else {
		w.logger.Info().Str("file", name).Msg("generating since it does not exist yet")
	}

	if err := atomicWriteFile(w.Path(name), content); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	return nil
}

// ReadOptional returns the content of name and true, or false when the file
// does not exist.
func (w *Writer) ReadOptional(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(w.Path(name))
	switch {
	case err == nil:
		return data, true, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("%w: reading %q: %w", ErrFileSystem, w.Path(name), err)
	}
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %q: %w", path, err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op after a successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file for %q: %w", path, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file for %q: %w", path, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file for %q: %w", path, err)
	}

	if err := os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %q: %w", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}

	return nil
}
