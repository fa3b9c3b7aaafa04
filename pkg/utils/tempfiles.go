package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// CreateTempFile creates a file in dir named prefix_<uuid>ext, creating dir
// if needed. Returns the full path and the open file handle.
func CreateTempFile(dir, prefix, ext string) (string, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
	fullPath := filepath.Join(dir, name)
	f, err := os.OpenFile(fullPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", nil, err
	}
	return fullPath, f, nil
}

// WriteTempFile writes data to a new temp file and returns its path
func WriteTempFile(dir, prefix, ext string, data []byte) (string, error) {
	path, f, err := CreateTempFile(dir, prefix, ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// RemoveAllTempFiles removes the files in dir matching prefix_*ext.
// Returns a combined error if any could not be deleted.
func RemoveAllTempFiles(dir, prefix, ext string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	pattern := filepath.Join(dir, fmt.Sprintf("%s_*%s", prefix, ext))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to glob temp files: %w", err)
	}

	var errs []error
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", file, err))
		}
	}
	return errors.Join(errs...)
}

// TempFileExists checks if a temp file exists.
func TempFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
