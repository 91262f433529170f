package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file in a temporary directory that
// is cleaned up after the test.
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}
