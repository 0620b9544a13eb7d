// Package testutil locates the golden transcripts shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDir returns the absolute path to the golden transcript directory.
func GoldenDir() string {
	// golden/ sits next to this file.
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "golden")
}

// GoldenPath returns the absolute path of a golden transcript.
func GoldenPath(name string) string {
	return filepath.Join(GoldenDir(), name)
}

// ReadGolden returns the content of a golden transcript, failing the test if
// it cannot be read.
func ReadGolden(t testing.TB, name string) string {
	t.Helper()
	data, err := os.ReadFile(GoldenPath(name))
	if err != nil {
		t.Fatalf("read golden transcript %s: %v", name, err)
	}
	return string(data)
}
