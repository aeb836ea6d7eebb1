// Package testutil holds the LYML fixtures shared by tests and benchmarks.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"
)

//go:embed testdata
var fixtures embed.FS

// ReadTestData returns the content of the embedded fixture name.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(fixtures, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %q: %w", name, err)
	}
	return data, nil
}

// MustReadTestData is ReadTestData that stops tb on error.
func MustReadTestData(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	return data
}
