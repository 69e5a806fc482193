package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
year: 2022
session_file: /tmp/session
debug: true
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Year = 2022
	want.SessionFile = "/tmp/session"
	want.Debug = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if diff := cmp.Diff(Default(), got); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	for _, body := range []string{
		"year: [",
		"year: 1999\n",
	} {
		if _, err := Load(writeFile(t, body)); err == nil {
			t.Errorf("Load(%q) succeeded", body)
		}
	}
}
