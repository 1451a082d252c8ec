package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "host: tcp://10.0.0.5:2376\napi_version: \"1.48\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Host != "tcp://10.0.0.5:2376" {
		t.Errorf("host = %q", s.Host)
	}
	if s.APIVersion != "1.48" {
		t.Errorf("api version = %q", s.APIVersion)
	}
}

func TestLoadFileMissing(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("a missing settings file must not be an error, got %v", err)
	}
	if s != (Settings{}) {
		t.Errorf("settings = %+v, want zero value", s)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("host: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
