package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skinviewer.yaml")
	content := `
listen: ":8080"
stathat_key: "stats@example.com"
resolver: "1.1.1.1:53"
fetch_timeout: 3s
max_texture_bytes: 65536
max_texture_pixels: 16384
session_server: "http://sessions.internal"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-config", path,
		"-listen", ":9090",
		"-allow-private",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Listen = ":9090"
	want.StatHatKey = "stats@example.com"
	want.Resolver = "1.1.1.1:53"
	want.AllowPrivate = true
	want.FetchTimeout = 3 * time.Second
	want.MaxTextureBytes = 65536
	want.MaxTexturePixels = 16384
	want.SessionServer = "http://sessions.internal"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := parseConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-config", "/nonexistent/skinviewer.yaml"})
	if err == nil {
		t.Error("parseConfig accepted a missing config file")
	}
}
