package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"circle/internal/game"
)

func TestParseConfig(t *testing.T) {
	in := `# circle settings
savedir = ~/circles
showguide = false
animate=false
confirm = false
unknown = 1
not a setting
`
	config := parseConfig(strings.NewReader(in), "/home/me")
	if config.SaveDirectory != filepath.Join("/home/me", "circles") {
		t.Errorf("SaveDirectory = %q", config.SaveDirectory)
	}
	if config.ShowGuide || config.Animate || config.Confirmations {
		t.Errorf("flags not applied: %+v", config)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config := parseConfig(strings.NewReader(""), "")
	if !config.ShowGuide || !config.Animate || !config.Confirmations || config.SaveDirectory != "" {
		t.Fatalf("defaults = %+v", config)
	}
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	config := &Config{SaveDirectory: dir}
	if got := config.GetSavePath("stroke.txt"); got != filepath.Join(dir, "stroke.txt") {
		t.Fatalf("GetSavePath = %q", got)
	}

	config.SaveDirectory = ""
	if got := config.GetSavePath("stroke.txt"); got != "stroke.txt" {
		t.Fatalf("GetSavePath without directory = %q", got)
	}
}

func TestGetSavePathLogsMkdirFailure(t *testing.T) {
	// A regular file where the save directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	game.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer game.SetLogger(nil)

	dir := filepath.Join(blocker, "out")
	config := &Config{SaveDirectory: dir}
	if got := config.GetSavePath("stroke.txt"); got != filepath.Join(dir, "stroke.txt") {
		t.Fatalf("GetSavePath = %q", got)
	}
	if !strings.Contains(buf.String(), "cannot create save directory") {
		t.Fatalf("log = %q, want a save directory warning", buf.String())
	}
}
