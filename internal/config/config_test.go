package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHomeFromEnv(t *testing.T) {
	home, err := HomeFromEnv(func(key string) (string, bool) {
		if key != "HOME" {
			t.Fatalf("unexpected lookup of %q", key)
		}
		return "/Users/me", true
	})
	if err != nil {
		t.Fatalf("HomeFromEnv: %v", err)
	}
	if home != "/Users/me" {
		t.Fatalf("home = %q", home)
	}

	for _, lookup := range []func(string) (string, bool){
		func(string) (string, bool) { return "", false },
		func(string) (string, bool) { return "  ", true },
	} {
		if _, err := HomeFromEnv(lookup); !errors.Is(err, ErrHomeUnset) {
			t.Fatalf("expected ErrHomeUnset, got %v", err)
		}
	}
}

func TestNewPaths(t *testing.T) {
	got := NewPaths("/Users/me", "/src/dotfiles", "personal_rules.json")
	want := Paths{
		ConfigDir:  "/Users/me/.config/karabiner",
		LocalRules: "/src/dotfiles/personal_rules.json",
		AssetRules: "/Users/me/.config/karabiner/assets/complex_modifications/personal_rules.json",
		MainConfig: "/Users/me/.config/karabiner/karabiner.json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewPaths mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
	if s.RulesFileName() != "personal_rules.json" {
		t.Fatalf("RulesFileName = %q", s.RulesFileName())
	}
	if s.Debounce() != 250*time.Millisecond {
		t.Fatalf("Debounce = %v", s.Debounce())
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
title: Work laptop
rulesFile: work.json
profile: Work
logLevel: debug
karabinerCli: /opt/bin/karabiner_cli
watch:
  debounceMs: 1000
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Settings{
		Title:        "Work laptop",
		RulesFile:    "work.json",
		Profile:      "Work",
		LogLevel:     "debug",
		KarabinerCLI: "/opt/bin/karabiner_cli",
		Watch:        WatchSettings{DebounceMs: 1000},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
	if s.RulesFileName() != "work.json" {
		t.Fatalf("RulesFileName = %q", s.RulesFileName())
	}
}

func TestLegacyRulesFilename(t *testing.T) {
	s, err := Parse([]byte("rulesFilename: legacy\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.RulesFileName() != "legacy.json" {
		t.Fatalf("RulesFileName = %q", s.RulesFileName())
	}

	s, err = Parse([]byte("rulesFilename: legacy\nrulesFile: current\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.RulesFile != "current" {
		t.Fatalf("rulesFile should win over rulesFilename, got %q", s.RulesFile)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := map[string]string{
		"path separator":    "rulesFile: ../escape.json\n",
		"only extension":    "rulesFile: .json\n",
		"negative debounce": "watch:\n  debounceMs: -5\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("title: [unterminated\n")); err == nil {
		t.Fatalf("expected decode error")
	}
}
