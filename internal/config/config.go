package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ToolName is the directory name Karabiner-Elements uses under ~/.config.
	ToolName = "karabiner"
	// MainConfigName is Karabiner-Elements' configuration document.
	MainConfigName = "karabiner.json"
	// DefaultRulesFile is the rules file name without extension.
	DefaultRulesFile = "personal_rules"

	defaultDebounce = 250 * time.Millisecond
)

// ErrHomeUnset reports a missing home directory variable.
var ErrHomeUnset = errors.New("HOME is not set")

// HomeFromEnv resolves the home directory through lookup, normally
// os.LookupEnv.
func HomeFromEnv(lookup func(string) (string, bool)) (string, error) {
	home, ok := lookup("HOME")
	if !ok || strings.TrimSpace(home) == "" {
		return "", ErrHomeUnset
	}
	return home, nil
}

// SettingsPath returns the location of the optional kbgen settings file.
func SettingsPath(home string) string {
	return filepath.Join(home, ".config", "kbgen", "config.yaml")
}

// Settings are optional overrides read from the settings file.
type Settings struct {
	Title        string        `yaml:"title"`
	RulesFile    string        `yaml:"rulesFile"`
	Profile      string        `yaml:"profile"`
	LogLevel     string        `yaml:"logLevel"`
	KarabinerCLI string        `yaml:"karabinerCli"`
	Watch        WatchSettings `yaml:"watch"`
}

// WatchSettings tune kbctl watch.
type WatchSettings struct {
	DebounceMs int `yaml:"debounceMs"`
}

// UnmarshalYAML accepts rulesFilename as an older spelling of rulesFile.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	type rawSettings struct {
		Title           string        `yaml:"title"`
		RulesFile       string        `yaml:"rulesFile"`
		LegacyRulesFile string        `yaml:"rulesFilename"`
		Profile         string        `yaml:"profile"`
		LogLevel        string        `yaml:"logLevel"`
		KarabinerCLI    string        `yaml:"karabinerCli"`
		Watch           WatchSettings `yaml:"watch"`
	}

	var raw rawSettings
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.Title = raw.Title
	s.Profile = raw.Profile
	s.LogLevel = raw.LogLevel
	s.KarabinerCLI = raw.KarabinerCLI
	s.Watch = raw.Watch

	s.RulesFile = raw.RulesFile
	if s.RulesFile == "" {
		s.RulesFile = raw.LegacyRulesFile
	}
	return nil
}

// Default returns the settings used when no settings file exists.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load reads and validates the settings file at path. A missing file yields
// the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) applyDefaults() {
	if s.RulesFile == "" {
		s.RulesFile = DefaultRulesFile
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.Watch.DebounceMs == 0 {
		s.Watch.DebounceMs = int(defaultDebounce / time.Millisecond)
	}
}

// Validate performs basic sanity checks.
func (s *Settings) Validate() error {
	if strings.ContainsAny(s.RulesFile, `/\`) {
		return fmt.Errorf("rulesFile must be a file name, got %q", s.RulesFile)
	}
	if strings.TrimSuffix(s.RulesFile, ".json") == "" {
		return fmt.Errorf("rulesFile cannot be empty")
	}
	if s.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounceMs cannot be negative")
	}
	return nil
}

// RulesFileName returns the rules file name with its .json extension.
func (s *Settings) RulesFileName() string {
	return strings.TrimSuffix(s.RulesFile, ".json") + ".json"
}

// Debounce returns the watch debounce window.
func (s *Settings) Debounce() time.Duration {
	return time.Duration(s.Watch.DebounceMs) * time.Millisecond
}

// Paths are the files one update touches.
type Paths struct {
	// ConfigDir is <home>/.config/karabiner and must already exist.
	ConfigDir string
	// LocalRules is the rules snapshot written to the working directory.
	LocalRules string
	// AssetRules is the copy Karabiner-Elements offers for import.
	AssetRules string
	// MainConfig is karabiner.json.
	MainConfig string
}

// NewPaths derives the update targets from the home and working directories.
func NewPaths(home, workDir, rulesFileName string) Paths {
	configDir := filepath.Join(home, ".config", ToolName)
	return Paths{
		ConfigDir:  configDir,
		LocalRules: filepath.Join(workDir, rulesFileName),
		AssetRules: filepath.Join(configDir, "assets", "complex_modifications", rulesFileName),
		MainConfig: filepath.Join(configDir, MainConfigName),
	}
}
