// Package update writes generated rules to disk and splices them into
// Karabiner-Elements' configuration.
//
// An update writes three files in sequence: the rules snapshot in the
// working directory, its copy in the asset directory, and karabiner.json.
// The writes are not transactional. A failure after the first or second
// write leaves the earlier files updated and karabiner.json untouched.
package update

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyprpal/kbgen/internal/config"
	"github.com/hyprpal/kbgen/internal/karabiner"
	"github.com/hyprpal/kbgen/internal/util"
)

// ErrConfigDirMissing reports that Karabiner-Elements has not created its
// configuration directory.
var ErrConfigDirMissing = errors.New("karabiner configuration directory does not exist")

// Updater installs a rules file.
type Updater struct {
	paths   config.Paths
	profile string
	logger  *util.Logger
}

// New returns an updater for paths. An empty profile targets the first
// profile in karabiner.json.
func New(paths config.Paths, profile string, logger *util.Logger) *Updater {
	if logger == nil {
		logger = util.NewNopLogger()
	}
	return &Updater{paths: paths, profile: profile, logger: logger}
}

// Paths returns the files the updater touches.
func (u *Updater) Paths() config.Paths {
	return u.paths
}

// Plan is the outcome of splicing rules into karabiner.json in memory.
type Plan struct {
	Rules   []byte
	Current []byte
	Updated []byte
	Diff    string
	Changed bool
}

// Result describes a completed update.
type Result struct {
	Written []string
	Changed bool
	Diff    string
}

// Plan computes the updated karabiner.json without writing anything.
func (u *Updater) Plan(file karabiner.RulesFile) (Plan, error) {
	if err := u.checkConfigDir(); err != nil {
		return Plan{}, err
	}
	rules, err := karabiner.Encode(file)
	if err != nil {
		return Plan{}, fmt.Errorf("serialize rules: %w", err)
	}
	return u.plan(rules, file.Rules)
}

func (u *Updater) plan(encoded []byte, rules []karabiner.Rule) (Plan, error) {
	current, err := os.ReadFile(u.paths.MainConfig)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", u.paths.MainConfig, err)
	}
	updated, err := karabiner.SpliceRules(current, u.profile, rules)
	if err != nil {
		return Plan{}, fmt.Errorf("update %s: %w", u.paths.MainConfig, err)
	}
	diff := Diff(current, updated)
	return Plan{
		Rules:   encoded,
		Current: current,
		Updated: updated,
		Diff:    diff,
		Changed: diff != "",
	}, nil
}

// Update writes the rules snapshot, copies it into the asset directory and
// rewrites karabiner.json with the rules spliced in. Nothing is written when
// the configuration directory is missing.
func (u *Updater) Update(file karabiner.RulesFile) (Result, error) {
	if err := u.checkConfigDir(); err != nil {
		return Result{}, err
	}
	encoded, err := karabiner.Encode(file)
	if err != nil {
		return Result{}, fmt.Errorf("serialize rules: %w", err)
	}

	var res Result
	if err := os.WriteFile(u.paths.LocalRules, encoded, 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", u.paths.LocalRules, err)
	}
	res.Written = append(res.Written, u.paths.LocalRules)
	u.logger.Debugf("wrote %d bytes to %s", len(encoded), u.paths.LocalRules)

	if err := os.MkdirAll(filepath.Dir(u.paths.AssetRules), 0o755); err != nil {
		return res, fmt.Errorf("create asset directory: %w", err)
	}
	if err := copyFile(u.paths.AssetRules, u.paths.LocalRules); err != nil {
		return res, fmt.Errorf("copy rules to %s: %w", u.paths.AssetRules, err)
	}
	res.Written = append(res.Written, u.paths.AssetRules)
	u.logger.Debugf("copied %s to %s", u.paths.LocalRules, u.paths.AssetRules)

	plan, err := u.plan(encoded, file.Rules)
	if err != nil {
		return res, err
	}
	if plan.Changed {
		u.logger.Debugf("karabiner.json changes:\n%s", plan.Diff)
	} else {
		u.logger.Debugf("installed rules already match, rewriting %s", u.paths.MainConfig)
	}
	if err := os.WriteFile(u.paths.MainConfig, plan.Updated, 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", u.paths.MainConfig, err)
	}
	res.Written = append(res.Written, u.paths.MainConfig)
	res.Changed = plan.Changed
	res.Diff = plan.Diff
	return res, nil
}

// InSync reports whether karabiner.json already holds exactly the rules of
// file.
func (u *Updater) InSync(file karabiner.RulesFile) (bool, error) {
	if err := u.checkConfigDir(); err != nil {
		return false, err
	}
	current, err := os.ReadFile(u.paths.MainConfig)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", u.paths.MainConfig, err)
	}
	installed, err := karabiner.CurrentRules(current, u.profile)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", u.paths.MainConfig, err)
	}
	rules := file.Rules
	if rules == nil {
		rules = []karabiner.Rule{}
	}
	wanted, err := karabiner.Encode(rules)
	if err != nil {
		return false, fmt.Errorf("serialize rules: %w", err)
	}
	equal, err := Equal(installed, wanted)
	if err != nil {
		return false, fmt.Errorf("compare installed rules: %w", err)
	}
	return equal, nil
}

func (u *Updater) checkConfigDir() error {
	info, err := os.Stat(u.paths.ConfigDir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrConfigDirMissing, u.paths.ConfigDir)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", u.paths.ConfigDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrConfigDirMissing, u.paths.ConfigDir)
	}
	return nil
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

