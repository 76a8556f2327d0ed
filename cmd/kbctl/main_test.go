package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprpal/kbgen/internal/karabiner"
)

const emptyMainConfig = `{"profiles":[{"name":"Default profile","complex_modifications":{"rules":[]}}]}`

type env struct {
	home    string
	workDir string
}

func newEnv(t *testing.T, withKarabiner bool) env {
	t.Helper()
	e := env{home: t.TempDir(), workDir: t.TempDir()}
	if withKarabiner {
		dir := filepath.Join(e.home, ".config", "karabiner")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "karabiner.json"), []byte(emptyMainConfig), 0o644))
	}
	return e
}

func (e env) mainConfig() string {
	return filepath.Join(e.home, ".config", "karabiner", "karabiner.json")
}

func (e env) app() *app {
	return newApp(
		func(key string) (string, bool) {
			if key == "HOME" {
				return e.home, true
			}
			return "", false
		},
		func() (string, error) { return e.workDir, nil },
	)
}

func (e env) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(e.app())
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestListSummarizesCatalog(t *testing.T) {
	e := newEnv(t, false)
	out, err := e.execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "rules,")
	assert.Contains(t, out, "manipulators")
}

func TestListJSON(t *testing.T) {
	e := newEnv(t, false)
	out, err := e.execute(t, "list", "--json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"title\": "), "got %q", out[:min(len(out), 40)])
}

func TestDiffThenApply(t *testing.T) {
	e := newEnv(t, true)

	out, err := e.execute(t, "diff")
	require.NoError(t, err)
	assert.NotContains(t, out, "No changes")
	assert.Contains(t, out, "vk1")

	doc, err := os.ReadFile(e.mainConfig())
	require.NoError(t, err)
	assert.Equal(t, emptyMainConfig, string(doc), "diff must not write")

	out, err = e.execute(t, "apply")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+filepath.Join(e.workDir, "personal_rules.json"))
	assert.Contains(t, out, "wrote "+e.mainConfig())

	out, err = e.execute(t, "diff")
	require.NoError(t, err)
	assert.Equal(t, "No changes\n", out)

	out, err = e.execute(t, "apply")
	require.NoError(t, err)
	assert.Contains(t, out, "already up to date")
}

func TestCheck(t *testing.T) {
	e := newEnv(t, true)
	out, err := e.execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration OK")
	assert.Contains(t, out, "differ")

	_, err = e.execute(t, "apply")
	require.NoError(t, err)
	out, err = e.execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "match the catalog")
}

func TestCheckRejectsMalformedConfig(t *testing.T) {
	e := newEnv(t, true)
	require.NoError(t, os.WriteFile(e.mainConfig(), []byte(`{"profiles":[]}`), 0o644))
	_, err := e.execute(t, "check")
	require.Error(t, err)
	assert.ErrorIs(t, err, karabiner.ErrNoProfiles)
}

func TestProfileFlag(t *testing.T) {
	e := newEnv(t, true)
	_, err := e.execute(t, "--profile", "Missing", "diff")
	require.Error(t, err)
	assert.ErrorIs(t, err, karabiner.ErrProfileNotFound)
}

func TestSettingsFlag(t *testing.T) {
	e := newEnv(t, true)
	settings := filepath.Join(t.TempDir(), "kbgen.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("title: From flag\nrulesFile: flagged\n"), 0o644))

	_, err := e.execute(t, "--settings", settings, "apply")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(e.workDir, "flagged.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "From flag"`)
}

func TestLintUsesConfiguredBinary(t *testing.T) {
	e := newEnv(t, false)
	script := filepath.Join(t.TempDir(), "karabiner_cli")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"lint $1 ok\"\n"), 0o755))

	out, err := e.execute(t, "lint", "--cli", script)
	require.NoError(t, err)
	assert.Contains(t, out, "lint --lint-complex-modifications ok")
}

func TestMissingHome(t *testing.T) {
	root := newRootCmd(newApp(
		func(string) (string, bool) { return "", false },
		func() (string, error) { return t.TempDir(), nil },
	))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"list"})
	require.Error(t, root.Execute())
}

func TestReconcileReinstallsDriftedRules(t *testing.T) {
	e := newEnv(t, true)
	a := e.app()
	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, a.load(root))

	r := newReconciler(a)
	require.NoError(t, r.reconcile(context.Background(), sourceConfig))
	inSync, err := a.updater().InSync(a.rulesFile())
	require.NoError(t, err)
	assert.True(t, inSync)

	// Simulate the Karabiner-Elements UI dropping the rules.
	require.NoError(t, os.WriteFile(e.mainConfig(), []byte(emptyMainConfig), 0o644))
	require.NoError(t, r.reconcile(context.Background(), sourceConfig))
	inSync, err = a.updater().InSync(a.rulesFile())
	require.NoError(t, err)
	assert.True(t, inSync)

	snap := r.metrics.Snapshot()
	assert.Equal(t, uint64(2), snap.Totals.Checked)
	assert.Equal(t, uint64(2), snap.Totals.Reinstalled)
	assert.Zero(t, snap.Totals.Errors)
}

func TestReloadSettings(t *testing.T) {
	e := newEnv(t, true)
	a := e.app()
	root := newRootCmd(a)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, a.load(root))

	settingsPath := filepath.Join(e.home, ".config", "kbgen", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(settingsPath), 0o755))
	require.NoError(t, os.WriteFile(settingsPath, []byte("title: Reloaded\n"), 0o644))

	r := newReconciler(a)
	require.NoError(t, r.reloadSettings(context.Background()))
	assert.Equal(t, "Reloaded", a.settings.Title)

	data, err := os.ReadFile(filepath.Join(e.workDir, "personal_rules.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Reloaded"`)
}
