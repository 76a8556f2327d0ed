package ipc

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeCLI writes a shell script standing in for karabiner_cli. It echoes its
// arguments and fails when the linted file contains "bad".
func fakeCLI(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "karabiner_cli")
	script := `#!/bin/sh
case "$1" in
--version)
  echo "15.3.0"
  ;;
--lint-complex-modifications)
  if grep -q bad "$2"; then
    echo "$2: invalid manipulator" >&2
    exit 1
  fi
  echo "ok"
  ;;
*)
  echo "unknown option $1" >&2
  exit 2
  ;;
esac
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake cli: %v", err)
	}
	return path
}

func TestNewKarabinerCLIDefault(t *testing.T) {
	if got := NewKarabinerCLI("").Binary; got != DefaultKarabinerCLI {
		t.Fatalf("Binary = %q, want default", got)
	}
	if got := NewKarabinerCLI("/usr/local/bin/karabiner_cli").Binary; got != "/usr/local/bin/karabiner_cli" {
		t.Fatalf("Binary = %q", got)
	}
}

func TestVersion(t *testing.T) {
	cli := NewKarabinerCLI(fakeCLI(t))
	version, err := cli.Version(context.Background())
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if version != "15.3.0" {
		t.Fatalf("Version = %q", version)
	}
}

func TestLintComplexModifications(t *testing.T) {
	cli := NewKarabinerCLI(fakeCLI(t))
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"title":"fine","rules":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	report, err := cli.LintComplexModifications(context.Background(), good)
	if err != nil {
		t.Fatalf("lint good file: %v", err)
	}
	if report != "ok" {
		t.Fatalf("report = %q", report)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"title":"bad"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = cli.LintComplexModifications(context.Background(), bad)
	if err == nil {
		t.Fatalf("expected lint failure")
	}
	if !strings.Contains(err.Error(), "invalid manipulator") {
		t.Fatalf("error should carry stderr, got %v", err)
	}
}

func TestMissingBinary(t *testing.T) {
	cli := NewKarabinerCLI(filepath.Join(t.TempDir(), "absent"))
	if _, err := cli.Version(context.Background()); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}
