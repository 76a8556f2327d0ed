package ipc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultKarabinerCLI is where Karabiner-Elements installs its command line tool.
const DefaultKarabinerCLI = "/Library/Application Support/org.pqrs/Karabiner-Elements/bin/karabiner_cli"

// KarabinerCLI wraps karabiner_cli shell-outs.
type KarabinerCLI struct {
	Binary string
}

// NewKarabinerCLI returns a client for binary, or for the default install
// location when binary is empty.
func NewKarabinerCLI(binary string) *KarabinerCLI {
	if binary == "" {
		binary = DefaultKarabinerCLI
	}
	return &KarabinerCLI{Binary: binary}
}

func (c *KarabinerCLI) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		return nil, fmt.Errorf("karabiner_cli %s: %v: %s", strings.Join(args, " "), err, detail)
	}
	return stdout.Bytes(), nil
}

// LintComplexModifications checks a rules file with Karabiner-Elements' own
// parser. The returned report is the tool's output on success.
func (c *KarabinerCLI) LintComplexModifications(ctx context.Context, path string) (string, error) {
	out, err := c.run(ctx, "--lint-complex-modifications", path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Version returns the installed Karabiner-Elements version.
func (c *KarabinerCLI) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
