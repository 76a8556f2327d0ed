package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hyprpal/kbgen/internal/ipc"
	"github.com/hyprpal/kbgen/internal/karabiner"
	"github.com/hyprpal/kbgen/internal/ui/browse"
	"github.com/hyprpal/kbgen/internal/ui/tui"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Summarize the generated rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := a.rulesFile()
			if asJSON {
				data, err := karabiner.Encode(file)
				if err != nil {
					return fmt.Errorf("serialize rules: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return tui.Summary(cmd.OutOrStdout(), file.Rules)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rules file instead of a table")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the generated rules interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := a.rulesFile()
			return browse.Run(file.Title, file.Rules)
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how applying the rules would change karabiner.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.updater().Plan(a.rulesFile())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !plan.Changed {
				fmt.Fprintln(out, "No changes")
				return nil
			}
			fmt.Fprint(out, plan.Diff)
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the shape of karabiner.json and report whether the rules are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := a.paths()
			doc, err := os.ReadFile(paths.MainConfig)
			if err != nil {
				return fmt.Errorf("read %s: %w", paths.MainConfig, err)
			}
			if err := karabiner.ValidateDocument(doc, a.settings.Profile); err != nil {
				return fmt.Errorf("%s: %w", paths.MainConfig, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration OK")
			inSync, err := a.updater().InSync(a.rulesFile())
			if err != nil {
				return err
			}
			if inSync {
				fmt.Fprintln(out, "Installed rules match the catalog")
			} else {
				fmt.Fprintln(out, "Installed rules differ from the catalog; run kbctl apply")
			}
			return nil
		},
	}
}

func newLintCmd(a *app) *cobra.Command {
	var binary string
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the generated rules with karabiner_cli",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if binary == "" {
				binary = a.settings.KarabinerCLI
			}
			data, err := karabiner.Encode(a.rulesFile())
			if err != nil {
				return fmt.Errorf("serialize rules: %w", err)
			}
			dir, err := os.MkdirTemp("", "kbctl-lint-")
			if err != nil {
				return fmt.Errorf("create temp dir: %w", err)
			}
			defer os.RemoveAll(dir)
			path := filepath.Join(dir, a.settings.RulesFileName())
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			a.logger.Debugf("linting %s with %s", path, binary)
			report, err := ipc.NewKarabinerCLI(binary).LintComplexModifications(cmd.Context(), path)
			if err != nil {
				return err
			}
			if report == "" {
				report = "ok"
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().StringVar(&binary, "cli", "", "path to karabiner_cli (default: settings, then the standard install location)")
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Write the rules and install them into karabiner.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.updater().Update(a.rulesFile())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range res.Written {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			if !res.Changed {
				fmt.Fprintln(out, "Installed rules were already up to date")
			}
			return nil
		},
	}
}
