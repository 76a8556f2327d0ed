package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hyprpal/kbgen/internal/catalog"
	"github.com/hyprpal/kbgen/internal/config"
	"github.com/hyprpal/kbgen/internal/karabiner"
	"github.com/hyprpal/kbgen/internal/update"
	"github.com/hyprpal/kbgen/internal/util"
)

func main() {
	root := newRootCmd(newApp(os.LookupEnv, os.Getwd))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries flag values and the state loaded before each subcommand runs.
type app struct {
	lookupEnv func(string) (string, bool)
	getwd     func() (string, error)

	settingsPath string
	logLevel     string
	profile      string
	workDir      string

	home     string
	settings *config.Settings
	logger   *util.Logger
}

func newApp(lookupEnv func(string) (string, bool), getwd func() (string, error)) *app {
	return &app{lookupEnv: lookupEnv, getwd: getwd}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kbctl",
		Short: "Inspect and maintain the kbgen rule set in Karabiner-Elements",
		Long: `kbctl inspects the rules kbgen generates and the Karabiner-Elements
configuration they are installed into.

Settings are read from ~/.config/kbgen/config.yaml when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(a),
		newBrowseCmd(a),
		newDiffCmd(a),
		newCheckCmd(a),
		newLintCmd(a),
		newApplyCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.settingsPath, "settings", "", "settings file (default ~/.config/kbgen/config.yaml)")
	fs.StringVar(&a.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	fs.StringVarP(&a.profile, "profile", "p", "", "Karabiner-Elements profile to target (default: settings, then the first profile)")
	fs.StringVarP(&a.workDir, "workdir", "C", "", "directory for the rules snapshot (default: current)")
}

func (a *app) load(cmd *cobra.Command) error {
	home, err := config.HomeFromEnv(a.lookupEnv)
	if err != nil {
		return err
	}
	a.home = home

	path := a.settingsPath
	if path == "" {
		path = config.SettingsPath(home)
	}
	settings, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if a.profile != "" {
		settings.Profile = a.profile
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}
	a.settings = settings
	a.settingsPath = path

	if a.workDir == "" {
		wd, err := a.getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		a.workDir = wd
	}
	a.logger = util.NewLoggerWithWriter(util.ParseLogLevel(settings.LogLevel), cmd.ErrOrStderr())
	return nil
}

func (a *app) rulesFile() karabiner.RulesFile {
	file := catalog.File()
	if a.settings.Title != "" {
		file.Title = a.settings.Title
	}
	return file
}

func (a *app) paths() config.Paths {
	return config.NewPaths(a.home, a.workDir, a.settings.RulesFileName())
}

func (a *app) updater() *update.Updater {
	return update.New(a.paths(), a.settings.Profile, a.logger)
}
