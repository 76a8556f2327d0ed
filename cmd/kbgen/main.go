package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hyprpal/kbgen/internal/catalog"
	"github.com/hyprpal/kbgen/internal/config"
	"github.com/hyprpal/kbgen/internal/update"
	"github.com/hyprpal/kbgen/internal/util"
)

func main() {
	workDir, err := os.Getwd()
	if err != nil {
		exitErr(fmt.Errorf("resolve working directory: %w", err))
	}
	if err := run(os.LookupEnv, workDir, os.Stderr); err != nil {
		exitErr(err)
	}
}

func run(lookupEnv func(string) (string, bool), workDir string, logOut io.Writer) error {
	home, err := config.HomeFromEnv(lookupEnv)
	if err != nil {
		return err
	}
	settings, err := config.Load(config.SettingsPath(home))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	logger := util.NewLoggerWithWriter(util.ParseLogLevel(settings.LogLevel), logOut)
	defer logger.Sync()

	file := catalog.File()
	if settings.Title != "" {
		file.Title = settings.Title
	}

	paths := config.NewPaths(home, workDir, settings.RulesFileName())
	res, err := update.New(paths, settings.Profile, logger).Update(file)
	if err != nil {
		return err
	}
	if res.Changed {
		logger.Infof("installed %d rules into %s", len(file.Rules), paths.MainConfig)
	} else {
		logger.Infof("%s already up to date", paths.MainConfig)
	}
	return nil
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
