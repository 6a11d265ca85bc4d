package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/akash-sh/akash/internal/adapters/oscommand"
	"github.com/akash-sh/akash/internal/adapters/osenv"
	"github.com/akash-sh/akash/internal/adapters/predefinedaliases"
	"github.com/akash-sh/akash/internal/adapters/process"
	"github.com/akash-sh/akash/internal/adapters/shellsyntax"
	"github.com/akash-sh/akash/internal/config"
	"github.com/akash-sh/akash/internal/core/services/aliasmanagement"
	"github.com/akash-sh/akash/internal/core/services/shelldetection"
	"github.com/akash-sh/akash/internal/handlers/cli"
	"github.com/akash-sh/akash/internal/logger"
	"github.com/akash-sh/akash/internal/repositories/aliasstore"
	"github.com/akash-sh/akash/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	configPath, err := config.DefaultPath()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
	created, ensureErr := config.EnsureDefault(configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	if ensureErr != nil {
		log.Warnw("could not create default config", "path", configPath, "error", ensureErr)
	} else if created {
		log.Infow("created default config", "path", configPath)
	}

	storePath := cfg.AliasesPath
	if storePath == "" {
		storePath, err = aliasstore.DefaultPath()
		if err != nil {
			cli.PrintError(os.Stderr, err)
			os.Exit(1)
		}
	}

	store := aliasstore.NewYAMLStore(storePath, log)
	shellConf := shellconfig.NewShellConfigAccessor(log)
	detector := shelldetection.NewService(process.NewInspector(), osenv.New(), runtime.GOOS, log)

	predefinedProvider, err := predefinedaliases.NewYAMLProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize predefined alias provider: %v\n", err)
		predefinedProvider = nil
	}

	managementSvc := aliasmanagement.NewService(store, shellConf, shellsyntax.NewParser(), log)

	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Management:      managementSvc,
		Detector:        detector,
		Predefined:      predefinedProvider,
		Commands:        oscommand.NewPathLocator(),
		ConfiguredShell: cfg.Shell,
		StorePath:       storePath,
		Logger:          log,
	})

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		_ = log.Sync()
		os.Exit(1)
	}
}
