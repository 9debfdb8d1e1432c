/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Muream/mayapy-launcher/pkg/compat"
	"github.com/Muream/mayapy-launcher/pkg/install"
	"github.com/Muream/mayapy-launcher/pkg/launcher"
	"github.com/Muream/mayapy-launcher/pkg/logging"
	"github.com/Muream/mayapy-launcher/pkg/probe"
)

const name = "mayapy"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	cfgFile  string
	logLevel string
)

// rootCmd is the launcher shim itself. Flag parsing is disabled so every
// argument, including flag-looking ones, is forwarded verbatim to the
// launched mayapy; the only argument the shim consumes is a leading integer
// release override (conventionally spelled -2023).
var rootCmd = &cobra.Command{
	Use:   name + " [-RELEASE] [mayapy args...]",
	Short: "mayapy - a launcher for Maya's bundled Python interpreter",
	Long: fmt.Sprintf(`mayapy - a launcher for Maya's bundled Python interpreter

Version: %s
Commit:  %s
Built:   %s

Resolves which installed Maya release to use, then launches its mayapy with
all remaining arguments forwarded verbatim. The release is detected from, in
order: an explicit leading -RELEASE argument, the activated virtualenv, the
closest upstream .python-version pin, the closest upstream .maya-version
pin, and finally the latest installed release.

One caveat to verbatim forwarding: a first argument that names a subcommand
(resolve, list, help, completion) invokes that subcommand instead of being
forwarded. To launch a script with such a name, pass it as a path
(./resolve).`, version, commit, date),
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLaunch,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	probe.LogMetrics()
	if err != nil {
		code := launcher.ExitCode(err)
		if code == 1 {
			// A child that exited non-zero already wrote its own stderr;
			// only launcher-side failures deserve a message here.
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "inspection",
			Title: "Inspection Commands:",
		},
	)

	// Global flags. These only take effect on subcommands: the root launch
	// path forwards arguments without parsing them.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mayapy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)

		// Fail fast if user-specified config doesn't exist
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file %s: %v\n", cfgFile, err)
			os.Exit(1)
		}
		return
	}

	// Auto-discover config
	home, err := os.UserHomeDir()
	if err != nil {
		// Gracefully degrade if home directory not available
		return
	}

	// Search config in home directory and current directory
	viper.AddConfigPath(home)
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(".mayapy")

	// Automatic environment variable binding
	viper.AutomaticEnv()
	viper.SetEnvPrefix("MAYAPY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// If a config file is found, read it in (optional)
	_ = viper.ReadInConfig()
}

// initLogger configures slog after Cobra parses flags/config. The legacy
// MAYAPY_LAUNCHER_VERBOSE toggle overrides everything else inside the
// logging package.
func initLogger() {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
}

// newStore builds the installation store, honoring install_roots from the
// config file over the per-platform conventions.
func newStore() *install.FSStore {
	if roots := viper.GetStringSlice("install_roots"); len(roots) > 0 {
		return install.NewFSStore(install.WithRoots(roots...))
	}
	return install.NewFSStore()
}

// configuredTable returns the compatibility table from the config file's
// "versions" list, or the built-in default. Config order is preserved so
// tie-breaking stays deterministic.
func configuredTable() compat.Table {
	var entries []compat.Entry
	if err := viper.UnmarshalKey("versions", &entries); err != nil || len(entries) == 0 {
		return compat.DefaultTable
	}
	return entries
}

// newRunner assembles the probe chains over the given store, applying
// config-file overrides for the pin file names.
func newRunner(store install.Store) *probe.Runner {
	opts := []probe.RunnerOption{
		probe.WithResolver(compat.NewResolver(store, compat.WithTable(configuredTable()))),
	}

	pythonPin := viper.GetString("pins.python")
	mayaPin := viper.GetString("pins.maya")

	if pythonPin != "" {
		opts = append(opts, probe.WithVersionProbes(
			probe.ShebangProbe{},
			probe.VirtualenvProbe{},
			probe.PythonPinProbe{Filename: pythonPin},
		))
	}
	if mayaPin != "" {
		opts = append(opts, probe.WithReleaseProbes(
			probe.MayaPinProbe{Filename: mayaPin},
			probe.LatestInstalledProbe{Store: store},
		))
	}

	return probe.NewRunner(store, opts...)
}
