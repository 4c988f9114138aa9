package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/config"
)

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var (
	configPath string
	profileDir string
	scriptsDir string
	cacheTTL   time.Duration
	verbose    bool
	noColor    bool
)

// current is the application wired up for the running command.
var current *app

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to an HCL config file")
	flags.StringVarP(&profileDir, "profile", "p", "", "Profile directory (default: the main profile under the user config dir)")
	flags.StringVar(&scriptsDir, "scripts-dir", "", "Profile scripts directory; the profile is its parent")
	flags.DurationVar(&cacheTTL, "cache-ttl", config.DefaultCacheTTL, "How long scan results stay fresh")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   "disabled-effects [category]",
	Short: "Find effects that are turned off in a Firebot profile",
	Long: `Scans a Firebot profile for effects whose active flag is off and prints
where each one lives, e.g. "Event > New Follower > #2. Play Sound".

The optional category limits results to one source ("events", "commands",
"timers", ...) or to any breadcrumb key ("group").`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			_ = current.logger.Sync()
		}
	},
	RunE: runList,
}

// setup resolves configuration and builds the application for every
// subcommand.
func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	current = a
	return nil
}

// loadConfig applies flags over the file and environment configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	return config.Load(configPath, func(cfg *config.Config) {
		if flags.Changed("profile") {
			cfg.ProfileDir = profileDir
		}
		if flags.Changed("scripts-dir") {
			cfg.ScriptsDir = scriptsDir
			if !flags.Changed("profile") {
				cfg.ProfileDir = ""
			}
		}
		if flags.Changed("cache-ttl") {
			cfg.CacheTTL = cacheTTL
		}
		if flags.Changed("verbose") {
			cfg.Verbose = verbose
		}
	})
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
