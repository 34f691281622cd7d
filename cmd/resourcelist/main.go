package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/quantmind-br/resourcelist-go/internal/app"
	"github.com/quantmind-br/resourcelist-go/internal/config"
	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
	"github.com/quantmind-br/resourcelist-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger

	// Dependencies for testing
	stderrIsTerminal = func() bool { return isatty.IsTerminal(os.Stderr.Fd()) }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage prefixes list definition problems differently from run failures
func errorMessage(err error) string {
	if domain.IsConfigurationError(err) {
		return fmt.Sprintf("Invalid list configuration: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

var rootCmd = &cobra.Command{
	Use:   "resourcelist [list...]",
	Short: "Generate resource list manifests",
	Long: `resourcelist scans a project's source tree for files matching each
configured list's include/exclude patterns and writes the sorted relative
paths into a .resource manifest. Manifests are rewritten only when their
content changes.

Without a subcommand it behaves like "resourcelist generate".`,
	Args:          cobra.ArbitraryArgs,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

var generateCmd = &cobra.Command{
	Use:   "generate [list...]",
	Short: "Generate manifests for all or the named lists",
	Args:  cobra.ArbitraryArgs,
	RunE:  runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default is ~/.resourcelist/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Project flags
	flags.StringP("project-file", "f", config.DefaultProjectFile, "Project file, relative to the project directory")
	flags.StringP("project-dir", "C", ".", "Project directory")
	flags.String("build-dir", config.DefaultBuildDir, "Build directory, relative to the project directory")
	flags.Bool("cartridge", false, "Register the pipelets and orm lists")

	// Generation flags
	flags.Bool("dry-run", false, "Report what would change without writing")
	flags.IntP("workers", "j", config.DefaultWorkers, "Number of lists generated concurrently")
	flags.Bool("no-state", false, "Do not record the run in the state file")

	// Bind flags to viper
	_ = viper.BindPFlag("project.file", flags.Lookup("project-file"))
	_ = viper.BindPFlag("build.directory", flags.Lookup("build-dir"))
	_ = viper.BindPFlag("generation.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("generation.dry_run", flags.Lookup("dry-run"))

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the tool configuration and applies flags viper cannot bind
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if noState, _ := cmd.Flags().GetBool("no-state"); noState {
		cfg.State.Enabled = false
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	proj, err := loadProject(cmd, cfg)
	if err != nil {
		return err
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	var progress io.Writer
	if !verbose && stderrIsTerminal() {
		progress = cmd.ErrOrStderr()
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose: verbose,
			DryRun:  cfg.Generation.DryRun,
		},
		Config:   cfg,
		Registry: proj.registry,
		Resolver: proj.resolver(),
		Project:  proj.name(),
		Logger:   log,
		Progress: progress,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	report, err := orchestrator.Run(ctx, args...)
	if report != nil {
		printReport(cmd.OutOrStdout(), report, cfg.Generation.DryRun)
	}
	return err
}
