package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"lcms/cmd/lcms/cmd/book"
	"lcms/cmd/lcms/cmd/category"
	configcmd "lcms/cmd/lcms/cmd/config"
	clierrors "lcms/internal/cli/errors"
	"lcms/internal/cli/middleware"
	"lcms/internal/cli/output"
	"lcms/internal/config"
	"lcms/internal/library"
	"lcms/internal/logger"
	"lcms/internal/storage/csvfile"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// cfgFile is the path to the config file (set via --config flag)
	cfgFile string

	// cfg holds the loaded configuration
	cfg *config.Config

	// log is the logger instance
	log *logger.Logger

	// auditLog is the audit logger instance
	auditLog *logger.AuditLogger

	// cmdStartTime tracks when command execution started
	cmdStartTime time.Time

	// cmdCtx is the command context with logger and command context
	cmdCtx context.Context

	// Global output flags
	outputFormat string
	verboseMode  bool
	libraryFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcms",
	Short: "lcms is a library catalog manager",
	Long: `lcms manages a library catalog organized as a category tree.

Books live in categories; categories nest to any depth and are addressed
by slash-separated paths like Fiction/Sci-Fi. The catalog is kept in a
single CSV file, so it can be inspected, diffed, and edited by hand.`,
	// Allow flags before or after subcommand
	TraverseChildren: true,
	// Errors are rendered by Execute with codes and suggestions
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init must run even when the current config file is
		// broken, so it skips the bootstrap
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		if err := loadConfig(cmd); err != nil {
			return err
		}

		// Initialize logger
		var err error
		log, err = logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// Initialize audit logger if configured
		if cfg.Log.AuditPath != "" {
			auditLog, err = logger.NewAuditLogger(cfg.Log.AuditPath, cfg.Log.AuditMaxAgeDays)
			if err != nil {
				log.Warn("failed to initialize audit logger", "error", err)
			}
		} else {
			auditLog = logger.NopAuditLogger()
		}

		// Create command context
		cc := logger.NewCommandContext(cmd, args)
		cmdCtx = logger.WithCommandContext(context.Background(), cc)
		cmdCtx = logger.WithLogger(cmdCtx, log)

		// Track start time for duration logging
		cmdStartTime = time.Now()

		// Log command start
		log.Debug("command started",
			"command", cc.Command,
			"args", cc.Args,
			"request_id", cc.RequestID,
			"user", cc.User,
			"hostname", cc.Hostname,
			"working_dir", cc.WorkingDir,
		)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			return nil
		}

		duration := time.Since(cmdStartTime)
		cc := logger.CommandContextFrom(cmdCtx)

		log.Debug("command completed",
			"command", cc.Command,
			"duration_ms", duration.Milliseconds(),
			"request_id", cc.RequestID,
		)

		// Log to audit if configured
		if auditLog != nil {
			auditLog.LogCommand(cmdCtx, cc.Command, logger.AuditOutcomeSuccess, map[string]any{
				"duration_ms": duration.Milliseconds(),
				"args":        cc.Args,
			})
		}

		// Cleanup
		if auditLog != nil {
			auditLog.Close()
		}
		log.Close()

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	middleware.ApplyRecursive(rootCmd, middleware.Timing(IsVerbose))

	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

// exitWithError renders a failed command's error and cleans up. The
// persistent post-run hooks only fire on success, so the failure path
// owns its audit record and logger shutdown.
func exitWithError(err error) {
	rich := clierrors.Classify(err, "", "")

	if term.IsTerminal(int(os.Stderr.Fd())) && colorEnabled() {
		fmt.Fprintln(os.Stderr, clierrors.Display(rich, nil))
	} else {
		fmt.Fprintln(os.Stderr, clierrors.DisplaySimple(rich))
	}

	if log != nil {
		cc := logger.CommandContextFrom(cmdCtx)
		if cc != nil {
			log.Error("command failed",
				"command", cc.Command,
				logger.WithError(err),
				"request_id", cc.RequestID,
			)
			if auditLog != nil {
				auditLog.LogCommand(cmdCtx, cc.Command, logger.AuditOutcomeFailure, map[string]any{
					"error": err.Error(),
					"args":  cc.Args,
				})
			}
		}
		if auditLog != nil {
			auditLog.Close()
		}
		log.Close()
	}

	os.Exit(1)
}

func init() {
	cobra.OnInitialize(onInitialize)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lcms/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (json, yaml, table, quiet)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "verbose output (includes timing and full log output)")
	rootCmd.PersistentFlags().StringVarP(&libraryFile, "library", "l", "", "library file (default from config)")

	// Bind flags to viper
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("library.path", rootCmd.PersistentFlags().Lookup("library"))

	// Grouped subcommands live in their own packages and receive the
	// root's state through an Env of accessors.
	rootCmd.AddCommand(book.NewCommand(book.Env{
		Context:     Context,
		Log:         Log,
		Audit:       AuditLog,
		Writer:      newWriter,
		Open:        openLibrary,
		Save:        saveLibrary,
		Interactive: interactive,
	}))
	rootCmd.AddCommand(category.NewCommand(category.Env{
		Context:     Context,
		Log:         Log,
		Audit:       AuditLog,
		Writer:      newWriter,
		Open:        openLibrary,
		Save:        saveLibrary,
		Interactive: interactive,
	}))
	rootCmd.AddCommand(configcmd.NewCommand(configcmd.Env{
		Config:     Config,
		ConfigFile: ConfigFile,
		Writer:     newWriter,
	}))
}

// onInitialize is called before any command runs
func onInitialize() {
	// Auto-generate config on first run
	if cfgFile == "" {
		path, created, err := config.GenerateConfigIfNotExists("yaml")
		if err == nil && created {
			fmt.Fprintf(os.Stderr, "Created default config at: %s\n", path)
		}
	}
}

// loadConfig loads the configuration
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return clierrors.ConfigInvalid(cfgFile, err)
	}

	// Apply flag overrides
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = viper.GetString("output.format")
	}
	if cmd.Flags().Changed("library") {
		cfg.Library.Path = libraryFile
	}
	if verboseMode {
		cfg.Log.Level = "debug"
	}

	return nil
}

// colorEnabled reports whether styled terminal output is wanted.
func colorEnabled() bool {
	if cfg != nil {
		return cfg.Output.Color
	}
	return true
}

// openLibrary loads the catalog from the configured library file. A
// missing file yields an empty catalog.
func openLibrary() (*library.Library, error) {
	path, err := cfg.LibraryPath()
	if err != nil {
		return nil, err
	}

	lib, report, err := csvfile.Load(path, cfg.Library.RootName)
	if err != nil {
		return nil, clierrors.IO("load library", path, err)
	}
	if skipped := report.Skipped(); skipped > 0 {
		log.Warn("library file contains rows that were skipped",
			"path", path,
			"skipped", skipped,
			"duplicates", report.Duplicates,
			"bad_rows", report.BadRows,
		)
	}

	log.Debug("library loaded", "path", path, "books", lib.TotalBooks())
	return lib, nil
}

// saveLibrary persists the catalog back to the library file. When
// library.auto_save is off the catalog is left untouched on disk and
// the caller's change is discarded with a warning.
func saveLibrary(lib *library.Library) error {
	path, err := cfg.LibraryPath()
	if err != nil {
		return err
	}

	if !cfg.Library.AutoSave {
		newWriter().Warn(fmt.Sprintf("library.auto_save is off; change not written to %s", path))
		return nil
	}

	if err := csvfile.Save(path, lib); err != nil {
		return clierrors.IO("save library", path, err)
	}

	log.Debug("library saved", "path", path, "books", lib.TotalBooks())
	return nil
}

// newWriter builds an output writer honoring the --output flag.
func newWriter() *output.Writer {
	return output.NewWriter(output.ParseFormat(OutputFormat()))
}

// interactive reports whether both ends of the terminal are a TTY, the
// gate for huh forms and the browser.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Config returns the current configuration (for use by subcommands)
func Config() *config.Config {
	return cfg
}

// ConfigFile returns the config file path (for use by subcommands)
func ConfigFile() string {
	return cfgFile
}

// Log returns the logger instance (for use by subcommands)
func Log() *logger.Logger {
	return log
}

// AuditLog returns the audit logger instance (for use by subcommands)
func AuditLog() *logger.AuditLogger {
	return auditLog
}

// Context returns the command context (for use by subcommands)
func Context() context.Context {
	return cmdCtx
}

// OutputFormat returns the current output format (json, yaml, table, quiet)
func OutputFormat() string {
	if cfg != nil {
		return cfg.Output.Format
	}
	return outputFormat
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verboseMode
}
