// Package cli implements the pubchem command tree.  The root command loads
// configuration, initialises logging, and builds the PUG REST client; the
// subcommands cover compound, substance and assay retrieval, structure
// search, property tables, downloads, depositor listings and safety data.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/pubchem-go/internal/config"
	"github.com/turtacn/pubchem-go/internal/logging"
	"github.com/turtacn/pubchem-go/pkg/errors"
	"github.com/turtacn/pubchem-go/pkg/pug"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath      string
	LogLevel        string
	OutputFormat    string
	Pretty          bool
	Verbose         bool
	BaseURL         string
	Timeout         time.Duration
	PollInterval    time.Duration
	PollMaxAttempts int
}

// CLIContext carries the initialised dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Client       *pug.Client
	OutputFormat string
	Pretty       bool
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pubchem",
		Short: "Query the PubChem PUG REST service",
		Long: "pubchem is a command line client for the PubChem PUG REST service.\n" +
			"It retrieves compound, substance and assay records, runs structure\n" +
			"and formula searches, fetches property tables and GHS safety data,\n" +
			"and downloads records in any service-supported format.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./pubchem.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "", "output format (json, text)")
	pf.BoolVar(&opts.Pretty, "pretty", false, "indent JSON output")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&opts.BaseURL, "base-url", "", "PUG REST base URL override")
	pf.DurationVar(&opts.Timeout, "timeout", 0, "per-request HTTP timeout")
	pf.DurationVar(&opts.PollInterval, "poll-interval", 0, "delay between listkey polls")
	pf.IntVar(&opts.PollMaxAttempts, "poll-max-attempts", 0, "bound listkey polls (0 = unlimited)")

	cmd.AddCommand(
		newCompoundCmd(),
		newSubstanceCmd(),
		newAssayCmd(),
		newSearchCmd(),
		newPropsCmd(),
		newDownloadCmd(),
		newSourcesCmd(),
		newSafetyCmd(),
	)
	return cmd
}

// persistentPreRun loads configuration, initialises the logger and client,
// and stores the CLIContext on the command's context.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, cfgPath, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	applyFlagOverrides(cfg, cmd, opts)

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	logging.SetDefault(logger)

	client, err := pug.NewClient(
		pug.WithBaseURL(cfg.API.BaseURL),
		pug.WithViewURL(cfg.API.ViewURL),
		pug.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		pug.WithLogger(pugLogAdapter{l: logger.Named("pug")}),
		pug.WithUserAgent(cfg.API.UserAgent),
		pug.WithPollInterval(cfg.API.PollInterval),
		pug.WithPollMaxAttempts(cfg.API.PollMaxAttempts),
	)
	if err != nil {
		return fmt.Errorf("client initialization failed: %w", err)
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Client:       client,
		OutputFormat: cfg.Output.Format,
		Pretty:       cfg.Output.Pretty || opts.Pretty,
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))

	// Hot-reload the log level while a long search or download runs.
	if cfgPath != "" {
		config.Watch(cfgPath, func(next *config.Config) {
			applyConfigReload(cliCtx, next)
		})
	}
	return nil
}

// applyConfigReload applies the settings that may change while a command is
// running.  Only the log level is hot-reloadable; everything else takes
// effect on the next invocation.
func applyConfigReload(cliCtx *CLIContext, next *config.Config) {
	if next.Log.Level == cliCtx.Config.Log.Level {
		return
	}
	cliCtx.Logger.SetLevel(next.Log.Level)
	cliCtx.Config.Log.Level = next.Log.Level
	cliCtx.Logger.Info("log level updated", logging.String("level", next.Log.Level))
}

// initConfig loads configuration with priority: --config flag, then the
// default search paths, then environment variables and defaults alone.  The
// returned path is empty when no config file was involved.
func initConfig(opts *RootOptions) (*config.Config, string, error) {
	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		return cfg, opts.ConfigPath, err
	}

	searchPaths := []string{"./pubchem.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".pubchem", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/pubchem/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			cfg, err := config.Load(p)
			return cfg, p, err
		}
	}
	cfg, err := config.LoadFromEnv()
	return cfg, "", err
}

// applyFlagOverrides lets explicitly set flags win over file and env
// settings.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command, opts *RootOptions) {
	flags := cmd.Flags()
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if opts.OutputFormat != "" {
		cfg.Output.Format = opts.OutputFormat
	}
	if opts.BaseURL != "" {
		cfg.API.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		cfg.API.Timeout = opts.Timeout
	}
	if opts.PollInterval > 0 {
		cfg.API.PollInterval = opts.PollInterval
	}
	if flags.Changed("poll-max-attempts") {
		cfg.API.PollMaxAttempts = opts.PollMaxAttempts
	}
}

// GetCLIContext extracts the CLIContext stored by persistentPreRun.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.Internal("command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.Internal("CLI context not initialised")
	}
	return cliCtx, nil
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// pugLogAdapter bridges the structured logger to the printf-style interface
// the SDK expects.
type pugLogAdapter struct {
	l logging.Logger
}

func (a pugLogAdapter) Debugf(format string, args ...interface{}) {
	a.l.Debug(fmt.Sprintf(format, args...))
}

func (a pugLogAdapter) Infof(format string, args ...interface{}) {
	a.l.Info(fmt.Sprintf(format, args...))
}

func (a pugLogAdapter) Errorf(format string, args ...interface{}) {
	a.l.Error(fmt.Sprintf(format, args...))
}

// PrintResult renders data on stdout in the configured output format.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return printJSON(cmd, data, false)
	}
	switch strings.ToLower(cliCtx.OutputFormat) {
	case "text":
		return printText(cmd, data)
	default:
		return printJSON(cmd, data, cliCtx.Pretty)
	}
}

func printJSON(cmd *cobra.Command, data interface{}, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

func printText(cmd *cobra.Command, data interface{}) error {
	switch v := data.(type) {
	case string:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	case []string:
		for _, line := range v {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	case []int:
		for _, n := range v {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
	case fmt.Stringer:
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", v)
	}
	return nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}
