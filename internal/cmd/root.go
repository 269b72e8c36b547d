package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/srcdump/internal/config"
	"github.com/harrison/srcdump/internal/dump"
	"github.com/harrison/srcdump/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for srcdump
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srcdump [root]",
		Short: "Print every .swift file under a directory",
		Long: `srcdump walks a directory tree and prints every file whose name ends
with .swift to standard output, one block per file:

  1. filename: <path relative to root>

  <file content>

  ----------------------------------------

The root defaults to the current directory. It can also be set with the
SRCDUMP_ROOT environment variable or the "root" key of .srcdump.yaml.
Diagnostics go to standard error.

Exit code: 0 when every matched file was printed, 1 otherwise`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		// main prints the error; silence cobra's copy and the usage text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: "+config.DefaultConfigFile+")")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().Bool("continue-on-error", false, "Print a diagnostic for unreadable files and keep going")
	cmd.Flags().Bool("lock-reads", false, "Read each file under a shared advisory lock")

	return cmd
}

// loadConfig resolves configuration with precedence flag > env > file > default.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	var root, logLevel *string
	var continueOnError, lockReads *bool

	if len(args) == 1 {
		root = &args[0]
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("continue-on-error") {
		v, _ := cmd.Flags().GetBool("continue-on-error")
		continueOnError = &v
	}
	if cmd.Flags().Changed("lock-reads") {
		v, _ := cmd.Flags().GetBool("lock-reads")
		lockReads = &v
	}
	cfg.MergeWithFlags(root, logLevel, continueOnError, lockReads)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runDump dumps the configured root to out and logs diagnostics to errOut
func runDump(cmd *cobra.Command, args []string, out io.Writer, errOut io.Writer) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)

	policy := dump.PolicyHalt
	if cfg.ContinueOnError {
		policy = dump.PolicyContinue
	}

	dumper := dump.New(cfg.Root, out,
		dump.WithLogger(log),
		dump.WithPolicy(policy),
		dump.WithLockedReads(cfg.LockReads),
	)

	_, err = dumper.Run()
	return err
}
