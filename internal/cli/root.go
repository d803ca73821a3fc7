// Package cli implements the desksort command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/desksort/internal/logging"
	"github.com/mesh-intelligence/desksort/internal/paths"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// sysError marks an error as a system failure (exit code 2). Everything
// else a command returns is treated as a user error.
type sysError struct{ err error }

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

func systemErr(format string, args ...any) error {
	return sysError{fmt.Errorf(format, args...)}
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// app holds the state shared by every command of one invocation.
type app struct {
	configDir   string
	dataDirFlag string
	dataDir     string
	logLevel    string
	logFormat   string

	v   *viper.Viper
	cfg types.Config
	log *zap.Logger
}

// NewRootCmd creates the top-level "desksort" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "desksort",
		Short: "Classify desktop icons and arrange them into zones",
		Long: "desksort classifies every desktop icon (folders, games, documents, programs,\n" +
			"links) and lays them out in four screen zones, newest first.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			_ = a.log.Sync()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.dataDirFlag, "data-dir", "", "data directory (default: platform data dir)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newOrganizeCmd(a))
	root.AddCommand(newClassifyCmd(a))
	root.AddCommand(newLexiconCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code. An
// interrupt cancels the running pass between placements.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return exitCode(root.ExecuteContext(ctx))
}

// setup resolves directories, loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return systemErr("bind flags: %w", err)
	}
	a.v = v

	dataDir, err := paths.ResolveDataDir(a.dataDirFlag, v.GetString(keyDataDir))
	if err != nil {
		return systemErr("resolve data dir: %w", err)
	}
	a.dataDir = dataDir

	a.cfg = configFromViper(v)
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := loggingFromViper(v)
	if a.logLevel != "" {
		logCfg.Level = a.logLevel
	}
	if a.logFormat != "" {
		logCfg.Format = a.logFormat
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	a.log = log
	return nil
}
