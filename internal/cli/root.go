// Package cli wires the launcher command line to the options resolver and
// the interpreter bootstrap. It owns process-level concerns: usage and
// version output, logging setup, and exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/quill/internal/interp"
	"github.com/ppiankov/quill/internal/options"
)

// Version, Commit, and BuildDate are set via LDFLAGS at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// execPlan hands the launch plan to the interpreter core. The core
// replaces this at link time; tests stub it.
var execPlan = func(cfg *options.Config, plan *interp.Plan) error {
	return nil
}

// ExitError carries a specific process exit code out to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCmd builds the launcher command. Flag parsing is disabled on the
// cobra side: the runtime's own option syntax (grouped counting flags,
// stop at first positional) is handled by the options package, which needs
// the raw argv.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "quill [option ...] [file | -c code | -m module | -] [arg ...]",
		Short:              "Quill runtime launcher",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launch(cmd.OutOrStdout(), args)
		},
	}
	return root
}

// launch resolves argv plus the process environment into a runtime
// configuration and hands the derived plan to the interpreter core.
func launch(stdout io.Writer, args []string) error {
	cfg, err := options.Resolve(args, options.Snapshot(os.Environ()), installDirs())
	switch {
	case errors.Is(err, options.ErrHelp):
		printUsage(stdout)
		return nil
	case errors.Is(err, options.ErrVersion):
		fmt.Fprintln(stdout, versionLine())
		return nil
	case err != nil:
		return &ExitError{Code: 2, Message: err.Error()}
	}

	configureLogging(cfg)
	slog.Debug("resolved configuration\n" + cfg.Dump())

	plan, err := interp.Bootstrap(cfg)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return execPlan(cfg, plan)
}

// configureLogging maps the resolved verbose level onto slog: quiet
// launches only surface warnings, -v and up enable debug output.
func configureLogging(cfg *options.Config) {
	level := slog.LevelWarn
	if cfg.VerboseLevel >= 1 {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// installDirs returns the runtime-provided module directories appended
// after environment-derived search path entries. The standard library
// lives in lib/ next to the launcher binary.
func installDirs() []string {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(filepath.Dir(exe), "lib")}
}
