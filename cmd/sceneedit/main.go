package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iw2rmb/sceneedit"
	"github.com/iw2rmb/sceneedit/config"
	"github.com/iw2rmb/sceneedit/internal/state"
)

const appName = "sceneedit"

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	env.CfgPath = cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(env.CfgPath); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
		env.Cfg.Logging.FileLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", sceneedit.Version()), zap.String("runtime", runtime.Version()))

	if len(env.CfgPath) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging, errors must be reported directly to stderr from now on
	env.RestoreStdLog()
	if env.Log != nil {
		if er := env.Log.Sync(); er != nil && !isIgnorableSyncError(er) {
			err = multierr.Append(err, fmt.Errorf("unable to sync logs: %w", er))
		}
	}
	return
}

// Sync on a terminal stdout fails with EINVAL or ENOTTY on some systems.
func isIgnorableSyncError(err error) bool {
	return multierr.Every(err, syscall.EINVAL) || multierr.Every(err, syscall.ENOTTY)
}

// Ignore urfave/cli default error handling, subcommands return regular
// errors.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "edits scenes of a project with inline strong/emphasis markup",
		Version:         sceneedit.Version() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Writer:          out,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything, to console and to the log file"},
		},
		Commands: []*cli.Command{
			{
				Name:         "edit",
				Usage:        "Opens a scene of the project in the terminal editor",
				OnUsageError: usageErrorHandler,
				Action:       runEdit,
				ArgsUsage:    "PROJECT SCENE",
				CustomHelpTemplate: fmt.Sprintf(`%s
PROJECT:
    path to the project file (YAML)

SCENE:
    id of the scene to edit

Keys: ctrl+b strong, ctrl+t emphasis, ctrl+p plain text, ctrl+s apply changes,
ctrl+n split at cursor position, f5 word count, f6 live word count, f7 color
mode, ctrl+q exit, alt+q apply changes and exit.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "count",
				Usage:        "Counts words of markup files or of every scene of a project",
				OnUsageError: usageErrorHandler,
				Action:       runCount,
				ArgsUsage:    "FILE...",
				CustomHelpTemplate: fmt.Sprintf(`%s
FILE:
    project file (.yaml or .yml): words are counted per scene
    any other file: its whole content is counted as one scene
`, cli.CommandHelpTemplate),
			},
			{
				Name:    "dumpconfig",
				Aliases: []string{"config"},
				Usage:   "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp(os.Stdout).Run(ctx, os.Args)
}
