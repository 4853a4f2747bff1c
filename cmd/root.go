// Package cmd implements the CLI command structure for task-tracker.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nibzard/task-tracker/internal/config"
	"github.com/nibzard/task-tracker/internal/logging"
	"github.com/nibzard/task-tracker/internal/task"
	"github.com/nibzard/task-tracker/internal/taskfile"
)

// Version is set via ldflags at build time.
var Version = "dev"

const appName = "task-tracker"

// annotationConfigOnly marks commands that never touch the task document.
const annotationConfigOnly = "task-tracker/config-only"

// Run executes the task-tracker CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		logger: logging.Discard(),
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root := a.newRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	// Whatever the command did, a loaded collection is written back.
	if a.store != nil {
		if saveErr := a.save(); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}
	return err
}

// app holds the state of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *log.Logger
	file   *taskfile.File
	store  *task.Store

	// Set for commands whose arguments are free text.
	args []string
	help bool
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               appName + " <command> <arguments>",
		Short:             "Track tasks in a JSON file",
		Version:           Version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: a.loadTasks,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.logger.Debug("unknown command", "command", args[0])
			}
			writeHelp(a.stdout, cmd)
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetVersionTemplate(appName + " version {{.Version}}\n")
	root.SetFlagErrorFunc(a.flagError)

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if !cmd.HasParent() {
			writeHelp(a.stdout, cmd)
			return
		}
		defaultHelp(cmd, args)
	})
	root.SetHelpCommand(a.newHelpCmd())

	root.AddCommand(
		a.newAddCmd(),
		a.newUpdateCmd(),
		a.newDeleteCmd(),
		a.newMarkInProgressCmd(),
		a.newMarkDoneCmd(),
		a.newListCmd(),
		a.newBoardCmd(),
		a.newConfigCmd(),
	)
	return root
}

func (a *app) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "help [command]",
		Short:                 "Shows this help message",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) > 0 {
				if sub, _, err := root.Find(args); err == nil && sub != root {
					return sub.Help()
				}
			}
			writeHelp(a.stdout, root)
			return nil
		},
	}
}

// loadTasks resolves configuration and loads the task document. It runs
// before every command that works on tasks.
func (a *app) loadTasks(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	if cmd.DisableFlagParsing {
		var err error
		if fs, err = a.parseLiteralArgs(cmd, args); err != nil {
			return err
		}
		if a.help {
			return nil
		}
		args = a.args
	}
	if err := a.loadConfig(fs); err != nil {
		return err
	}

	a.file = taskfile.New(a.cfg.DataFile,
		taskfile.WithLogger(a.logger),
		taskfile.WithSchemaValidation(a.cfg.SchemaValidation),
	)
	tasks, err := a.file.Load()
	if err != nil {
		a.logger.Error("load failed", "path", a.file.Path(), "err", err)
		return fmt.Errorf("loading tasks: %w", err)
	}
	a.store = task.NewStore(tasks)

	a.logger.Debug("dispatch", "command", cmd.Name(), "args", len(args))
	return nil
}

func (a *app) loadConfig(fs *pflag.FlagSet) error {
	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.NewFromConfig(a.stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	for _, path := range cfg.Files {
		a.logger.Debug("applied config file", "path", path)
	}
	return nil
}

func (a *app) save() error {
	if err := a.file.Save(a.store.Tasks()); err != nil {
		a.logger.Error("save failed", "path", a.file.Path(), "err", err)
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// flagError reports a bad flag as a usage error. The task document is
// still loaded so it is written back on exit.
func (a *app) flagError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(a.stderr, err)
	a.usage(cmd)
	if _, ok := cmd.Annotations[annotationConfigOnly]; ok {
		return nil
	}
	return a.loadTasks(cmd, nil)
}

// usage prints the command's usage line to stderr.
func (a *app) usage(cmd *cobra.Command) {
	fmt.Fprintf(a.stderr, "Usage: %s\n", cmd.UseLine())
}

// parseID reads a task id argument.
func parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return id, true
}

// writeHelp prints the usage message.
func writeHelp(w io.Writer, root *cobra.Command) {
	fmt.Fprintf(w, "Usage: %s <command> <arguments>\n", appName)
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintf(w, "\t%s help -- Shows this help message\n", appName)
	fmt.Fprintf(w, "\t%s add <description> -- Adds a task to the list\n", appName)
	fmt.Fprintf(w, "\t%s update <id> <description> -- Updates a task\n", appName)
	fmt.Fprintf(w, "\t%s delete <id> -- Deletes a task\n", appName)
	fmt.Fprintf(w, "\t%s mark-in-progress <id> -- Marks in-progress a task\n", appName)
	fmt.Fprintf(w, "\t%s mark-done <id> -- Marks done a task\n", appName)
	fmt.Fprintf(w, "\t%s list [todo/in-progress/done] -- Lists tasks\n", appName)
	fmt.Fprintf(w, "\t%s board -- Opens the interactive task board\n", appName)
	fmt.Fprintf(w, "\t%s config [--example] -- Prints the effective configuration\n", appName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fmt.Fprint(w, root.PersistentFlags().FlagUsages())
}
