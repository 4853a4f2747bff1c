package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nibzard/task-tracker/internal/config"
)

// literalArgs is the result of splitting the raw arguments of a command
// that takes free text.
type literalArgs struct {
	flags      []string
	positional []string
	help       bool
}

// splitLiteralArgs picks the global flags and -h/--help out of args. Every
// other token is positional, including ones that start with "-". Tokens
// after "--" are always positional.
func splitLiteralArgs(args []string) literalArgs {
	valued := map[string]bool{
		"--" + config.FlagFile:      true,
		"-f":                        true,
		"--" + config.FlagLogLevel:  true,
		"--" + config.FlagLogFormat: true,
	}

	var out literalArgs
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			out.positional = append(out.positional, args[i+1:]...)
			return out
		case arg == "-h" || arg == "--help":
			out.help = true
		case valued[arg] && i+1 < len(args):
			out.flags = append(out.flags, arg, args[i+1])
			i++
		case hasFlagValue(arg, valued):
			out.flags = append(out.flags, arg)
		default:
			out.positional = append(out.positional, arg)
		}
	}
	return out
}

// hasFlagValue reports whether arg is a global flag in --name=value form.
func hasFlagValue(arg string, valued map[string]bool) bool {
	name, _, ok := strings.Cut(arg, "=")
	return ok && valued[name]
}

// parseLiteralArgs handles commands with flag parsing disabled. The global
// flags are parsed into a fresh set for config.Load and the remaining
// arguments are kept on the app for RunE.
func (a *app) parseLiteralArgs(cmd *cobra.Command, args []string) (*pflag.FlagSet, error) {
	split := splitLiteralArgs(args)

	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs)
	if err := fs.Parse(split.flags); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	a.args = split.positional
	a.help = split.help
	return fs, nil
}
