package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "add <description>",
		Aliases:               []string{"insert", "a"},
		Short:                 "Adds a task to the list",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		DisableFlagParsing:    true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.help {
				return cmd.Help()
			}
			args = a.args
			if len(args) < 1 {
				a.usage(cmd)
				return nil
			}
			id := a.store.Add(args[0])
			fmt.Fprintf(a.stdout, "Task added: %d\n", id)
			return nil
		},
	}
}
