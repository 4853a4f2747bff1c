package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "update <id> <description>",
		Aliases:               []string{"modify", "u"},
		Short:                 "Updates a task",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		DisableFlagParsing:    true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.help {
				return cmd.Help()
			}
			args = a.args
			if len(args) < 2 {
				a.usage(cmd)
				return nil
			}
			id, ok := parseID(args[0])
			if !ok {
				a.usage(cmd)
				return nil
			}
			description := args[1]
			if a.store.UpdateDescription(id, description) {
				fmt.Fprintf(a.stdout, "Updated task %d with description %s\n", id, description)
			} else {
				fmt.Fprintf(a.stderr, "Failed to update task %d with description %s\n", id, description)
			}
			return nil
		},
	}
}
