package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "delete <id>",
		Aliases:               []string{"remove", "d"},
		Short:                 "Deletes a task",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				a.usage(cmd)
				return nil
			}
			id, ok := parseID(args[0])
			if !ok {
				a.usage(cmd)
				return nil
			}
			if a.store.Delete(id) {
				fmt.Fprintf(a.stdout, "Task deleted: %d\n", id)
			} else {
				fmt.Fprintf(a.stderr, "Task could not be deleted: %d\n", id)
			}
			return nil
		},
	}
}
