package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/task-tracker/internal/task"
)

func (a *app) newMarkInProgressCmd() *cobra.Command {
	return a.newMarkCmd("mark-in-progress", "in-progress", "Marks in-progress a task", task.StatusInProgress)
}

func (a *app) newMarkDoneCmd() *cobra.Command {
	return a.newMarkCmd("mark-done", "done", "Marks done a task", task.StatusDone)
}

// newMarkCmd builds a command that moves one task to status.
func (a *app) newMarkCmd(name, alias, short string, status task.Status) *cobra.Command {
	return &cobra.Command{
		Use:                   name + " <id>",
		Aliases:               []string{alias},
		Short:                 short,
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
			if a.store.UpdateStatus(id, status) {
				fmt.Fprintf(a.stdout, "Marked task %d %s\n", id, status.Label())
			} else {
				fmt.Fprintf(a.stderr, "Marked task %d %s failed\n", id, status.Label())
			}
			return nil
		},
	}
}
