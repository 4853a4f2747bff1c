package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nibzard/task-tracker/internal/task"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "list [todo/in-progress/done]",
		Aliases:               []string{"l"},
		Short:                 "Lists tasks",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(a.stdout, "--- Listing all tasks ---")
				printTasks(a.stdout, a.store.ListAll(), true)
				return nil
			}

			status, err := task.ParseStatus(args[0])
			if err != nil {
				a.logger.Debug("invalid status filter", "token", args[0], "err", err)
				a.usage(cmd)
				return nil
			}
			fmt.Fprintf(a.stdout, "--- Listing all tasks by status: %s ---\n", strings.ToUpper(string(status)))
			printTasks(a.stdout, a.store.ListByStatus(status), false)
			return nil
		},
	}
}

// printTasks prints one line per task, with the status label when
// withStatus is set.
func printTasks(w io.Writer, tasks []task.Task, withStatus bool) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	for _, t := range tasks {
		if withStatus {
			fmt.Fprintf(w, "- %s [%d] (%s)\n", t.Description, t.ID, t.Status.Label())
		} else {
			fmt.Fprintf(w, "- %s [%d]\n", t.Description, t.ID)
		}
	}
}
