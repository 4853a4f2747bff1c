package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/task-tracker/internal/ui"
)

func (a *app) newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "board",
		Short:                 "Opens the interactive task board",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.usage(cmd)
				return nil
			}
			if err := ui.RunBoard(cmd.Context(), a.store, ui.WithPath(a.file.Path())); err != nil {
				return fmt.Errorf("board: %w", err)
			}
			return nil
		},
	}
}
