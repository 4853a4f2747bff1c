package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/nibzard/task-tracker/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:                   "config [--example]",
		Short:                 "Prints the effective configuration",
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		Annotations:           map[string]string{annotationConfigOnly: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.usage(cmd)
				return nil
			}
			if example {
				fmt.Fprint(a.stdout, config.ExampleConfig())
				return nil
			}

			if len(a.cfg.Files) == 0 {
				fmt.Fprintln(a.stdout, "# sources: defaults")
			}
			for _, path := range a.cfg.Files {
				fmt.Fprintf(a.stdout, "# source: %s\n", path)
			}
			if err := toml.NewEncoder(a.stdout).Encode(a.cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Print an example configuration file")
	return cmd
}
