package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "formsmith",
		Short:         "Formsmith builds styled survey forms from a question catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logFormat != "console" && flags.logFormat != "json" {
				return fmt.Errorf("invalid --log-format %q: use console or json", flags.logFormat)
			}
			return app.configure(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log output format (console or json)")

	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
