package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

type validateOptions struct {
	catalogPath string
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <recipe>",
		Short: "Check that a recipe loads and builds without errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.validate")
			err := runValidate(ctx, logger, cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "validate command failed", "recipe_path", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file overriding the recipe's catalog")

	return cmd
}

// runValidate checks the document itself and then replays it, which catches
// template and option ids the catalog does not have.
func runValidate(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, path string, opts *validateOptions) error {
	if err := app.Recipes.Validate(ctx, path); err != nil {
		return newCommandError("validate", fmt.Sprintf("checking %q", path), err, suggestionFor(err))
	}

	store, closeSession, err := buildFromRecipe(ctx, logger, app, path, opts.catalogPath)
	if err != nil {
		return err
	}
	defer closeSession()

	mark := "OK"
	if supportsUnicode(cmd.OutOrStdout()) {
		mark = "✓"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid (%d questions, %d sections)\n", mark, path, len(store.Questions()), len(store.Sections()))
	return nil
}
