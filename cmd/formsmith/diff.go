package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
	"github.com/alexisbeaulieu97/formsmith/pkg/diff"
)

type diffOptions struct {
	catalogPath string
	stat        bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <recipe-a> <recipe-b>",
		Short: "Compare the forms two recipes build, element by element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.diff")
			err := runDiff(ctx, logger, cmd, app, args[0], args[1], opts)
			if err != nil {
				logger.Error(ctx, "diff command failed", "before", args[0], "after", args[1], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file used for both recipes")
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

func runDiff(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, before, after string, opts *diffOptions) error {
	describe := func(path string) (string, error) {
		store, closeSession, err := buildFromRecipe(ctx, logger, app, path, opts.catalogPath)
		if err != nil {
			return "", err
		}
		defer closeSession()
		return render.Describe(store.Layout()), nil
	}

	left, err := describe(before)
	if err != nil {
		return err
	}
	right, err := describe(after)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unified, stats := diff.Unified(left, right, before, after)
	if unified == "" {
		fmt.Fprintln(out, "No differences")
		return nil
	}
	if !opts.stat {
		fmt.Fprint(out, unified)
	}
	fmt.Fprintf(out, "%d additions(+), %d deletions(-)\n", stats.Added, stats.Removed)
	return nil
}
