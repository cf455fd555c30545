package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/application/builder"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
)

type previewOptions struct {
	catalogPath string
	plain       bool
	width       int
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <recipe>",
		Short: "Build a form from a recipe and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.preview")
			logger.Info(ctx, "previewing recipe", "recipe_path", args[0])
			err := runPreview(ctx, logger, cmd, app, args[0], opts)
			if err != nil {
				logger.Error(ctx, "preview command failed", "recipe_path", args[0], "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file overriding the recipe's catalog")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print a plain description with every effective style")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Column width used to align text")

	return cmd
}

func runPreview(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, path string, opts *previewOptions) error {
	store, closeSession, err := buildFromRecipe(ctx, logger, app, path, opts.catalogPath)
	if err != nil {
		return err
	}
	defer closeSession()

	out := cmd.OutOrStdout()
	if opts.plain {
		fmt.Fprint(out, render.Describe(store.Layout()))
		return nil
	}

	glyphs := render.ASCIIGlyphs
	if supportsUnicode(out) {
		glyphs = render.UnicodeGlyphs
	}
	r := render.New(render.Options{Width: opts.width, Glyphs: glyphs})
	fmt.Fprintln(out, r.Render(store.Layout()))
	return nil
}

// buildFromRecipe loads a recipe and replays it into a new session. The
// returned func closes the session.
func buildFromRecipe(ctx context.Context, logger ports.Logger, app *AppContext, path, catalogOverride string) (*builder.Store, func(), error) {
	r, catalog, err := app.loadRecipe(ctx, path, catalogOverride)
	if err != nil {
		return nil, nil, newCommandError("load recipe", fmt.Sprintf("reading %q", path), err, suggestionFor(err))
	}

	sessions := app.Sessions(logger)
	store, _, err := sessions.OpenFromRecipe(ctx, catalog, r)
	if err != nil {
		return nil, nil, newCommandError("build form", fmt.Sprintf("replaying recipe %q", r.Name), err, suggestionFor(err))
	}
	return store, func() { _ = sessions.Close(ctx, store.SessionID()) }, nil
}
