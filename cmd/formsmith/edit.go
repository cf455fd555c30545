package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/application/builder"
	"github.com/alexisbeaulieu97/formsmith/internal/application/session"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
	"github.com/alexisbeaulieu97/formsmith/internal/tui/editor"
)

var errNotATerminal = errors.New("the editor needs an interactive terminal")

type editOptions struct {
	catalogPath string
}

func newEditCmd(app *AppContext) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit [recipe]",
		Short: "Open the interactive form editor",
		Long: `Open the interactive form editor. With a recipe, the editor starts from
the form the recipe builds; otherwise it starts from an empty form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.edit")
			recipePath := ""
			if len(args) == 1 {
				recipePath = args[0]
			}
			err := runEdit(ctx, logger, cmd, app, recipePath, opts)
			if err != nil {
				logger.Error(ctx, "edit command failed", "recipe_path", recipePath, "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (overrides the recipe's catalog)")

	return cmd
}

func runEdit(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, recipePath string, opts *editOptions) error {
	if !app.IsTerminal(cmd) {
		return newCommandError("edit", "starting the editor", errNotATerminal, "Run formsmith edit from a terminal, or use 'formsmith preview' for non-interactive output.")
	}

	// The editor owns the terminal while it runs; logs are held and written
	// once it exits.
	buffer := logging.NewBuffer(0)
	defer buffer.Flush(logger)
	sessions := session.NewManager(app.IDs, app.Events, buffer.Logger())

	store, title, err := openEditSession(ctx, app, sessions, recipePath, opts)
	if err != nil {
		return err
	}
	defer func() { _ = sessions.Close(ctx, store.SessionID()) }()

	model, err := editor.NewModel(store, editor.Options{
		Title:    title,
		Context:  ctx,
		Events:   app.Events,
		Renderer: render.New(render.Options{Glyphs: render.UnicodeGlyphs}),
	})
	if err != nil {
		return newCommandError("edit", "creating the editor", err, "Re-run with --verbose for details.")
	}
	defer model.Close()

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return newCommandError("edit", "running the editor", err, "Re-run with --verbose for details.")
	}

	if m, ok := final.(editor.Model); ok {
		buffer.Logger().Info(ctx, "editor closed",
			"session_id", store.SessionID(),
			"questions", len(store.Questions()),
			"sections", len(store.Sections()),
			"quit", m.Quitting(),
		)
	}
	return nil
}

func openEditSession(ctx context.Context, app *AppContext, sessions *session.Manager, recipePath string, opts *editOptions) (*builder.Store, string, error) {
	if recipePath == "" {
		catalog, err := app.loadCatalog(ctx, opts.catalogPath)
		if err != nil {
			return nil, "", newCommandError("edit", fmt.Sprintf("loading catalog %q", opts.catalogPath), err, suggestionFor(err))
		}
		store, err := sessions.Open(ctx, catalog)
		if err != nil {
			return nil, "", newCommandError("edit", "opening a session", err, "Re-run with --verbose for details.")
		}
		return store, "", nil
	}

	r, catalog, err := app.loadRecipe(ctx, recipePath, opts.catalogPath)
	if err != nil {
		return nil, "", newCommandError("edit", fmt.Sprintf("reading %q", recipePath), err, suggestionFor(err))
	}
	store, _, err := sessions.OpenFromRecipe(ctx, catalog, r)
	if err != nil {
		return nil, "", newCommandError("edit", fmt.Sprintf("replaying recipe %q", r.Name), err, suggestionFor(err))
	}
	return store, r.Name, nil
}
