package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

type catalogOptions struct {
	path       string
	jsonOutput bool
}

func newCatalogCmd(app *AppContext) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the question templates available to a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.catalog")
			err := runCatalog(ctx, logger, cmd, app, opts)
			if err != nil {
				logger.Error(ctx, "catalog command failed", "catalog_path", opts.path, "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.path, "catalog", "c", "", "Catalog file (defaults to the built-in catalog)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output templates as JSON")

	return cmd
}

func runCatalog(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, opts *catalogOptions) error {
	catalog, err := app.loadCatalog(ctx, opts.path)
	if err != nil {
		return newCommandError("list catalog", fmt.Sprintf("loading %q", opts.path), err, suggestionFor(err))
	}
	logger.Debug(ctx, "catalog loaded", "templates", catalog.Len())

	if opts.jsonOutput {
		return renderCatalogJSON(cmd, catalog)
	}
	return renderCatalogTable(cmd, catalog)
}

func renderCatalogTable(cmd *cobra.Command, catalog form.Catalog) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-12s %s\n", "ID", "TYPE", "TEXT")
	for _, tpl := range catalog.Templates() {
		fmt.Fprintf(out, "%-8s %-12s %s\n", tpl.ID, tpl.Type, tpl.Text)
		if len(tpl.Options) > 0 {
			labels := make([]string, 0, len(tpl.Options))
			for _, opt := range tpl.Options {
				labels = append(labels, fmt.Sprintf("%s=%s", opt.ID, opt.Text))
			}
			fmt.Fprintf(out, "%-8s %-12s %s\n", "", "", strings.Join(labels, ", "))
		}
	}
	fmt.Fprintf(out, "\n%d templates\n", catalog.Len())
	return nil
}

type catalogOptionJSON struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type catalogTemplateJSON struct {
	ID      string              `json:"id"`
	Type    form.QuestionType   `json:"type"`
	Text    string              `json:"text"`
	Options []catalogOptionJSON `json:"options,omitempty"`
}

func renderCatalogJSON(cmd *cobra.Command, catalog form.Catalog) error {
	payload := make([]catalogTemplateJSON, 0, catalog.Len())
	for _, tpl := range catalog.Templates() {
		entry := catalogTemplateJSON{ID: tpl.ID, Type: tpl.Type, Text: tpl.Text}
		for _, opt := range tpl.Options {
			entry.Options = append(entry.Options, catalogOptionJSON{ID: opt.ID, Text: opt.Text})
		}
		payload = append(payload, entry)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
