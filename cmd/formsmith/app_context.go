package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/formsmith/internal/application/session"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/ids"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger  ports.Logger
	Events  ports.EventPublisher
	IDs     ports.IDGenerator
	Catalog ports.CatalogLoader
	Recipes ports.RecipeLoader
	// IsTerminal reports whether the command runs attached to a terminal.
	IsTerminal func(cmd *cobra.Command) bool
}

func newAppContext() *AppContext {
	return &AppContext{
		IDs:        ids.NewSequenceGenerator(),
		IsTerminal: attachedToTerminal,
	}
}

// configure fills the services that depend on the root flags. Services set
// beforehand, as tests do, are kept.
func (a *AppContext) configure(cmd *cobra.Command, flags *rootFlags) error {
	if a.Logger == nil {
		level := "warn"
		if flags.verbose {
			level = "debug"
		}
		logger, err := logging.New(logging.Options{
			Writer:        cmd.ErrOrStderr(),
			Level:         level,
			HumanReadable: flags.logFormat != "json",
			Component:     "cli",
		})
		if err != nil {
			return err
		}
		a.Logger = logger
	}
	if a.Events == nil {
		a.Events = events.NewLoggingPublisher(a.Logger.With("component", "events"))
	}
	if a.IDs == nil {
		a.IDs = ids.NewSequenceGenerator()
	}
	if a.Catalog == nil || a.Recipes == nil {
		loader := config.NewYAMLLoader(a.Logger)
		if a.Catalog == nil {
			a.Catalog = loader
		}
		if a.Recipes == nil {
			a.Recipes = loader
		}
	}
	if a.IsTerminal == nil {
		a.IsTerminal = attachedToTerminal
	}
	return nil
}

// CommandContext returns the command's context carrying a correlation id, and
// a logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, correlationID := logging.EnsureCorrelationID(ctx)

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("component", component, "correlation_id", correlationID)
}

// Sessions returns a session manager logging to logger.
func (a *AppContext) Sessions(logger ports.Logger) *session.Manager {
	return session.NewManager(a.IDs, a.Events, logger)
}

// loadCatalog reads path, or returns the built-in catalog when path is empty.
func (a *AppContext) loadCatalog(ctx context.Context, path string) (form.Catalog, error) {
	if path == "" {
		return form.DefaultCatalog(), nil
	}
	return a.Catalog.LoadCatalog(ctx, path)
}

// loadRecipe reads a recipe and the catalog it builds from. override, when
// set, replaces the recipe's own catalog.
func (a *AppContext) loadRecipe(ctx context.Context, path, override string) (*recipe.Recipe, form.Catalog, error) {
	r, err := a.Recipes.LoadRecipe(ctx, path)
	if err != nil {
		return nil, form.Catalog{}, err
	}
	catalogPath := r.CatalogPath
	if override != "" {
		catalogPath = override
	}
	catalog, err := a.loadCatalog(ctx, catalogPath)
	if err != nil {
		return nil, form.Catalog{}, err
	}
	return r, catalog, nil
}
