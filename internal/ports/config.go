package ports

import (
	"context"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
)

// CatalogLoader loads question catalogs from an external source. Errors are
// translated into domain codes:
//   - io/fs.ErrNotExist → NOT_FOUND
//   - YAML syntax or schema failures → INVALID_INPUT
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, path string) (form.Catalog, error)
}

// RecipeLoader loads form recipes: scripted sequences of placements, section
// groupings and style overrides replayed against a fresh session.
type RecipeLoader interface {
	// LoadRecipe materialises a fully validated recipe from path.
	LoadRecipe(ctx context.Context, path string) (*recipe.Recipe, error)

	// Validate performs the same checks as LoadRecipe without returning the
	// recipe, so the CLI can surface errors quickly.
	Validate(ctx context.Context, path string) error
}
