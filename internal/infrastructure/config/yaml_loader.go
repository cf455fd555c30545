package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/formsmith/internal/config"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	apperrors "github.com/alexisbeaulieu97/formsmith/pkg/errors"
)

// YAMLLoader implements the CatalogLoader and RecipeLoader ports by reading
// YAML files from disk.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	if logger != nil {
		logger = logger.With("layer", "infrastructure", "component", "yaml_loader")
	}
	return &YAMLLoader{logger: logger}
}

// LoadCatalog reads a catalog file.
func (l *YAMLLoader) LoadCatalog(ctx context.Context, path string) (form.Catalog, error) {
	if err := contextCheck(ctx); err != nil {
		return form.Catalog{}, err
	}
	if err := checkFile(path); err != nil {
		return form.Catalog{}, err
	}

	l.logDebug(ctx, "loading catalog", map[string]interface{}{"path": path})

	doc, err := cfgpkg.ParseCatalog(path)
	if err != nil {
		l.logError(ctx, "failed to parse catalog", err, map[string]interface{}{"path": path})
		return form.Catalog{}, convertError(err, path)
	}

	catalog, err := doc.ToCatalog()
	if err != nil {
		l.logError(ctx, "catalog failed domain validation", err, map[string]interface{}{"path": path})
		return form.Catalog{}, withPath(err, path)
	}

	l.logInfo(ctx, "catalog loaded", map[string]interface{}{"path": path, "templates": catalog.Len()})
	return catalog, nil
}

// LoadRecipe reads a recipe file. A relative catalog path is resolved against
// the recipe's directory.
func (l *YAMLLoader) LoadRecipe(ctx context.Context, path string) (*recipe.Recipe, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}
	if err := checkFile(path); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading recipe", map[string]interface{}{"path": path})

	doc, err := cfgpkg.ParseRecipe(path)
	if err != nil {
		l.logError(ctx, "failed to parse recipe", err, map[string]interface{}{"path": path})
		return nil, convertError(err, path)
	}

	r := doc.ToRecipe()
	if r.CatalogPath != "" && !filepath.IsAbs(r.CatalogPath) {
		r.CatalogPath = filepath.Join(filepath.Dir(path), r.CatalogPath)
	}
	if err := r.Validate(); err != nil {
		l.logError(ctx, "recipe failed domain validation", err, map[string]interface{}{"path": path})
		return nil, withPath(err, path)
	}

	l.logInfo(ctx, "recipe loaded", map[string]interface{}{
		"path":      path,
		"recipe":    r.Name,
		"questions": len(r.Questions),
		"sections":  len(r.Sections),
	})
	return r, nil
}

// Validate checks a recipe file without returning it.
func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	_, err := l.LoadRecipe(ctx, path)
	return err
}

var (
	_ ports.CatalogLoader = (*YAMLLoader)(nil)
	_ ports.RecipeLoader  = (*YAMLLoader)(nil)
)

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return convertError(err, path)
	}
	if info.IsDir() {
		return domainError(form.ErrCodeInvalidInput, "path is a directory", nil, map[string]interface{}{"path": path})
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return nil
	default:
		return domainError(form.ErrCodeInvalidInput, "unsupported file extension", nil, map[string]interface{}{"path": path, "extension": ext})
	}
}

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return domainError(form.ErrCodeNotFound, "file not found", err, map[string]interface{}{"path": path})
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		return domainError(form.ErrCodeInvalidInput, "invalid YAML syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		return domainError(form.ErrCodeInvalidInput, valErr.Message, valErr.Err, context)
	}
	return domainError(form.ErrCodeInvalidInput, "document load failed", err, map[string]interface{}{"path": path})
}

func withPath(err error, path string) error {
	var domainErr *form.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.WithContext(map[string]interface{}{"path": path})
	}
	return err
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load cancelled: %w", err)
	}
	return nil
}

func domainError(code form.ErrorCode, message string, cause error, ctx map[string]interface{}) *form.DomainError {
	return &form.DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: ctx,
	}
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
