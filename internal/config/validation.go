package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	apperrors "github.com/alexisbeaulieu97/formsmith/pkg/errors"
)

// ValidateCatalog performs structural and cross-field validation on a catalog document.
func ValidateCatalog(doc *CatalogFile) error {
	if doc == nil {
		return apperrors.NewValidationError("catalog", "catalog is nil", nil)
	}
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Questions))
	for i, q := range doc.Questions {
		if prev, exists := seen[q.ID]; exists {
			return apperrors.NewValidationError(fieldFor("questions", i, "id"),
				fmt.Sprintf("duplicate template id %q (also at questions[%d])", q.ID, prev), nil)
		}
		seen[q.ID] = i
		if err := validateOptions(q, i); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(q TemplateDoc, index int) error {
	kind := form.QuestionType(q.Type)
	switch {
	case kind.HasOptions() && len(q.Options) == 0:
		return apperrors.NewValidationError(fieldFor("questions", index, "options"),
			fmt.Sprintf("%s questions need at least one option", q.Type), nil)
	case !kind.HasOptions() && len(q.Options) > 0:
		return apperrors.NewValidationError(fieldFor("questions", index, "options"),
			fmt.Sprintf("%s questions take no options", q.Type), nil)
	}

	ids := make(map[string]struct{}, len(q.Options))
	for j, opt := range q.Options {
		if _, dup := ids[opt.ID]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("questions[%d].options[%d].id", index, j),
				fmt.Sprintf("duplicate option id %q", opt.ID), nil)
		}
		ids[opt.ID] = struct{}{}
	}
	return nil
}

// ValidateRecipe performs structural and cross-field validation on a recipe document.
func ValidateRecipe(doc *RecipeFile) error {
	if doc == nil {
		return apperrors.NewValidationError("recipe", "recipe is nil", nil)
	}
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	keys := make(map[string]int, len(doc.Questions))
	for i, p := range doc.Questions {
		key := p.Alias
		if key == "" {
			key = p.Template
		}
		if prev, exists := keys[key]; exists {
			return apperrors.NewValidationError(fieldFor("questions", i, "alias"),
				fmt.Sprintf("%q already names questions[%d]; set a distinct alias", key, prev), nil)
		}
		keys[key] = i
	}

	grouped := make(map[string]int, len(keys))
	for i, s := range doc.Sections {
		for _, member := range s.Questions {
			if _, ok := keys[member]; !ok {
				return apperrors.NewValidationError(fieldFor("sections", i, "questions"),
					fmt.Sprintf("references unknown question %q", member), nil)
			}
			if prev, taken := grouped[member]; taken {
				return apperrors.NewValidationError(fieldFor("sections", i, "questions"),
					fmt.Sprintf("question %q already belongs to sections[%d]", member, prev), nil)
			}
			grouped[member] = i
		}
	}

	for i, m := range doc.Moves {
		if m.From >= len(doc.Questions) || m.To >= len(doc.Questions) {
			return apperrors.NewValidationError(fmt.Sprintf("moves[%d]", i),
				fmt.Sprintf("index out of range for %d questions", len(doc.Questions)), nil)
		}
	}

	if doc.Select != "" {
		if _, ok := keys[doc.Select]; !ok {
			return apperrors.NewValidationError("select", fmt.Sprintf("references unknown question %q", doc.Select), nil)
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into formsmith validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("document", err.Error(), err)
}

// yamlFieldName drops the root type from the namespace, which is built from
// yaml tag names.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return ns
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
