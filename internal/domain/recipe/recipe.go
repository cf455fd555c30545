// Package recipe models a scripted form build: which catalog templates to
// place, how to group and restyle them, and which question to select. A
// recipe is replayed against a fresh session by the application layer.
package recipe

import (
	"errors"
	"strings"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

// Recipe is the validated, in-memory form of a recipe document.
type Recipe struct {
	Name        string
	CatalogPath string
	GlobalStyle form.GlobalStyle
	Questions   []Placement
	Sections    []SectionPlan
	Moves       []Move
	Select      string
}

// Placement places one catalog template. Later steps refer to it by Key.
type Placement struct {
	TemplateID   string
	Alias        string
	Style        *form.QuestionStyle
	OptionStyles map[string]form.OptionStyle
}

// Key returns the alias, falling back to the template id.
func (p Placement) Key() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.TemplateID
}

// SectionPlan groups placements, referenced by key, into one section.
type SectionPlan struct {
	Title   string
	Members []string
	Style   *form.SectionStyle
}

// Move reorders the placed questions after every placement has happened.
type Move struct {
	From int
	To   int
}

// Validate checks the recipe's internal references. Template ids are checked
// against the catalog when the recipe is applied.
func (r *Recipe) Validate() error {
	if r == nil {
		return invalid("recipe is nil", nil)
	}
	if err := r.GlobalStyle.Validate(); err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(r.Questions))
	for i, p := range r.Questions {
		if strings.TrimSpace(p.TemplateID) == "" {
			return invalid("placement is missing a template id", map[string]interface{}{"index": i})
		}
		key := p.Key()
		if _, dup := keys[key]; dup {
			return invalid("duplicate placement key", map[string]interface{}{
				"index": i,
				"key":   key,
			})
		}
		keys[key] = struct{}{}
		if p.Style != nil {
			if err := p.Style.Validate(); err != nil {
				return err
			}
		}
		for optionID, style := range p.OptionStyles {
			if err := style.Validate(); err != nil {
				var de *form.DomainError
				if errors.As(err, &de) {
					return de.WithContext(map[string]interface{}{"key": key, "option_id": optionID})
				}
				return err
			}
		}
	}

	grouped := make(map[string]int, len(keys))
	for i, s := range r.Sections {
		if s.Style != nil {
			if err := s.Style.Validate(); err != nil {
				return err
			}
		}
		for _, member := range s.Members {
			if _, ok := keys[member]; !ok {
				return invalid("section references an unknown placement", map[string]interface{}{
					"section": i,
					"key":     member,
				})
			}
			if prev, taken := grouped[member]; taken {
				return invalid("placement belongs to more than one section", map[string]interface{}{
					"section":       i,
					"other_section": prev,
					"key":           member,
				})
			}
			grouped[member] = i
		}
	}

	n := len(r.Questions)
	for i, m := range r.Moves {
		if m.From < 0 || m.From >= n || m.To < 0 || m.To >= n {
			return invalid("move index out of range", map[string]interface{}{
				"move":  i,
				"from":  m.From,
				"to":    m.To,
				"count": n,
			})
		}
	}

	if r.Select != "" {
		if _, ok := keys[r.Select]; !ok {
			return invalid("selection references an unknown placement", map[string]interface{}{"key": r.Select})
		}
	}
	return nil
}

func invalid(message string, context map[string]interface{}) *form.DomainError {
	return &form.DomainError{Code: form.ErrCodeInvalidInput, Message: message, Context: context}
}
