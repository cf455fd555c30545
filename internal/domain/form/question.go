package form

import (
	"fmt"
	"strings"
)

// QuestionType enumerates the closed set of question kinds.
type QuestionType string

const (
	QuestionTypeText        QuestionType = "text"
	QuestionTypeMultiChoice QuestionType = "multiChoice"
	QuestionTypeCheckbox    QuestionType = "checkbox"
	QuestionTypeDropdown    QuestionType = "dropdown"
)

var validQuestionTypes = []QuestionType{
	QuestionTypeText,
	QuestionTypeMultiChoice,
	QuestionTypeCheckbox,
	QuestionTypeDropdown,
}

// QuestionTypes returns the supported question kinds in display order.
func QuestionTypes() []QuestionType {
	return append([]QuestionType(nil), validQuestionTypes...)
}

// HasOptions reports whether questions of this kind carry choices.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionTypeMultiChoice, QuestionTypeCheckbox, QuestionTypeDropdown:
		return true
	default:
		return false
	}
}

// Valid reports whether t is one of the supported kinds.
func (t QuestionType) Valid() bool {
	for _, candidate := range validQuestionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// Option is a single choice of a multiChoice, checkbox or dropdown question.
type Option struct {
	ID    string
	Text  string
	Style *OptionStyle
}

// QuestionTemplate is an immutable catalog entry.
type QuestionTemplate struct {
	ID      string
	Text    string
	Type    QuestionType
	Options []Option
}

// Validate ensures the template can be placed on a form.
func (t QuestionTemplate) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return newMissingFieldError("id")
	}
	return validateBody(t.Text, t.Type, t.Options, map[string]interface{}{"template_id": t.ID})
}

// Clone returns a deep copy of the template.
func (t QuestionTemplate) Clone() QuestionTemplate {
	return QuestionTemplate{
		ID:      t.ID,
		Text:    t.Text,
		Type:    t.Type,
		Options: cloneOptions(t.Options),
	}
}

// PlacedQuestion is an independently editable copy of a template placed on a
// form. ID is unique among every question ever placed on the form.
type PlacedQuestion struct {
	ID         string
	TemplateID string
	Text       string
	Type       QuestionType
	Options    []Option
	Style      *QuestionStyle
}

// Validate ensures the question keeps a well-formed shape.
func (q PlacedQuestion) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return newMissingFieldError("id")
	}
	if q.Style != nil {
		if err := q.Style.Validate(); err != nil {
			return withContext(err, map[string]interface{}{"question_id": q.ID})
		}
	}
	return validateBody(q.Text, q.Type, q.Options, map[string]interface{}{"question_id": q.ID})
}

// Clone returns a deep copy of the question.
func (q PlacedQuestion) Clone() PlacedQuestion {
	out := q
	out.Options = cloneOptions(q.Options)
	if q.Style != nil {
		style := q.Style.Clone()
		out.Style = &style
	}
	return out
}

// Option returns the option with the given id.
func (q PlacedQuestion) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

func validateBody(text string, kind QuestionType, options []Option, ctx map[string]interface{}) error {
	if strings.TrimSpace(text) == "" {
		return newMissingFieldError("text").WithContext(ctx)
	}
	if kind == "" {
		return newMissingFieldError("type").WithContext(ctx)
	}
	if !kind.Valid() {
		return newInvalidInputError("invalid question type", map[string]interface{}{
			"expected": fmt.Sprintf("one of %v", validQuestionTypes),
			"actual":   string(kind),
		}).WithContext(ctx)
	}
	if !kind.HasOptions() {
		if len(options) > 0 {
			return newInvalidInputError("text questions cannot carry options", nil).WithContext(ctx)
		}
		return nil
	}
	if len(options) == 0 {
		return newInvalidInputError("choice questions require at least one option", map[string]interface{}{
			"type": string(kind),
		}).WithContext(ctx)
	}

	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt.ID) == "" {
			return newMissingFieldError("options.id").WithContext(ctx)
		}
		if _, ok := seen[opt.ID]; ok {
			return newInvalidInputError("duplicate option id", map[string]interface{}{
				"option_id": opt.ID,
			}).WithContext(ctx)
		}
		seen[opt.ID] = struct{}{}
		if opt.Style != nil {
			if err := opt.Style.Validate(); err != nil {
				return withContext(err, ctx)
			}
		}
	}
	return nil
}

func cloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	for i, opt := range options {
		out[i] = Option{ID: opt.ID, Text: opt.Text}
		if opt.Style != nil {
			style := opt.Style.Clone()
			out[i].Style = &style
		}
	}
	return out
}
