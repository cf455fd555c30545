package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	require.Equal(t, 10, c.Len())
	templates := c.Templates()
	assert.Equal(t, "q1", templates[0].ID)
	assert.Equal(t, "q10", templates[9].ID)

	q9, err := c.Get("q9")
	require.NoError(t, err)
	assert.Equal(t, QuestionTypeMultiChoice, q9.Type)
	assert.Len(t, q9.Options, 3)
}

func TestCatalogGetUnknown(t *testing.T) {
	_, err := DefaultCatalog().Get("q42")
	assert.True(t, IsNotFound(err))
	assert.False(t, DefaultCatalog().Has("q42"))
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := DefaultCatalog()

	tpl, err := c.Get("q3")
	require.NoError(t, err)
	tpl.Options[0].Text = "Purple"
	listed := c.Templates()
	listed[2].Text = "changed"

	again, err := c.Get("q3")
	require.NoError(t, err)
	assert.Equal(t, "Red", again.Options[0].Text)
	assert.Equal(t, "What is your favorite color?", again.Text)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name      string
		templates []QuestionTemplate
	}{
		{"duplicate id", []QuestionTemplate{
			{ID: "a", Text: "One", Type: QuestionTypeText},
			{ID: "a", Text: "Two", Type: QuestionTypeText},
		}},
		{"missing id", []QuestionTemplate{{Text: "One", Type: QuestionTypeText}}},
		{"text with options", []QuestionTemplate{
			{ID: "a", Text: "One", Type: QuestionTypeText, Options: []Option{{ID: "o", Text: "x"}}},
		}},
		{"choice without options", []QuestionTemplate{{ID: "a", Text: "One", Type: QuestionTypeCheckbox}}},
		{"duplicate option id", []QuestionTemplate{
			{ID: "a", Text: "One", Type: QuestionTypeDropdown, Options: []Option{{ID: "o", Text: "x"}, {ID: "o", Text: "y"}}},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.templates...)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestQuestionTypes(t *testing.T) {
	assert.Len(t, QuestionTypes(), 4)
	assert.False(t, QuestionTypeText.HasOptions())
	assert.True(t, QuestionTypeDropdown.HasOptions())
	assert.False(t, QuestionType("rating").Valid())
}
