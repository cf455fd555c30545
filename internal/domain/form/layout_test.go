package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutOrdersSectionsBeforeUngrouped(t *testing.T) {
	f := newTestForm(t, "p1", "p2", "p3", "p4")
	_, err := f.CreateSection("s1", "First", []string{"p3", "p1"})
	require.NoError(t, err)
	_, err = f.CreateSection("s2", "Empty", nil)
	require.NoError(t, err)
	require.True(t, f.SelectQuestion("p1"))

	layout := f.Layout()

	require.Len(t, layout.Sections, 2)
	first := layout.Sections[0]
	require.Len(t, first.Questions, 2)
	assert.Equal(t, "p3", first.Questions[0].Question.ID)
	assert.Equal(t, 2, first.Questions[0].Index)
	assert.Equal(t, "p1", first.Questions[1].Question.ID)
	assert.True(t, first.Questions[1].Selected)
	assert.Empty(t, layout.Sections[1].Questions)

	require.Len(t, layout.Ungrouped, 2)
	assert.Equal(t, "p2", layout.Ungrouped[0].Question.ID)
	assert.Equal(t, "p4", layout.Ungrouped[1].Question.ID)
	assert.Equal(t, 4, layout.Len())
	assert.Equal(t, "p1", layout.SelectedID)
}

func TestLayoutResolvesStyles(t *testing.T) {
	f := New(DefaultCatalog())
	tpl, err := f.Catalog().Get("q4")
	require.NoError(t, err)
	_, err = f.AddQuestion("p1", tpl)
	require.NoError(t, err)
	_, err = f.UpdateQuestionStyle("p1", QuestionStyle{IsBold: Bool(true)})
	require.NoError(t, err)
	_, err = f.UpdateOptionStyle("p1", "opt6", OptionStyle{FontColor: String("#00aa00")})
	require.NoError(t, err)
	_, err = f.CreateSection("s1", "Hobbies", []string{"p1"})
	require.NoError(t, err)
	_, err = f.UpdateSectionStyle("s1", SectionStyle{FlexDirection: Direction(FlexDirectionRow)})
	require.NoError(t, err)

	layout := f.Layout()

	section := layout.Sections[0]
	assert.Equal(t, FlexDirectionRow, section.Style.FlexDirection)
	q := section.Questions[0]
	assert.Equal(t, FontWeightBold, q.Style.FontWeight)
	require.Len(t, q.Options, 4)
	assert.Equal(t, "#555555", q.Options[0].Style.FontColor)
	assert.Equal(t, "#00aa00", q.Options[1].Style.FontColor)
	assert.Equal(t, "14px", q.Options[1].Style.FontSize)
}

func TestLayoutReflectsGlobalChanges(t *testing.T) {
	f := newTestForm(t, "p1")
	before := f.Layout()

	_, err := f.UpdateGlobalStyle(GlobalStyle{Question: TextStyle{FontColor: String("#111111")}})
	require.NoError(t, err)
	after := f.Layout()

	assert.Equal(t, "#333333", before.Ungrouped[0].Style.FontColor)
	assert.Equal(t, "#111111", after.Ungrouped[0].Style.FontColor)
	assert.Empty(t, after.SelectedID)
}
