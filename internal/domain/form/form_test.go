package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T, ids ...string) *Form {
	t.Helper()
	f := New(DefaultCatalog())
	for i, id := range ids {
		tpl := defaultTemplates()[i%len(defaultTemplates())]
		_, err := f.AddQuestion(id, tpl)
		require.NoError(t, err)
	}
	return f
}

func questionIDs(f *Form) []string {
	out := []string{}
	for _, q := range f.Questions() {
		out = append(out, q.ID)
	}
	return out
}

func TestAddQuestionCopiesTemplate(t *testing.T) {
	f := New(DefaultCatalog())
	tpl, err := f.Catalog().Get("q3")
	require.NoError(t, err)

	placed, err := f.AddQuestion("p1", tpl)
	require.NoError(t, err)
	assert.Equal(t, "p1", placed.ID)
	assert.Equal(t, "q3", placed.TemplateID)
	assert.Nil(t, placed.Style)
	require.Len(t, placed.Options, 4)

	placed.Text = "Edited"
	placed.Options[0].Text = "Crimson"
	_, err = f.UpdateQuestion(placed)
	require.NoError(t, err)

	original, err := f.Catalog().Get("q3")
	require.NoError(t, err)
	assert.Equal(t, "What is your favorite color?", original.Text)
	assert.Equal(t, "Red", original.Options[0].Text)
}

func TestAddQuestionSameTemplateTwice(t *testing.T) {
	f := New(DefaultCatalog())
	tpl, err := f.Catalog().Get("q1")
	require.NoError(t, err)

	_, err = f.AddQuestion("p1", tpl)
	require.NoError(t, err)
	_, err = f.AddQuestion("p2", tpl)
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2"}, questionIDs(f))
}

func TestAddQuestionRejectsIDs(t *testing.T) {
	f := newTestForm(t, "p1")
	tpl := defaultTemplates()[0]

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"duplicate", "p1"},
		{"catalog collision", "q2"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.AddQuestion(tt.id, tpl)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
			assert.Equal(t, []string{"p1"}, questionIDs(f))
		})
	}
}

func TestRemovedIDIsNeverReused(t *testing.T) {
	f := newTestForm(t, "p1")
	require.NoError(t, f.RemoveQuestion("p1"))

	_, err := f.AddQuestion("p1", defaultTemplates()[0])
	assert.True(t, IsInvalidInput(err))
}

func TestAddQuestionRejectsMalformedTemplate(t *testing.T) {
	f := New(DefaultCatalog())

	_, err := f.AddQuestion("p1", QuestionTemplate{ID: "x", Text: "Pick", Type: QuestionTypeDropdown})
	assert.True(t, IsInvalidInput(err))

	_, err = f.AddQuestion("p2", QuestionTemplate{ID: "x", Text: "Name", Type: QuestionType("slider")})
	assert.True(t, IsInvalidInput(err))
	assert.Empty(t, f.Questions())
}

func TestRemoveQuestionCascades(t *testing.T) {
	f := newTestForm(t, "p1", "p2", "p3")
	_, err := f.CreateSection("S", "Section 1", []string{"p1", "p2"})
	require.NoError(t, err)
	require.True(t, f.SelectQuestion("p1"))

	require.NoError(t, f.RemoveQuestion("p1"))

	section, err := f.Section("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, section.QuestionIDs)
	_, selected := f.Selected()
	assert.False(t, selected)
	assert.Equal(t, []string{"p2", "p3"}, questionIDs(f))
}

func TestRemoveQuestionKeepsOtherSelection(t *testing.T) {
	f := newTestForm(t, "p1", "p2")
	require.True(t, f.SelectQuestion("p2"))

	require.NoError(t, f.RemoveQuestion("p1"))

	selected, ok := f.Selected()
	require.True(t, ok)
	assert.Equal(t, "p2", selected.ID)
}

func TestRemoveUnknownQuestion(t *testing.T) {
	f := newTestForm(t, "p1")

	err := f.RemoveQuestion("nope")
	assert.True(t, IsNotFound(err))
	assert.Len(t, f.Questions(), 1)
}

func TestUpdateQuestion(t *testing.T) {
	f := newTestForm(t, "p1")

	q, err := f.Question("p1")
	require.NoError(t, err)
	q.Text = "Your full name?"
	_, err = f.UpdateQuestion(q)
	require.NoError(t, err)

	got, err := f.Question("p1")
	require.NoError(t, err)
	assert.Equal(t, "Your full name?", got.Text)

	_, err = f.UpdateQuestion(PlacedQuestion{ID: "nope", Text: "x", Type: QuestionTypeText})
	assert.True(t, IsNotFound(err))

	q.Text = ""
	_, err = f.UpdateQuestion(q)
	assert.True(t, IsInvalidInput(err))
	got, err = f.Question("p1")
	require.NoError(t, err)
	assert.Equal(t, "Your full name?", got.Text)
}

func TestUpdateQuestionStyleMerges(t *testing.T) {
	f := newTestForm(t, "p1")

	_, err := f.UpdateQuestionStyle("p1", QuestionStyle{FontColor: String("#ff0000")})
	require.NoError(t, err)
	q, err := f.UpdateQuestionStyle("p1", QuestionStyle{IsBold: Bool(true)})
	require.NoError(t, err)

	require.NotNil(t, q.Style)
	assert.Equal(t, "#ff0000", *q.Style.FontColor)
	assert.True(t, *q.Style.IsBold)

	_, err = f.UpdateQuestionStyle("nope", QuestionStyle{})
	assert.True(t, IsNotFound(err))

	_, err = f.UpdateQuestionStyle("p1", QuestionStyle{TextAlign: Align("middle")})
	assert.True(t, IsInvalidInput(err))
}

func TestCascadeForPlacedQuestion(t *testing.T) {
	f := newTestForm(t, "p1")
	_, err := f.UpdateQuestionStyle("p1", QuestionStyle{FontColor: String("#ff0000")})
	require.NoError(t, err)

	q, err := f.Question("p1")
	require.NoError(t, err)
	got, err := f.ResolveEffectiveStyle(CategoryQuestion, q.Style)
	require.NoError(t, err)

	assert.Equal(t, "#ff0000", got.Text.FontColor)
	assert.Equal(t, "16px", got.Text.FontSize)
}

func TestUpdateOptionStyle(t *testing.T) {
	f := New(DefaultCatalog())
	tpl, err := f.Catalog().Get("q3")
	require.NoError(t, err)
	_, err = f.AddQuestion("p1", tpl)
	require.NoError(t, err)

	q, err := f.UpdateOptionStyle("p1", "opt2", OptionStyle{FontColor: String("#0000ff")})
	require.NoError(t, err)

	opt, ok := q.Option("opt2")
	require.True(t, ok)
	require.NotNil(t, opt.Style)
	assert.Equal(t, "#0000ff", *opt.Style.FontColor)
	first, _ := q.Option("opt1")
	assert.Nil(t, first.Style)

	_, err = f.UpdateOptionStyle("p1", "opt99", OptionStyle{})
	assert.True(t, IsNotFound(err))
	_, err = f.UpdateOptionStyle("p9", "opt1", OptionStyle{})
	assert.True(t, IsNotFound(err))
}

func TestUpdateGlobalStyleIsIdempotent(t *testing.T) {
	f := New(DefaultCatalog())
	patch := GlobalStyle{Question: TextStyle{FontSize: String("18px")}}

	first, err := f.UpdateGlobalStyle(patch)
	require.NoError(t, err)
	second, err := f.UpdateGlobalStyle(patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, DefaultGlobalStyle().Option, second.Option)
	assert.Equal(t, DefaultGlobalStyle().Section, second.Section)
	require.NoError(t, f.GlobalStyle().Complete())
}

func TestUpdateGlobalStyleRejectsInvalidEnum(t *testing.T) {
	f := New(DefaultCatalog())

	_, err := f.UpdateGlobalStyle(GlobalStyle{Section: SectionStyle{FlexDirection: Direction("diagonal")}})
	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, DefaultGlobalStyle(), f.GlobalStyle())
}

func TestReplaceGlobalStyleRequiresCompleteStyle(t *testing.T) {
	f := New(DefaultCatalog())
	partial := DefaultGlobalStyle()
	partial.Option.FontSize = nil

	assert.True(t, IsInvalidInput(f.ReplaceGlobalStyle(partial)))

	replacement := DefaultGlobalStyle()
	replacement.Option.FontSize = String("12px")
	require.NoError(t, f.ReplaceGlobalStyle(replacement))
	assert.Equal(t, "12px", *f.GlobalStyle().Option.FontSize)
}

func TestGlobalStyleAccessorReturnsCopy(t *testing.T) {
	f := New(DefaultCatalog())

	g := f.GlobalStyle()
	*g.Question.FontColor = "#000000"

	assert.Equal(t, "#333333", *f.GlobalStyle().Question.FontColor)
}

func TestCreateSection(t *testing.T) {
	f := newTestForm(t, "p1", "p2", "p3")

	section, err := f.CreateSection("s1", "About you", []string{"p2", "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, section.QuestionIDs)
	require.NotNil(t, section.Style)
	assert.Equal(t, DefaultGlobalStyle().Section, *section.Style)

	empty, err := f.CreateSection("s2", "Later", nil)
	require.NoError(t, err)
	assert.Empty(t, empty.QuestionIDs)
	assert.Len(t, f.Sections(), 2)
}

func TestCreateSectionStyleIsACopy(t *testing.T) {
	f := newTestForm(t, "p1")
	_, err := f.CreateSection("s1", "Section 1", []string{"p1"})
	require.NoError(t, err)

	_, err = f.UpdateGlobalStyle(GlobalStyle{Section: SectionStyle{BackgroundColor: String("#000000")}})
	require.NoError(t, err)

	section, err := f.Section("s1")
	require.NoError(t, err)
	assert.Equal(t, "#f9f9f9", *section.Style.BackgroundColor)
}

func TestCreateSectionIsAtomic(t *testing.T) {
	tests := []struct {
		name string
		id   string
		qids []string
	}{
		{"unknown question", "s2", []string{"p2", "ghost"}},
		{"question already grouped", "s2", []string{"p3", "p1"}},
		{"repeated question", "s2", []string{"p2", "p2"}},
		{"reused section id", "s1", []string{"p2"}},
		{"empty section id", "", []string{"p2"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm(t, "p1", "p2", "p3")
			_, err := f.CreateSection("s1", "First", []string{"p1"})
			require.NoError(t, err)

			_, err = f.CreateSection(tt.id, "Second", tt.qids)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))

			sections := f.Sections()
			require.Len(t, sections, 1)
			assert.Equal(t, []string{"p1"}, sections[0].QuestionIDs)
			_, grouped := f.SectionOf("p2")
			assert.False(t, grouped)
		})
	}
}

func TestAddQuestionToSectionMovesBetweenSections(t *testing.T) {
	f := newTestForm(t, "p1", "p2")
	_, err := f.CreateSection("a", "A", []string{"p1"})
	require.NoError(t, err)
	_, err = f.CreateSection("b", "B", []string{"p2"})
	require.NoError(t, err)

	target, err := f.AddQuestionToSection("p1", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, target.QuestionIDs)

	source, err := f.Section("a")
	require.NoError(t, err)
	assert.Empty(t, source.QuestionIDs)

	again, err := f.AddQuestionToSection("p1", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1"}, again.QuestionIDs)
}

func TestAddQuestionToSectionErrors(t *testing.T) {
	f := newTestForm(t, "p1")
	_, err := f.CreateSection("a", "A", nil)
	require.NoError(t, err)

	_, err = f.AddQuestionToSection("ghost", "a")
	assert.True(t, IsNotFound(err))
	_, err = f.AddQuestionToSection("p1", "ghost")
	assert.True(t, IsNotFound(err))
}

func TestRemoveQuestionFromSection(t *testing.T) {
	f := newTestForm(t, "p1", "p2")
	_, err := f.CreateSection("a", "A", []string{"p1", "p2"})
	require.NoError(t, err)

	left, err := f.RemoveQuestionFromSection("p1")
	require.NoError(t, err)
	assert.Equal(t, "a", left)
	assert.Equal(t, []string{"p1", "p2"}, questionIDs(f))

	left, err = f.RemoveQuestionFromSection("p1")
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = f.RemoveQuestionFromSection("ghost")
	assert.True(t, IsNotFound(err))
}

func TestSectionRenameStyleAndRemove(t *testing.T) {
	f := newTestForm(t, "p1")
	_, err := f.CreateSection("a", "A", []string{"p1"})
	require.NoError(t, err)

	renamed, err := f.RenameSection("a", "Contact")
	require.NoError(t, err)
	assert.Equal(t, "Contact", renamed.Title)

	styled, err := f.UpdateSectionStyle("a", SectionStyle{FlexDirection: Direction(FlexDirectionRow)})
	require.NoError(t, err)
	assert.Equal(t, FlexDirectionRow, *styled.Style.FlexDirection)
	assert.Equal(t, "16px", *styled.Style.Padding)

	removed, err := f.RemoveSection("a")
	require.NoError(t, err)
	assert.Equal(t, "Contact", removed.Title)
	assert.Empty(t, f.Sections())
	assert.Equal(t, []string{"p1"}, questionIDs(f))

	_, err = f.RemoveSection("a")
	assert.True(t, IsNotFound(err))
	_, err = f.RenameSection("a", "x")
	assert.True(t, IsNotFound(err))
	_, err = f.UpdateSectionStyle("a", SectionStyle{})
	assert.True(t, IsNotFound(err))

	_, err = f.CreateSection("a", "Reborn", nil)
	assert.True(t, IsInvalidInput(err))
}

func TestSelectQuestion(t *testing.T) {
	f := newTestForm(t, "p1", "p2")

	assert.True(t, f.SelectQuestion("p2"))
	selected, ok := f.Selected()
	require.True(t, ok)
	assert.Equal(t, "p2", selected.ID)

	assert.False(t, f.SelectQuestion("ghost"))
	_, ok = f.Selected()
	assert.False(t, ok)

	assert.True(t, f.SelectQuestion("p1"))
	assert.False(t, f.SelectQuestion(""))
	_, ok = f.Selected()
	assert.False(t, ok)
}

func TestMoveQuestion(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}},
		{"last to first", 2, 0, []string{"C", "A", "B"}},
		{"adjacent", 0, 1, []string{"B", "A", "C"}},
		{"same index", 1, 1, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTestForm(t, "A", "B", "C")
			require.NoError(t, f.MoveQuestion(tt.from, tt.to))
			assert.Equal(t, tt.want, questionIDs(f))
		})
	}
}

func TestMoveQuestionOutOfRange(t *testing.T) {
	f := newTestForm(t, "A", "B", "C")

	for _, idx := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {0, -2}} {
		err := f.MoveQuestion(idx[0], idx[1])
		assert.True(t, IsInvalidInput(err), "move %v", idx)
	}
	assert.Equal(t, []string{"A", "B", "C"}, questionIDs(f))

	empty := New(DefaultCatalog())
	assert.True(t, IsInvalidInput(empty.MoveQuestion(0, 0)))
}

func TestMoveKeepsSectionsAndSelection(t *testing.T) {
	f := newTestForm(t, "A", "B", "C")
	_, err := f.CreateSection("s", "S", []string{"C", "A"})
	require.NoError(t, err)
	require.True(t, f.SelectQuestion("B"))

	require.NoError(t, f.MoveQuestion(1, 0))

	section, err := f.Section("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, section.QuestionIDs)
	selected, ok := f.Selected()
	require.True(t, ok)
	assert.Equal(t, "B", selected.ID)
	assert.Equal(t, 0, f.IndexOf("B"))
	assert.Equal(t, -1, f.IndexOf("Z"))
}

func TestEveryQuestionInAtMostOneSection(t *testing.T) {
	f := newTestForm(t, "p1", "p2", "p3", "p4")
	_, err := f.CreateSection("a", "A", []string{"p1", "p2"})
	require.NoError(t, err)
	_, err = f.CreateSection("b", "B", []string{"p3"})
	require.NoError(t, err)
	_, err = f.AddQuestionToSection("p2", "b")
	require.NoError(t, err)
	_, err = f.AddQuestionToSection("p4", "a")
	require.NoError(t, err)
	require.NoError(t, f.RemoveQuestion("p3"))

	counts := map[string]int{}
	for _, s := range f.Sections() {
		for _, qid := range s.QuestionIDs {
			counts[qid]++
			assert.GreaterOrEqual(t, f.IndexOf(qid), 0, "section %s references missing %s", s.ID, qid)
		}
	}
	for qid, n := range counts {
		assert.Equal(t, 1, n, "question %s grouped %d times", qid, n)
	}
}

func TestTakenIDsAreFlagged(t *testing.T) {
	f := newTestForm(t, "p1")
	_, err := f.CreateSection("s1", "S", nil)
	require.NoError(t, err)

	_, err = f.AddQuestion("p1", defaultTemplates()[0])
	assert.True(t, IsIDTaken(err))
	_, err = f.AddQuestion("q5", defaultTemplates()[0])
	assert.True(t, IsIDTaken(err))
	_, err = f.CreateSection("s1", "Again", nil)
	assert.True(t, IsIDTaken(err))

	_, err = f.AddQuestion("", defaultTemplates()[0])
	assert.False(t, IsIDTaken(err))
	_, err = f.CreateSection("s2", "Bad", []string{"ghost"})
	assert.False(t, IsIDTaken(err))
}
