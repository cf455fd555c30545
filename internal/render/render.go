// Package render draws a form layout for the terminal. Styled output maps each
// element's effective style onto lipgloss; plain output is a stable textual
// description used for diffs and snapshots.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

// Glyphs are the markers drawn next to questions and options.
type Glyphs struct {
	Selected string
	Radio    string
	Checkbox string
	Dropdown string
	Input    string
}

// UnicodeGlyphs is used when the terminal can draw them.
var UnicodeGlyphs = Glyphs{
	Selected: "▸",
	Radio:    "○",
	Checkbox: "☐",
	Dropdown: "▾",
	Input:    "▁▁▁▁▁▁▁▁▁▁▁▁",
}

// ASCIIGlyphs is the fallback for terminals without unicode.
var ASCIIGlyphs = Glyphs{
	Selected: ">",
	Radio:    "( )",
	Checkbox: "[ ]",
	Dropdown: "v",
	Input:    "____________",
}

// Options configures a Renderer.
type Options struct {
	Theme Theme
	// Width is the column budget for text alignment. Zero disables alignment.
	Width  int
	Glyphs Glyphs
}

// Renderer draws layouts with a fixed theme.
type Renderer struct {
	theme  Theme
	width  int
	glyphs Glyphs
}

// New creates a Renderer, filling zero options with defaults.
func New(opts Options) *Renderer {
	if opts.Theme.Palette == (Palette{}) {
		opts.Theme = DefaultTheme()
	}
	if opts.Glyphs == (Glyphs{}) {
		opts.Glyphs = UnicodeGlyphs
	}
	return &Renderer{theme: opts.Theme, width: opts.Width, glyphs: opts.Glyphs}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// WithWidth returns a copy of the renderer aligned to width columns.
func (r *Renderer) WithWidth(width int) *Renderer {
	clone := *r
	clone.width = width
	return &clone
}

// Render draws the whole layout: sections in creation order, then the
// ungrouped questions.
func (r *Renderer) Render(layout form.Layout) string {
	if layout.Len() == 0 && len(layout.Sections) == 0 {
		return r.theme.Muted.Render("The form is empty. Add a question from the catalog.")
	}

	blocks := make([]string, 0, len(layout.Sections)+1)
	for _, section := range layout.Sections {
		blocks = append(blocks, r.Section(section))
	}
	if len(layout.Ungrouped) > 0 {
		items := make([]string, 0, len(layout.Ungrouped))
		for _, q := range layout.Ungrouped {
			items = append(items, r.Question(q))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, items...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Section draws a section box. Row sections place their questions side by
// side; column sections stack them.
func (r *Renderer) Section(section form.RenderedSection) string {
	title := r.theme.Heading.Render(section.Section.Title)

	items := make([]string, 0, len(section.Questions))
	for _, q := range section.Questions {
		items = append(items, r.Question(q))
	}

	var body string
	switch {
	case len(items) == 0:
		body = r.theme.Muted.Render("(no questions)")
	case section.Style.FlexDirection == form.FlexDirectionRow:
		spaced := make([]string, 0, len(items)*2)
		for i, item := range items {
			if i > 0 {
				spaced = append(spaced, "  ")
			}
			spaced = append(spaced, item)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left, items...)
	}

	return SectionStyle(section.Style).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// Question draws one question with its options.
func (r *Renderer) Question(q form.RenderedQuestion) string {
	marker := strings.Repeat(" ", lipgloss.Width(r.glyphs.Selected))
	if q.Selected {
		marker = r.theme.Marker.Render(r.glyphs.Selected)
	}

	text := r.textStyle(q.Style).Render(fmt.Sprintf("%d. %s", q.Index+1, q.Question.Text))
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, marker, " ", text)}

	indent := strings.Repeat(" ", lipgloss.Width(marker)+3)
	switch q.Question.Type {
	case form.QuestionTypeText:
		lines = append(lines, indent+r.theme.Muted.Render(r.glyphs.Input))
	default:
		glyph := r.optionGlyph(q.Question.Type)
		for _, opt := range q.Options {
			label := r.textStyle(opt.Style).Render(opt.Option.Text)
			lines = append(lines, indent+glyph+" "+label)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) textStyle(eff form.EffectiveTextStyle) lipgloss.Style {
	style := TextStyle(eff)
	if r.width > 0 && eff.TextAlign != "" && eff.TextAlign != form.TextAlignLeft {
		style = style.Width(r.width)
	}
	return style
}

func (r *Renderer) optionGlyph(kind form.QuestionType) string {
	switch kind {
	case form.QuestionTypeCheckbox:
		return r.glyphs.Checkbox
	case form.QuestionTypeDropdown:
		return r.glyphs.Dropdown
	default:
		return r.glyphs.Radio
	}
}
