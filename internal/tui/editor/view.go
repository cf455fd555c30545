package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the editor.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	theme := m.renderer.Theme()

	header := theme.Title.Render("formsmith")
	if m.title != "" {
		header = theme.Title.Render("formsmith • " + m.title)
	}

	catalogStyle, formStyle := theme.Pane, theme.Pane
	if m.focus == PaneCatalog {
		catalogStyle = theme.Focused
	} else {
		formStyle = theme.Focused
	}

	catalog := catalogStyle.Width(catalogPaneWidth).Render(m.catalogView())
	preview := formStyle.Render(m.formView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, catalog, " ", preview)

	parts := []string{header, body}
	if status := m.statusLine(); status != "" {
		parts = append(parts, status)
	}
	if m.mode == ModeSectionTitle {
		parts = append(parts, m.input.View())
	}
	if m.toast != nil {
		parts = append(parts, theme.Toast(m.toast.Severity, m.toast.Message))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) catalogView() string {
	theme := m.renderer.Theme()
	lines := []string{theme.Heading.Render("Catalog")}
	for i, tpl := range m.templates() {
		line := fmt.Sprintf("%-4s %s", tpl.ID, tpl.Text)
		if i == m.catalogCursor && m.focus == PaneCatalog {
			line = theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) formView() string {
	theme := m.renderer.Theme()
	heading := theme.Heading.Render(fmt.Sprintf("Form (%d)", len(m.store.Questions())))
	return lipgloss.JoinVertical(lipgloss.Left, heading, m.renderer.WithWidth(m.previewWidth()).Render(m.store.Layout()))
}

func (m Model) statusLine() string {
	q, ok := m.current()
	if !ok || m.focus != PaneForm {
		return ""
	}
	theme := m.renderer.Theme()
	status := fmt.Sprintf("%d/%d %s", m.formCursor+1, len(m.store.Questions()), q.Text)
	if section, ok := m.store.SectionOf(q.ID); ok {
		status += fmt.Sprintf(" in %q", section.Title)
	}
	if n := len(m.marked); n > 0 {
		status += fmt.Sprintf(" · %d marked", n)
	}
	return theme.Muted.Render(status)
}
