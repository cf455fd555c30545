package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
)

const toastTTL = 4 * time.Second

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ToastMsg:
		return m.showToast(msg, m.feed.wait())

	case clearToastMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil

	case ErrorMsg:
		return m.showToast(ToastMsg{Severity: render.SeverityError, Message: msg.Err.Error()}, nil)

	case tea.KeyMsg:
		if m.mode == ModeSectionTitle {
			return m.handleTitleKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) showToast(toast ToastMsg, next tea.Cmd) (tea.Model, tea.Cmd) {
	m.toastSeq++
	toast.seq = m.toastSeq
	m.toast = &toast
	seq := m.toastSeq
	expire := tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
	if next == nil {
		return m, expire
	}
	return m, tea.Batch(next, expire)
}

// fail surfaces a rejected operation as an error toast.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	return m.showToast(ToastMsg{Severity: render.SeverityError, Message: err.Error()}, nil)
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == PaneCatalog {
			m.focus = PaneForm
			return m.selectCurrent()
		}
		m.focus = PaneCatalog
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.Deselect):
		m.store.SelectQuestion(m.ctx, "")
		return m, nil
	}

	if m.focus == PaneCatalog {
		if key.Matches(msg, m.keys.Add) {
			return m.addFromCatalog()
		}
		return m, nil
	}
	return m.handleFormKeys(msg)
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.current()
	if !ok {
		if key.Matches(msg, m.keys.NewSection) {
			return m.beginSection()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		return m.selectCurrent()

	case key.Matches(msg, m.keys.Remove):
		if err := m.store.RemoveQuestionFromForm(m.ctx, q.ID); err != nil {
			return m.fail(err)
		}
		delete(m.marked, q.ID)
		m.clampCursors()
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveQuestion(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveQuestion(1)

	case key.Matches(msg, m.keys.Mark):
		if m.marked[q.ID] {
			delete(m.marked, q.ID)
		} else {
			m.marked[q.ID] = true
		}
		return m, nil

	case key.Matches(msg, m.keys.NewSection):
		return m.beginSection()

	case key.Matches(msg, m.keys.NextSection):
		return m.intoNextSection(q)

	case key.Matches(msg, m.keys.LeaveSection):
		if err := m.store.RemoveQuestionFromSection(m.ctx, q.ID); err != nil {
			return m.fail(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.DropSection):
		section, ok := m.store.SectionOf(q.ID)
		if !ok {
			return m, nil
		}
		if err := m.store.RemoveSection(m.ctx, section.ID); err != nil {
			return m.fail(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Direction):
		return m.toggleDirection(q)

	case key.Matches(msg, m.keys.Bold):
		bold := q.Style != nil && q.Style.IsBold != nil && *q.Style.IsBold
		if _, err := m.store.UpdateQuestionStyle(m.ctx, q.ID, form.QuestionStyle{IsBold: form.Bool(!bold)}); err != nil {
			return m.fail(err)
		}
		return m, nil

	case key.Matches(msg, m.keys.GlobalBold):
		global := m.store.GlobalStyle()
		bold := global.Question.IsBold != nil && *global.Question.IsBold
		patch := form.GlobalStyle{Question: form.TextStyle{IsBold: form.Bool(!bold)}}
		if _, err := m.store.UpdateGlobalStyle(m.ctx, patch); err != nil {
			return m.fail(err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTitleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			title = fmt.Sprintf("Section %d", len(m.store.Sections())+1)
		}
		m.mode = ModeBrowse
		m.input.Blur()
		m.input.Reset()
		if _, err := m.store.CreateSection(m.ctx, title, m.Marked()); err != nil {
			return m.fail(err)
		}
		m.marked = make(map[string]bool)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginSection() (tea.Model, tea.Cmd) {
	m.mode = ModeSectionTitle
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if m.focus == PaneCatalog {
		n := len(m.templates())
		if n == 0 {
			return m, nil
		}
		m.catalogCursor = (m.catalogCursor + delta + n) % n
		return m, nil
	}

	n := len(m.store.Questions())
	if n == 0 {
		return m, nil
	}
	m.formCursor = (m.formCursor + delta + n) % n
	return m.selectCurrent()
}

// selectCurrent makes the question under the form cursor the selection.
func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	if q, ok := m.current(); ok {
		m.store.SelectQuestion(m.ctx, q.ID)
	}
	return m, nil
}

func (m Model) addFromCatalog() (tea.Model, tea.Cmd) {
	templates := m.templates()
	if m.catalogCursor < 0 || m.catalogCursor >= len(templates) {
		return m, nil
	}
	if _, err := m.store.AddQuestionFromCatalog(m.ctx, templates[m.catalogCursor].ID); err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m Model) moveQuestion(delta int) (tea.Model, tea.Cmd) {
	to := m.formCursor + delta
	if to < 0 || to >= len(m.store.Questions()) {
		return m, nil
	}
	if err := m.store.MoveQuestion(m.ctx, m.formCursor, to); err != nil {
		return m.fail(err)
	}
	m.formCursor = to
	return m, nil
}

// intoNextSection moves q into the section after its current one, wrapping
// around; an unsectioned question goes into the first section.
func (m Model) intoNextSection(q form.PlacedQuestion) (tea.Model, tea.Cmd) {
	sections := m.store.Sections()
	if len(sections) == 0 {
		return m, nil
	}
	target := sections[0]
	if current, ok := m.store.SectionOf(q.ID); ok {
		for i, s := range sections {
			if s.ID == current.ID {
				target = sections[(i+1)%len(sections)]
				break
			}
		}
	}
	if _, err := m.store.AddQuestionToSection(m.ctx, q.ID, target.ID); err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m Model) toggleDirection(q form.PlacedQuestion) (tea.Model, tea.Cmd) {
	section, ok := m.store.SectionOf(q.ID)
	if !ok {
		return m, nil
	}
	next := form.FlexDirectionRow
	if m.store.GlobalStyle().ResolveSection(section.Style).FlexDirection == form.FlexDirectionRow {
		next = form.FlexDirectionColumn
	}
	if _, err := m.store.UpdateSectionStyle(m.ctx, section.ID, form.SectionStyle{FlexDirection: form.Direction(next)}); err != nil {
		return m.fail(err)
	}
	return m, nil
}
