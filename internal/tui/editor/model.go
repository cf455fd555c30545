// Package editor is the interactive form editor: a catalog pane to pick
// questions from, a live preview of the form, and key bindings for every
// store operation.
package editor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formsmith/internal/application/builder"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
)

const (
	catalogPaneWidth = 44
	minPreviewWidth  = 30
)

// Options configures a Model.
type Options struct {
	// Title is shown in the header, typically the recipe name.
	Title string
	// Context is passed to every store operation.
	Context  context.Context
	Renderer *render.Renderer
	// Events is the publisher the store reports to. When set, the editor
	// subscribes to it and turns events into toasts.
	Events ports.EventPublisher
	Keys   *KeyMap
}

// Model is the Bubbletea model of the editor.
type Model struct {
	ctx      context.Context
	store    *builder.Store
	renderer *render.Renderer
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	title    string

	feed         *toastFeed
	subscription ports.Subscription

	focus         Pane
	mode          Mode
	catalogCursor int
	formCursor    int
	marked        map[string]bool

	toast    *ToastMsg
	toastSeq int

	width  int
	height int
	quit   bool
}

// NewModel builds an editor over store.
func NewModel(store *builder.Store, opts Options) (Model, error) {
	if store == nil {
		return Model{}, fmt.Errorf("editor: store is required")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(render.Options{})
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	input := textinput.New()
	input.Placeholder = "Section title"
	input.CharLimit = 60
	input.Prompt = "Title: "

	m := Model{
		ctx:      opts.Context,
		store:    store,
		renderer: opts.Renderer,
		keys:     keys,
		help:     help.New(),
		input:    input,
		title:    opts.Title,
		feed:     newToastFeed(),
		focus:    PaneCatalog,
		marked:   make(map[string]bool),
		width:    100,
		height:   30,
	}

	if opts.Events != nil {
		sub, err := opts.Events.Subscribe(ports.EventAll, m.feed.handle)
		if err != nil {
			return Model{}, fmt.Errorf("editor: subscribe to store events: %w", err)
		}
		m.subscription = sub
	}
	return m, nil
}

// Init starts listening for toasts.
func (m Model) Init() tea.Cmd {
	return m.feed.wait()
}

// Close stops the toast subscription.
func (m Model) Close() {
	if m.subscription != nil {
		m.subscription.Unsubscribe()
	}
}

// Focus returns the focused pane.
func (m Model) Focus() Pane {
	return m.focus
}

// Mode returns the input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Toast returns the visible toast, if any.
func (m Model) Toast() (ToastMsg, bool) {
	if m.toast == nil {
		return ToastMsg{}, false
	}
	return *m.toast, true
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quit
}

// Marked returns the ids marked for the next section, in form order.
func (m Model) Marked() []string {
	out := make([]string, 0, len(m.marked))
	for _, q := range m.store.Questions() {
		if m.marked[q.ID] {
			out = append(out, q.ID)
		}
	}
	return out
}

func (m Model) templates() []form.QuestionTemplate {
	return m.store.Catalog().Templates()
}

// current returns the question under the form cursor.
func (m Model) current() (form.PlacedQuestion, bool) {
	questions := m.store.Questions()
	if m.formCursor < 0 || m.formCursor >= len(questions) {
		return form.PlacedQuestion{}, false
	}
	return questions[m.formCursor], true
}

// clampCursors keeps both cursors in range after the form changed.
func (m *Model) clampCursors() {
	if n := len(m.templates()); m.catalogCursor >= n {
		m.catalogCursor = n - 1
	}
	if m.catalogCursor < 0 {
		m.catalogCursor = 0
	}
	if n := len(m.store.Questions()); m.formCursor >= n {
		m.formCursor = n - 1
	}
	if m.formCursor < 0 {
		m.formCursor = 0
	}
	for id := range m.marked {
		if _, err := m.store.Question(id); err != nil {
			delete(m.marked, id)
		}
	}
}

func (m Model) previewWidth() int {
	w := m.width - catalogPaneWidth - 4
	if w < minPreviewWidth {
		return minPreviewWidth
	}
	return w
}
