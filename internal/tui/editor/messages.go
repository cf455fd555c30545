package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
	"github.com/alexisbeaulieu97/formsmith/internal/render"
)

// Pane identifies which side of the editor has focus.
type Pane int

const (
	PaneCatalog Pane = iota
	PaneForm
)

// Mode determines how key presses are interpreted.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSectionTitle
)

// ToastMsg carries a notification raised by a store event.
type ToastMsg struct {
	Severity render.Severity
	Message  string
	seq      int
}

type clearToastMsg struct {
	seq int
}

// ErrorMsg reports a rejected operation.
type ErrorMsg struct {
	Err error
}

// quiet events change state without deserving a toast.
var quietEvents = map[string]bool{
	ports.EventQuestionSelected: true,
}

// toastFeed turns store events into toasts. Handlers run on the goroutine
// that mutated the store, so delivery to the program never blocks: when the
// feed is full the toast is dropped.
type toastFeed struct {
	ch chan ToastMsg
}

func newToastFeed() *toastFeed {
	return &toastFeed{ch: make(chan ToastMsg, 16)}
}

func (f *toastFeed) handle(_ context.Context, event ports.DomainEvent) error {
	if quietEvents[event.EventType()] {
		return nil
	}
	payload, ok := event.Payload().(map[string]interface{})
	if !ok {
		return nil
	}
	message, _ := payload["message"].(string)
	if message == "" {
		return nil
	}
	severity, _ := payload["severity"].(string)
	select {
	case f.ch <- ToastMsg{Severity: render.Severity(severity), Message: message}:
	default:
	}
	return nil
}

func (f *toastFeed) wait() tea.Cmd {
	return func() tea.Msg {
		return <-f.ch
	}
}
