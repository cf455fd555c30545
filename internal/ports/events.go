package ports

import "context"

const (
	// EventQuestionAdded is emitted when a template is placed on the form.
	EventQuestionAdded = "question.added"
	// EventQuestionRemoved is emitted when a placed question is deleted.
	EventQuestionRemoved = "question.removed"
	// EventQuestionUpdated is emitted when a placed question is replaced.
	EventQuestionUpdated = "question.updated"
	// EventQuestionStyleUpdated is emitted after a question style override merge.
	EventQuestionStyleUpdated = "question.style_updated"
	// EventOptionStyleUpdated is emitted after an option style override merge.
	EventOptionStyleUpdated = "option.style_updated"
	// EventQuestionMoved is emitted when the placed order changes.
	EventQuestionMoved = "question.moved"
	// EventQuestionSelected is emitted whenever the selection pointer is set or cleared.
	EventQuestionSelected = "question.selected"
	// EventGlobalStyleUpdated is emitted after the global style changes.
	EventGlobalStyleUpdated = "global_style.updated"
	// EventSectionCreated is emitted when a section is created.
	EventSectionCreated = "section.created"
	// EventSectionUpdated is emitted when a section is renamed.
	EventSectionUpdated = "section.updated"
	// EventSectionRemoved is emitted when a section is deleted.
	EventSectionRemoved = "section.removed"
	// EventSectionStyleUpdated is emitted after a section style override merge.
	EventSectionStyleUpdated = "section.style_updated"
	// EventSectionQuestionAdded is emitted when a question joins a section.
	EventSectionQuestionAdded = "section.question_added"
	// EventSectionQuestionRemoved is emitted when a question leaves a section.
	EventSectionQuestionRemoved = "section.question_removed"
	// EventSessionOpened is emitted when a form-editing session starts.
	EventSessionOpened = "session.opened"
	// EventSessionClosed is emitted when a form-editing session ends.
	EventSessionClosed = "session.closed"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, toasts, or integrations. Event content is
// advisory and never part of the form state.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Handlers must not call
// back into the store that published the event from the same goroutine.
// Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}

// EventAll subscribes a handler to every event type.
const EventAll = "*"
