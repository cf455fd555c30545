// Package builder holds the Form State Store: the public facade a
// presentation layer drives to edit one form.
package builder

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

// maxIDAttempts bounds retries when a generated id is already taken.
const maxIDAttempts = 8

// ErrMissingIDGenerator is returned by NewStore when no generator is supplied.
var ErrMissingIDGenerator = errors.New("builder: id generator is required")

// Options carries the collaborators of a Store. Events and Logger are
// optional.
type Options struct {
	SessionID string
	IDs       ports.IDGenerator
	Events    ports.EventPublisher
	Logger    ports.Logger
}

// Store owns the form of one editing session. Every method is safe for
// concurrent use; mutations are serialised by a single mutex and events are
// published after the lock is released, in mutation order per caller.
type Store struct {
	mu        sync.Mutex
	form      *form.Form
	sessionID string
	ids       ports.IDGenerator
	events    ports.EventPublisher
	logger    ports.Logger
}

// NewStore creates an empty form backed by catalog.
func NewStore(catalog form.Catalog, opts Options) (*Store, error) {
	if opts.IDs == nil {
		return nil, ErrMissingIDGenerator
	}
	logger := opts.Logger
	if logger != nil {
		fields := []interface{}{"layer", "application", "component", "store"}
		if opts.SessionID != "" {
			fields = append(fields, "session_id", opts.SessionID)
		}
		logger = logger.With(fields...)
	}
	return &Store{
		form:      form.New(catalog),
		sessionID: opts.SessionID,
		ids:       opts.IDs,
		events:    opts.Events,
		logger:    logger,
	}, nil
}

// SessionID returns the id of the session the store belongs to.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Catalog returns the templates questions are placed from.
func (s *Store) Catalog() form.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Catalog()
}

// Questions returns the placed questions in order.
func (s *Store) Questions() []form.PlacedQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Questions()
}

// Question returns one placed question.
func (s *Store) Question(id string) (form.PlacedQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Question(id)
}

// Sections returns the sections in creation order.
func (s *Store) Sections() []form.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Sections()
}

// Section returns one section.
func (s *Store) Section(id string) (form.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Section(id)
}

// SectionOf returns the section holding questionID, if any.
func (s *Store) SectionOf(questionID string) (form.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.SectionOf(questionID)
}

// GlobalStyle returns the current global style.
func (s *Store) GlobalStyle() form.GlobalStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.GlobalStyle()
}

// Selected returns the selected question, if any.
func (s *Store) Selected() (form.PlacedQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Selected()
}

// Layout returns the resolved read model of the whole form.
func (s *Store) Layout() form.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Layout()
}

// ResolveEffectiveStyle resolves override against the current global style.
func (s *Store) ResolveEffectiveStyle(category form.Category, override any) (form.EffectiveStyle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.ResolveEffectiveStyle(category, override)
}

// AddQuestionToForm places a copy of tpl at the end of the form under a
// freshly generated id.
func (s *Store) AddQuestionToForm(ctx context.Context, tpl form.QuestionTemplate) (form.PlacedQuestion, error) {
	var placed form.PlacedQuestion
	err := s.mutate(ctx, "add question", func(f *form.Form) (*notification, error) {
		var err error
		placed, err = s.place(f, tpl)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventQuestionAdded, SeveritySuccess, "Question added to form",
			"question_id", placed.ID,
			"template_id", placed.TemplateID,
			"index", f.IndexOf(placed.ID),
		), nil
	}, "template_id", tpl.ID)
	return placed, err
}

// AddQuestionFromCatalog places the catalog template with templateID.
func (s *Store) AddQuestionFromCatalog(ctx context.Context, templateID string) (form.PlacedQuestion, error) {
	s.mu.Lock()
	tpl, err := s.form.Catalog().Get(templateID)
	s.mu.Unlock()
	if err != nil {
		s.warn(ctx, "add question", err, "template_id", templateID)
		return form.PlacedQuestion{}, err
	}
	return s.AddQuestionToForm(ctx, tpl)
}

// RemoveQuestionFromForm deletes a placed question along with its section
// membership and the selection pointing at it.
func (s *Store) RemoveQuestionFromForm(ctx context.Context, id string) error {
	return s.mutate(ctx, "remove question", func(f *form.Form) (*notification, error) {
		sectionID := ""
		if section, ok := f.SectionOf(id); ok {
			sectionID = section.ID
		}
		selected, _ := f.Selected()
		if err := f.RemoveQuestion(id); err != nil {
			return nil, err
		}
		return notify(ports.EventQuestionRemoved, SeverityInfo, "Question removed from form",
			"question_id", id,
			"section_id", sectionID,
			"selection_cleared", selected.ID == id,
		), nil
	}, "question_id", id)
}

// UpdateQuestion replaces a placed question wholesale.
func (s *Store) UpdateQuestion(ctx context.Context, q form.PlacedQuestion) (form.PlacedQuestion, error) {
	var updated form.PlacedQuestion
	err := s.mutate(ctx, "update question", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.UpdateQuestion(q)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventQuestionUpdated, SeveritySuccess, "Question updated",
			"question_id", q.ID,
		), nil
	}, "question_id", q.ID)
	return updated, err
}

// UpdateQuestionStyle merges patch into a question's style override.
func (s *Store) UpdateQuestionStyle(ctx context.Context, id string, patch form.QuestionStyle) (form.PlacedQuestion, error) {
	var updated form.PlacedQuestion
	err := s.mutate(ctx, "update question style", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.UpdateQuestionStyle(id, patch)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventQuestionStyleUpdated, SeveritySuccess, "Question style updated",
			"question_id", id,
		), nil
	}, "question_id", id)
	return updated, err
}

// UpdateOptionStyle merges patch into one option's style override.
func (s *Store) UpdateOptionStyle(ctx context.Context, questionID, optionID string, patch form.OptionStyle) (form.PlacedQuestion, error) {
	var updated form.PlacedQuestion
	err := s.mutate(ctx, "update option style", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.UpdateOptionStyle(questionID, optionID, patch)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventOptionStyleUpdated, SeveritySuccess, "Option style updated",
			"question_id", questionID,
			"option_id", optionID,
		), nil
	}, "question_id", questionID, "option_id", optionID)
	return updated, err
}

// UpdateGlobalStyle merges patch into the global style, one sub-style at a
// time.
func (s *Store) UpdateGlobalStyle(ctx context.Context, patch form.GlobalStyle) (form.GlobalStyle, error) {
	var updated form.GlobalStyle
	err := s.mutate(ctx, "update global style", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.UpdateGlobalStyle(patch)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventGlobalStyleUpdated, SeveritySuccess, "Global style updated",
			"question_style", !patch.Question.IsEmpty(),
			"option_style", !patch.Option.IsEmpty(),
			"section_style", !patch.Section.IsEmpty(),
		), nil
	})
	return updated, err
}

// CreateSection groups questionIDs, in order, under a new section whose style
// starts as a copy of the current global section style.
func (s *Store) CreateSection(ctx context.Context, title string, questionIDs []string) (form.Section, error) {
	var created form.Section
	err := s.mutate(ctx, "create section", func(f *form.Form) (*notification, error) {
		var err error
		for attempt := 0; attempt < maxIDAttempts; attempt++ {
			created, err = f.CreateSection(s.ids.NewID(ports.IDKindSection), title, questionIDs)
			if !form.IsIDTaken(err) {
				break
			}
		}
		if err != nil {
			return nil, err
		}
		return notify(ports.EventSectionCreated, SeveritySuccess, "New section created",
			"section_id", created.ID,
			"title", created.Title,
			"question_ids", append([]string{}, created.QuestionIDs...),
		), nil
	}, "title", title)
	return created, err
}

// AddQuestionToSection moves a question into a section, taking it out of any
// section it belonged to before.
func (s *Store) AddQuestionToSection(ctx context.Context, questionID, sectionID string) (form.Section, error) {
	var updated form.Section
	err := s.mutate(ctx, "add question to section", func(f *form.Form) (*notification, error) {
		previous := ""
		if section, ok := f.SectionOf(questionID); ok {
			previous = section.ID
		}
		var err error
		updated, err = f.AddQuestionToSection(questionID, sectionID)
		if err != nil {
			return nil, err
		}
		if previous == sectionID {
			return nil, nil
		}
		return notify(ports.EventSectionQuestionAdded, SeveritySuccess, "Question added to section",
			"question_id", questionID,
			"section_id", sectionID,
			"previous_section_id", previous,
		), nil
	}, "question_id", questionID, "section_id", sectionID)
	return updated, err
}

// RemoveQuestionFromSection ungroups a question. Ungrouped questions are left
// as they are.
func (s *Store) RemoveQuestionFromSection(ctx context.Context, questionID string) error {
	return s.mutate(ctx, "remove question from section", func(f *form.Form) (*notification, error) {
		sectionID, err := f.RemoveQuestionFromSection(questionID)
		if err != nil || sectionID == "" {
			return nil, err
		}
		return notify(ports.EventSectionQuestionRemoved, SeverityInfo, "Question removed from section",
			"question_id", questionID,
			"section_id", sectionID,
		), nil
	}, "question_id", questionID)
}

// UpdateSectionStyle merges patch into a section's style override.
func (s *Store) UpdateSectionStyle(ctx context.Context, sectionID string, patch form.SectionStyle) (form.Section, error) {
	var updated form.Section
	err := s.mutate(ctx, "update section style", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.UpdateSectionStyle(sectionID, patch)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventSectionStyleUpdated, SeveritySuccess, "Section style updated",
			"section_id", sectionID,
		), nil
	}, "section_id", sectionID)
	return updated, err
}

// RenameSection changes a section title.
func (s *Store) RenameSection(ctx context.Context, sectionID, title string) (form.Section, error) {
	var updated form.Section
	err := s.mutate(ctx, "rename section", func(f *form.Form) (*notification, error) {
		var err error
		updated, err = f.RenameSection(sectionID, title)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventSectionUpdated, SeveritySuccess, "Section renamed",
			"section_id", sectionID,
			"title", title,
		), nil
	}, "section_id", sectionID)
	return updated, err
}

// RemoveSection deletes a section; its questions stay on the form.
func (s *Store) RemoveSection(ctx context.Context, sectionID string) error {
	return s.mutate(ctx, "remove section", func(f *form.Form) (*notification, error) {
		removed, err := f.RemoveSection(sectionID)
		if err != nil {
			return nil, err
		}
		return notify(ports.EventSectionRemoved, SeverityInfo, "Section removed",
			"section_id", sectionID,
			"question_ids", removed.QuestionIDs,
		), nil
	}, "section_id", sectionID)
}

// SelectQuestion points the selection at id. An empty or unknown id clears
// it. It reports whether a question is selected afterwards.
func (s *Store) SelectQuestion(ctx context.Context, id string) bool {
	var selected bool
	_ = s.mutate(ctx, "select question", func(f *form.Form) (*notification, error) {
		previous, _ := f.Selected()
		selected = f.SelectQuestion(id)
		current := ""
		if selected {
			current = id
		}
		if previous.ID == current {
			return nil, nil
		}
		return notify(ports.EventQuestionSelected, SeverityInfo, "Selection changed",
			"question_id", current,
			"previous_question_id", previous.ID,
		), nil
	}, "question_id", id)
	return selected
}

// MoveQuestion moves the question at from to position to.
func (s *Store) MoveQuestion(ctx context.Context, from, to int) error {
	return s.mutate(ctx, "move question", func(f *form.Form) (*notification, error) {
		if err := f.MoveQuestion(from, to); err != nil {
			return nil, err
		}
		if from == to {
			return nil, nil
		}
		moved := f.Questions()[to]
		return notify(ports.EventQuestionMoved, SeverityInfo, "Question moved",
			"question_id", moved.ID,
			"from", from,
			"to", to,
		), nil
	}, "from", from, "to", to)
}

// mutate runs fn under the store lock, logs the outcome and publishes the
// returned notification once the lock is released.
func (s *Store) mutate(ctx context.Context, op string, fn func(f *form.Form) (*notification, error), fields ...interface{}) error {
	s.mu.Lock()
	n, err := fn(s.form)
	s.mu.Unlock()

	if err != nil {
		s.warn(ctx, op, err, fields...)
		return err
	}
	if s.logger != nil {
		s.logger.Debug(ctx, op, fields...)
	}
	if n != nil {
		if s.sessionID != "" {
			n.payload["session_id"] = s.sessionID
		}
		publishEvent(ctx, s.events, s.logger, n.eventType, n.payload)
	}
	return nil
}

func (s *Store) warn(ctx context.Context, op string, err error, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	payload := append([]interface{}{"operation", op, "code", string(form.CodeOf(err)), "error", err}, fields...)
	s.logger.Warn(ctx, "mutation rejected", payload...)
}

func (s *Store) place(f *form.Form, tpl form.QuestionTemplate) (form.PlacedQuestion, error) {
	var (
		placed form.PlacedQuestion
		err    error
	)
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		placed, err = f.AddQuestion(s.ids.NewID(ports.IDKindQuestion), tpl)
		if !form.IsIDTaken(err) {
			break
		}
	}
	return placed, err
}
