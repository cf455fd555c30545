// Package session manages form-editing sessions: one Store per session, each
// guarded by its own lock, plus recipe replay into a fresh session.
package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/formsmith/internal/application/builder"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/domain/recipe"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

// Manager owns the open sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*builder.Store
	ids      ports.IDGenerator
	events   ports.EventPublisher
	logger   ports.Logger
}

// NewManager constructs a Manager. ids must not be nil; events and logger are
// optional.
func NewManager(ids ports.IDGenerator, events ports.EventPublisher, logger ports.Logger) *Manager {
	if logger != nil {
		logger = logger.With("layer", "application", "component", "session_manager")
	}
	return &Manager{
		sessions: make(map[string]*builder.Store),
		ids:      ids,
		events:   events,
		logger:   logger,
	}
}

// Open starts a session with an empty form backed by catalog.
func (m *Manager) Open(ctx context.Context, catalog form.Catalog) (*builder.Store, error) {
	if m.ids == nil {
		return nil, builder.ErrMissingIDGenerator
	}

	m.mu.Lock()
	id := m.ids.NewID(ports.IDKindSession)
	for attempts := 1; m.sessions[id] != nil; attempts++ {
		if attempts >= 8 {
			m.mu.Unlock()
			return nil, fmt.Errorf("open session: id generator keeps returning taken ids")
		}
		id = m.ids.NewID(ports.IDKindSession)
	}
	store, err := builder.NewStore(catalog, builder.Options{
		SessionID: id,
		IDs:       m.ids,
		Events:    m.events,
		Logger:    m.logger,
	})
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.sessions[id] = store
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Info(ctx, "session opened", "session_id", id, "templates", catalog.Len())
	}
	publishEvent(ctx, m.events, m.logger, ports.EventSessionOpened, map[string]interface{}{
		"session_id": id,
		"templates":  catalog.Len(),
	})
	return store, nil
}

// OpenFromRecipe starts a session and replays r into it. On failure the
// session is closed again and the error names the failing recipe step.
func (m *Manager) OpenFromRecipe(ctx context.Context, catalog form.Catalog, r *recipe.Recipe) (*builder.Store, Placements, error) {
	store, err := m.Open(ctx, catalog)
	if err != nil {
		return nil, nil, err
	}
	placements, err := ApplyRecipe(ctx, store, r)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn(ctx, "recipe replay failed", "session_id", store.SessionID(), "error", err)
		}
		_ = m.Close(ctx, store.SessionID())
		return nil, nil, err
	}
	return store, placements, nil
}

// Get returns the store of an open session.
func (m *Manager) Get(id string) (*builder.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	store, ok := m.sessions[id]
	if !ok {
		return nil, sessionNotFound(id)
	}
	return store, nil
}

// Close ends a session and forgets its state.
func (m *Manager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	store, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return sessionNotFound(id)
	}
	if m.logger != nil {
		m.logger.Info(ctx, "session closed", "session_id", id, "questions", len(store.Questions()))
	}
	publishEvent(ctx, m.events, m.logger, ports.EventSessionClosed, map[string]interface{}{
		"session_id": id,
	})
	return nil
}

// Sessions returns the ids of the open sessions, sorted.
func (m *Manager) Sessions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sessionNotFound(id string) *form.DomainError {
	return &form.DomainError{
		Code:    form.ErrCodeNotFound,
		Message: "session not found",
		Context: map[string]interface{}{"session_id": id},
	}
}
