package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/formsmith/internal/infrastructure/ids"
	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

type collected struct {
	mu    sync.Mutex
	types []string
}

func (c *collected) handle(_ context.Context, event ports.DomainEvent) error {
	c.mu.Lock()
	c.types = append(c.types, event.EventType())
	c.mu.Unlock()
	return nil
}

func (c *collected) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.types...)
}

func newTestManager(t *testing.T) (*Manager, *collected) {
	t.Helper()
	publisher := events.NewLoggingPublisher(nil)
	seen := &collected{}
	_, err := publisher.Subscribe(ports.EventSessionOpened, seen.handle)
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventSessionClosed, seen.handle)
	require.NoError(t, err)
	return NewManager(ids.NewSequenceGenerator(), publisher, nil), seen
}

func TestOpenAndCloseSession(t *testing.T) {
	mgr, seen := newTestManager(t)
	ctx := context.Background()

	store, err := mgr.Open(ctx, form.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, "session1", store.SessionID())
	assert.Empty(t, store.Questions())

	got, err := mgr.Get(store.SessionID())
	require.NoError(t, err)
	assert.Same(t, store, got)
	assert.Equal(t, []string{"session1"}, mgr.Sessions())

	require.NoError(t, mgr.Close(ctx, store.SessionID()))
	assert.Empty(t, mgr.Sessions())
	assert.Equal(t, []string{ports.EventSessionOpened, ports.EventSessionClosed}, seen.snapshot())

	_, err = mgr.Get(store.SessionID())
	assert.True(t, form.IsNotFound(err))
	assert.True(t, form.IsNotFound(mgr.Close(ctx, store.SessionID())))
}

func TestSessionsAreIsolated(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	first, err := mgr.Open(ctx, form.DefaultCatalog())
	require.NoError(t, err)
	second, err := mgr.Open(ctx, form.DefaultCatalog())
	require.NoError(t, err)
	require.NotEqual(t, first.SessionID(), second.SessionID())

	_, err = first.AddQuestionFromCatalog(ctx, "q1")
	require.NoError(t, err)
	_, err = first.UpdateGlobalStyle(ctx, form.GlobalStyle{Question: form.TextStyle{FontColor: form.String("#ff0000")}})
	require.NoError(t, err)

	assert.Len(t, first.Questions(), 1)
	assert.Empty(t, second.Questions())
	assert.Equal(t, "#333333", *second.GlobalStyle().Question.FontColor)
	assert.Equal(t, []string{"session1", "session2"}, mgr.Sessions())
}

func TestOpenWithoutIDGenerator(t *testing.T) {
	mgr := NewManager(nil, nil, nil)
	_, err := mgr.Open(context.Background(), form.DefaultCatalog())
	require.Error(t, err)
}

type stuckIDs struct{}

func (stuckIDs) NewID(ports.IDKind) string { return "same" }

func TestOpenGivesUpOnRepeatedSessionIDs(t *testing.T) {
	mgr := NewManager(stuckIDs{}, nil, nil)
	ctx := context.Background()

	_, err := mgr.Open(ctx, form.DefaultCatalog())
	require.NoError(t, err)
	_, err = mgr.Open(ctx, form.DefaultCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taken ids")
	assert.Len(t, mgr.Sessions(), 1)
}

func TestConcurrentOpen(t *testing.T) {
	mgr := NewManager(ids.NewUUIDGenerator(), nil, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store, err := mgr.Open(ctx, form.DefaultCatalog())
			if assert.NoError(t, err) {
				_, err = store.AddQuestionFromCatalog(ctx, "q2")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, mgr.Sessions(), 20)
}
