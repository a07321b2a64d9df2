package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/passo/internal/persistence"
	"github.com/petrijr/passo/pkg/api"
)

func importWizard() api.WizardDefinition {
	return api.WizardDefinition{
		Name: "sede-import",
		Steps: []api.Step{
			{ID: "upload", Title: "Upload file", Required: true},
			{ID: "review", Title: "Review rows", Required: true},
			{ID: "confirm", Title: "Confirm import", Required: true},
		},
	}
}

func newTestManager(t *testing.T) (*Manager, *persistence.MemoryStorage) {
	t.Helper()

	store := persistence.NewMemoryStorage()
	m := NewManagerWithObserver(importWizard(), api.DefaultConfig(), store, api.NoopObserver{})
	return m, store
}

func TestManagerCreateAndGet(t *testing.T) {
	m, _ := newTestManager(t)

	id, ctrl := m.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, ctrl)
	require.Equal(t, 1, m.Len())
	require.Equal(t, []string{id}, m.IDs())

	got, ok := m.Get(id)
	require.True(t, ok)
	require.Same(t, ctrl, got)

	_, ok = m.Get("unknown")
	require.False(t, ok)
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	m, store := newTestManager(t)

	idA, ctrlA := m.Create()
	idB, ctrlB := m.Create()
	require.NotEqual(t, idA, idB)

	require.True(t, ctrlA.MarkStepCompleted(0))
	require.True(t, ctrlA.GoNext())

	require.Equal(t, 1, ctrlA.CurrentStep())
	require.Equal(t, 0, ctrlB.CurrentStep())
	require.False(t, ctrlB.IsStepCompleted(0))

	// Each session persists under its own derived key.
	_, err := store.Get("wizard_progress:" + idA)
	require.NoError(t, err)
	_, err = store.Get("wizard_progress:" + idB)
	require.ErrorIs(t, err, api.ErrKeyNotFound, "session B has not mutated anything yet")
}

func TestManagerResumeRestoresProgress(t *testing.T) {
	m, _ := newTestManager(t)

	id, ctrl := m.Create()
	require.True(t, ctrl.MarkStepCompleted(0))
	require.True(t, ctrl.GoNext())

	// End without discarding; the snapshot stays in the shared store.
	require.True(t, m.End(id, false))
	require.Equal(t, 0, m.Len())
	_, ok := m.Get(id)
	require.False(t, ok)

	resumed, ok := m.Resume(id)
	require.True(t, ok)
	require.Equal(t, 1, resumed.CurrentStep())
	require.True(t, resumed.IsStepCompleted(0))
	require.Equal(t, 1, m.Len())

	// Resuming a live session returns the registered controller.
	again, ok := m.Resume(id)
	require.True(t, ok)
	require.Same(t, resumed, again)
}

func TestManagerResumeUnknownSession(t *testing.T) {
	m, _ := newTestManager(t)

	ctrl, ok := m.Resume("66b7e7c2-0000-0000-0000-000000000000")
	require.False(t, ok)
	require.Nil(t, ctrl)
}

func TestManagerEndWithDiscard(t *testing.T) {
	m, store := newTestManager(t)

	id, ctrl := m.Create()
	require.True(t, ctrl.MarkStepCompleted(0))

	require.True(t, m.End(id, true))

	_, err := store.Get("wizard_progress:" + id)
	require.ErrorIs(t, err, api.ErrKeyNotFound, "discard must delete the stored snapshot")

	_, ok := m.Resume(id)
	require.False(t, ok, "a discarded session cannot be resumed")

	require.False(t, m.End(id, true), "ending an unknown session reports false")
}

func TestManagerConcurrentCreate(t *testing.T) {
	m, _ := newTestManager(t)

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ctrl := m.Create()
			// Each goroutine drives only its own controller.
			ctrl.MarkStepCompleted(0)
		}()
	}
	wg.Wait()

	require.Equal(t, 24, m.Len())
	require.Len(t, m.IDs(), 24)
}

func TestManagerDerivesKeyFromConfiguredPrefix(t *testing.T) {
	store := persistence.NewMemoryStorage()
	opts := api.DefaultConfig()
	opts.ProgressKey = "import_progress"

	m := NewManagerWithObserver(importWizard(), opts, store, api.NoopObserver{})
	id, ctrl := m.Create()
	require.True(t, ctrl.MarkStepCompleted(0))

	_, err := store.Get("import_progress:" + id)
	require.NoError(t, err)
}
