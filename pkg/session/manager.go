package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/petrijr/passo/internal/engine"
	"github.com/petrijr/passo/pkg/api"
)

// Manager is a concurrency-safe registry of wizard controllers keyed by
// session ID. All sessions run the same wizard definition and share one
// Storage; each persists under its own derived key.
type Manager struct {
	def      api.WizardDefinition
	opts     api.Config
	storage  api.Storage
	observer api.Observer

	mu       sync.RWMutex
	sessions map[string]api.Controller
}

// NewManager creates a Manager over the given definition and shared
// store. Persistence is always on for managed sessions; opts.ProgressKey
// (or api.DefaultProgressKey when empty) becomes the prefix of every
// per-session key.
func NewManager(def api.WizardDefinition, opts api.Config, store api.Storage) *Manager {
	return NewManagerWithObserver(def, opts, store, nil)
}

// NewManagerWithObserver creates a Manager whose controllers report to
// the given Observer.
func NewManagerWithObserver(def api.WizardDefinition, opts api.Config, store api.Storage, obs api.Observer) *Manager {
	opts.PersistProgress = true
	if opts.ProgressKey == "" {
		opts.ProgressKey = api.DefaultProgressKey
	}

	return &Manager{
		def:      def,
		opts:     opts,
		storage:  store,
		observer: obs,
		sessions: make(map[string]api.Controller),
	}
}

// progressKey derives the storage key of a session from the configured
// prefix, e.g. "wizard_progress:3f1c...".
func (m *Manager) progressKey(id string) string {
	return m.opts.ProgressKey + ":" + id
}

func (m *Manager) newController(id string) api.Controller {
	opts := m.opts
	opts.ProgressKey = m.progressKey(id)

	return engine.NewControllerWithConfig(engine.Config{
		Definition: m.def,
		Options:    opts,
		Storage:    m.storage,
		Observer:   m.observer,
	})
}

// Create starts a new session: it mints an ID, builds a controller
// persisting under the derived key, registers it, and returns both.
func (m *Manager) Create() (string, api.Controller) {
	id := uuid.NewString()
	ctrl := m.newController(id)

	m.mu.Lock()
	m.sessions[id] = ctrl
	m.mu.Unlock()

	return id, ctrl
}

// Get returns the live controller of a session, if the session is
// currently registered in this Manager.
func (m *Manager) Get(id string) (api.Controller, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ctrl, ok := m.sessions[id]
	return ctrl, ok
}

// Resume rebuilds a session from its persisted progress. If the session
// is already live, the registered controller is returned as-is. A
// session with no stored progress cannot be resumed; use Create for new
// sessions.
func (m *Manager) Resume(id string) (api.Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctrl, ok := m.sessions[id]; ok {
		return ctrl, true
	}

	if _, err := m.storage.Get(m.progressKey(id)); err != nil {
		if errors.Is(err, api.ErrKeyNotFound) {
			return nil, false
		}
		// The store is unreachable; a fresh controller would silently
		// restart the wizard from step 0, so refuse instead.
		return nil, false
	}

	ctrl := m.newController(id)
	m.sessions[id] = ctrl
	return ctrl, true
}

// End removes a session from the registry. With discard set, its
// persisted progress is deleted as well; otherwise the stored snapshot
// stays and the session can be resumed later. It reports whether the
// session was registered.
func (m *Manager) End(id string, discard bool) bool {
	m.mu.Lock()
	ctrl, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	if discard {
		ctrl.ResetProgress()
	}
	return true
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// IDs returns the IDs of all live sessions, sorted for determinism.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
