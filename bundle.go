package passo

import (
	"database/sql"

	sessionpkg "github.com/petrijr/passo/pkg/session"
)

// SessionBundle wires together a durable Storage and a session Manager
// serving wizard sessions over it.
//
// For now, we only provide a SQLite-backed bundle.
type SessionBundle struct {
	Manager *sessionpkg.Manager

	// storage is kept unexported for now; it is primarily useful for
	// internal inspection and tests. The public API focuses on Manager.
	storage Storage
}

// NewSQLiteBundle constructs a durable Storage + Manager combo over the
// provided *sql.DB. Every session persists its progress in the same
// SQLite database, so sessions survive process restarts and can be
// resumed by ID.
//
// Typical usage:
//
//	db, _ := sql.Open("sqlite", "file:passo.db?_journal=WAL")
//	bundle, err := passo.NewSQLiteBundle(db, wizard.Definition(), passo.DefaultConfig())
//	id, ctrl := bundle.Manager.Create()
//	// drive ctrl; later, bundle.Manager.Resume(id)
func NewSQLiteBundle(db *sql.DB, def WizardDefinition, cfg Config) (*SessionBundle, error) {
	store, err := NewSQLiteStorage(db)
	if err != nil {
		return nil, err
	}

	return &SessionBundle{
		Manager: sessionpkg.NewManager(def, cfg, store),
		storage: store,
	}, nil
}
