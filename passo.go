package passo

import (
	"database/sql"

	"github.com/redis/go-redis/v9"

	"github.com/petrijr/passo/internal/engine"
	"github.com/petrijr/passo/internal/persistence"
	"github.com/petrijr/passo/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Controller           = api.Controller
	WizardDefinition     = api.WizardDefinition
	Step                 = api.Step
	StepView             = api.StepView
	Config               = api.Config
	Validator            = api.Validator
	ValidationRule       = api.ValidationRule
	ValidationResult     = api.ValidationResult
	Storage              = api.Storage
	RejectReason         = api.RejectReason
	PersistenceOp        = api.PersistenceOp
	Observer             = api.Observer
	LoggingObserver      = api.LoggingObserver
	BasicMetrics         = api.BasicMetrics
	BasicMetricsSnapshot = api.BasicMetricsSnapshot
	CompositeObserver    = api.CompositeObserver
	NoopObserver         = api.NoopObserver
)

// Re-export common helpers.

var (
	DefaultConfig        = api.DefaultConfig
	EvaluateRules        = api.EvaluateRules
	NewLoggingObserver   = api.NewLoggingObserver
	NewCompositeObserver = api.NewCompositeObserver
	ErrKeyNotFound       = api.ErrKeyNotFound
)

// Re-export reject reasons and persistence operations for convenience.

const (
	RejectOutOfRange             = api.RejectOutOfRange
	RejectNotAccessible          = api.RejectNotAccessible
	RejectBackNavigationDisabled = api.RejectBackNavigationDisabled
	RejectRequiredIncomplete     = api.RejectRequiredIncomplete

	PersistenceSave  = api.PersistenceSave
	PersistenceLoad  = api.PersistenceLoad
	PersistenceReset = api.PersistenceReset

	DefaultProgressKey = api.DefaultProgressKey
)

// Controller constructors
// These wrap the internal/engine package so external callers
// never need to import internal packages.

// NewController returns a Controller over def with the default
// configuration and an in-memory store.
func NewController(def WizardDefinition) Controller {
	return engine.NewMemoryController(def, api.DefaultConfig())
}

// NewControllerWithConfig returns an in-memory Controller with the given
// configuration.
func NewControllerWithConfig(def WizardDefinition, cfg Config) Controller {
	return engine.NewMemoryController(def, cfg)
}

// NewControllerWithStorage returns a Controller persisting progress to the
// given Storage. Any store satisfying the api.Storage contract works,
// including caller implementations.
func NewControllerWithStorage(def WizardDefinition, cfg Config, store Storage) Controller {
	return engine.NewControllerWithConfig(engine.Config{
		Definition: def,
		Options:    cfg,
		Storage:    store,
	})
}

// NewControllerWithObserver returns a Controller over the given Storage
// reporting to the given Observer. A nil store falls back to an in-memory
// store, a nil observer to structured logging via slog.Default().
func NewControllerWithObserver(def WizardDefinition, cfg Config, store Storage, obs Observer) Controller {
	return engine.NewControllerWithConfig(engine.Config{
		Definition: def,
		Options:    cfg,
		Storage:    store,
		Observer:   obs,
	})
}

// NewFileController returns a Controller that persists progress as one
// JSON document per key under dir.
func NewFileController(def WizardDefinition, cfg Config, dir string) (Controller, error) {
	return engine.NewFileController(def, cfg, dir)
}

// NewFileControllerWithObserver returns a file-backed Controller with the
// given Observer.
func NewFileControllerWithObserver(def WizardDefinition, cfg Config, dir string, obs Observer) (Controller, error) {
	return engine.NewFileControllerWithObserver(def, cfg, dir, obs)
}

// NewSQLiteController returns a Controller that persists progress in a
// SQLite database.
func NewSQLiteController(def WizardDefinition, cfg Config, db *sql.DB) (Controller, error) {
	return engine.NewSQLiteController(def, cfg, db)
}

// NewSQLiteControllerWithObserver returns a SQLite-backed Controller with
// the given Observer.
func NewSQLiteControllerWithObserver(def WizardDefinition, cfg Config, db *sql.DB, obs Observer) (Controller, error) {
	return engine.NewSQLiteControllerWithObserver(def, cfg, db, obs)
}

// NewPostgresController returns a Controller that persists progress in
// PostgreSQL.
func NewPostgresController(def WizardDefinition, cfg Config, db *sql.DB) (Controller, error) {
	return engine.NewPostgresController(def, cfg, db)
}

// NewPostgresControllerWithObserver returns a Postgres-backed Controller
// with the given Observer.
func NewPostgresControllerWithObserver(def WizardDefinition, cfg Config, db *sql.DB, obs Observer) (Controller, error) {
	return engine.NewPostgresControllerWithObserver(def, cfg, db, obs)
}

// NewRedisController returns a Controller that persists progress in Redis.
func NewRedisController(def WizardDefinition, cfg Config, client *redis.Client) Controller {
	return engine.NewRedisController(def, cfg, client)
}

// NewRedisControllerWithObserver returns a Redis-backed Controller with
// the given Observer.
func NewRedisControllerWithObserver(def WizardDefinition, cfg Config, client *redis.Client, obs Observer) Controller {
	return engine.NewRedisControllerWithObserver(def, cfg, client, obs)
}

// Storage constructors
// Exposed so callers can share one store between several controllers,
// for example through a session.Manager.

// NewMemoryStorage returns a goroutine-safe in-memory Storage.
func NewMemoryStorage() Storage {
	return persistence.NewMemoryStorage()
}

// NewFileStorage returns a Storage keeping one JSON document per key
// under dir, creating the directory if needed.
func NewFileStorage(dir string) (Storage, error) {
	return persistence.NewFileStorage(dir)
}

// NewSQLiteStorage returns a Storage backed by a SQLite table, creating
// the schema if needed. The caller imports the driver, e.g.:
//
//	import _ "modernc.org/sqlite"
func NewSQLiteStorage(db *sql.DB) (Storage, error) {
	return persistence.NewSQLiteStorage(db)
}

// NewPostgresStorage returns a Storage backed by a PostgreSQL table,
// creating the schema if needed.
func NewPostgresStorage(db *sql.DB) (Storage, error) {
	return persistence.NewPostgresStorage(db)
}

// NewRedisStorage returns a Storage backed by Redis. prefix namespaces
// the keys; when empty, "passo:" is used.
func NewRedisStorage(client *redis.Client, prefix string) Storage {
	return persistence.NewRedisStorage(client, prefix)
}
