package api

import (
	"log/slog"
	"sync/atomic"
)

// Observer receives callbacks from the wizard controller for logging and
// metrics.
//
// Implementations should be fast and non-blocking; navigation operations
// run synchronously in the caller's turn, so heavy work should be done
// asynchronously.
type Observer interface {
	// OnStepChange is called after a navigation commits, with the indices
	// before and after the move.
	OnStepChange(wizard string, from, to int)

	// OnTransitionRejected is called when a navigation or mutation is
	// rejected. target is the index the caller asked for and reason the
	// first precondition that failed.
	OnTransitionRejected(wizard string, target int, reason RejectReason)

	// OnStepCompleted is called after a step is marked completed.
	OnStepCompleted(wizard string, index int)

	// OnStepIncomplete is called after a step's completed flag is cleared.
	OnStepIncomplete(wizard string, index int)

	// OnProgressPersisted is called after a save, load, or reset touched
	// storage successfully.
	OnProgressPersisted(wizard string, op PersistenceOp, key string)

	// OnPersistenceError is called when a storage interaction fails or a
	// stored snapshot cannot be decoded. The controller swallows the
	// error after reporting it; this callback is the only place it
	// surfaces.
	OnPersistenceError(wizard string, op PersistenceOp, key string, err error)
}

// NoopObserver is an Observer that does nothing. Inject it to silence the
// default logging observer.
type NoopObserver struct{}

func (NoopObserver) OnStepChange(wizard string, from, to int)                          {}
func (NoopObserver) OnTransitionRejected(wizard string, target int, r RejectReason)    {}
func (NoopObserver) OnStepCompleted(wizard string, index int)                          {}
func (NoopObserver) OnStepIncomplete(wizard string, index int)                         {}
func (NoopObserver) OnProgressPersisted(wizard string, op PersistenceOp, key string)   {}
func (NoopObserver) OnPersistenceError(wizard string, op PersistenceOp, key string, err error) {
}

// CompositeObserver fans out events to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards events to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnStepChange(wizard string, from, to int) {
	for _, o := range c.observers {
		o.OnStepChange(wizard, from, to)
	}
}

func (c *CompositeObserver) OnTransitionRejected(wizard string, target int, reason RejectReason) {
	for _, o := range c.observers {
		o.OnTransitionRejected(wizard, target, reason)
	}
}

func (c *CompositeObserver) OnStepCompleted(wizard string, index int) {
	for _, o := range c.observers {
		o.OnStepCompleted(wizard, index)
	}
}

func (c *CompositeObserver) OnStepIncomplete(wizard string, index int) {
	for _, o := range c.observers {
		o.OnStepIncomplete(wizard, index)
	}
}

func (c *CompositeObserver) OnProgressPersisted(wizard string, op PersistenceOp, key string) {
	for _, o := range c.observers {
		o.OnProgressPersisted(wizard, op, key)
	}
}

func (c *CompositeObserver) OnPersistenceError(wizard string, op PersistenceOp, key string, err error) {
	for _, o := range c.observers {
		o.OnPersistenceError(wizard, op, key, err)
	}
}

// LoggingObserver writes structured logs using log/slog.
//
// Navigation events log at Debug, completion changes at Info, and
// persistence failures at Warn: the failures are swallowed by the
// controller, so the log line is their only trace by default.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs navigation and
// persistence events using the provided slog.Logger. If logger is nil,
// slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnStepChange(wizard string, from, to int) {
	o.Logger.Debug("step_change",
		slog.String("wizard", wizard),
		slog.Int("from", from),
		slog.Int("to", to),
	)
}

func (o *LoggingObserver) OnTransitionRejected(wizard string, target int, reason RejectReason) {
	o.Logger.Debug("transition_rejected",
		slog.String("wizard", wizard),
		slog.Int("target", target),
		slog.String("reason", string(reason)),
	)
}

func (o *LoggingObserver) OnStepCompleted(wizard string, index int) {
	o.Logger.Info("step_completed",
		slog.String("wizard", wizard),
		slog.Int("step_index", index),
	)
}

func (o *LoggingObserver) OnStepIncomplete(wizard string, index int) {
	o.Logger.Info("step_incomplete",
		slog.String("wizard", wizard),
		slog.Int("step_index", index),
	)
}

func (o *LoggingObserver) OnProgressPersisted(wizard string, op PersistenceOp, key string) {
	o.Logger.Debug("progress_persisted",
		slog.String("wizard", wizard),
		slog.String("op", string(op)),
		slog.String("key", key),
	)
}

func (o *LoggingObserver) OnPersistenceError(wizard string, op PersistenceOp, key string, err error) {
	o.Logger.Warn("progress_persistence_error",
		slog.String("wizard", wizard),
		slog.String("op", string(op)),
		slog.String("key", key),
		slog.Any("error", err),
	)
}

// BasicMetrics collects simple counters over controller activity. It
// implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	stepChanges         atomic.Int64
	transitionsRejected atomic.Int64
	stepsCompleted      atomic.Int64
	stepsIncomplete     atomic.Int64
	persistenceErrors   atomic.Int64
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	StepChanges         int64
	TransitionsRejected int64
	StepsCompleted      int64
	StepsIncomplete     int64
	PersistenceErrors   int64
}

func (m *BasicMetrics) OnStepChange(wizard string, from, to int) {
	m.stepChanges.Add(1)
}

func (m *BasicMetrics) OnTransitionRejected(wizard string, target int, reason RejectReason) {
	m.transitionsRejected.Add(1)
}

func (m *BasicMetrics) OnStepCompleted(wizard string, index int) {
	m.stepsCompleted.Add(1)
}

func (m *BasicMetrics) OnStepIncomplete(wizard string, index int) {
	m.stepsIncomplete.Add(1)
}

func (m *BasicMetrics) OnPersistenceError(wizard string, op PersistenceOp, key string, err error) {
	m.persistenceErrors.Add(1)
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	return BasicMetricsSnapshot{
		StepChanges:         m.stepChanges.Load(),
		TransitionsRejected: m.transitionsRejected.Load(),
		StepsCompleted:      m.stepsCompleted.Load(),
		StepsIncomplete:     m.stepsIncomplete.Load(),
		PersistenceErrors:   m.persistenceErrors.Load(),
	}
}
