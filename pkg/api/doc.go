// Package api contains the core building blocks used by the passo wizard
// engine. It provides the low-level primitives for describing wizards,
// controlling navigation, validating step input, and observing controller
// behavior.
//
// Most users interact with the higher-level passo package, which re-exports
// selected types and helpers from this package. The api package is intended
// for advanced use cases, custom integrations, or contributors extending the
// engine itself.
//
// # Concepts
//
// The api package centers around a small set of concepts:
//
//   - Wizard definitions and steps
//   - The navigation Controller
//   - Validation rules
//   - Progress storage
//   - Observability
//
// # Wizard Definitions
//
// A wizard definition describes the structure of a wizard: its name and the
// ordered sequence of steps a user walks through. Definitions are supplied by
// the caller and treated as read-only input; the controller never mutates a
// step descriptor.
//
// Each step carries an identifier, display strings, a required flag, and an
// optional list of validation rules.
//
// # Controller
//
// The Controller tracks which step is current, which steps have been
// completed and visited, and which steps may be navigated to. Navigation
// intents (GoNext, GoToStep, and so on) are checked against the current state
// and configuration; a rejected intent returns false and leaves all state
// untouched.
//
// Controllers are synchronous and serve a single session; see the passo
// package for constructors over the available storage backends.
//
// # Validation
//
// Validation rules pair a field name with a Validator function and a default
// error message. EvaluateRules is the pure aggregation function behind
// Controller.ValidateCurrentStep; it never mutates navigation state, so
// callers can run dry-run validation before committing a completion.
//
// # Progress Storage
//
// Storage is a small durable string key-value interface. Controllers mirror
// their navigation state to a Storage under a configurable key, restore from
// it on construction, and treat every storage failure as best-effort: a
// failed read or write is reported to the Observer and navigation carries on.
//
// # Observability
//
// The api package defines the Observer interface, which controllers use to
// report navigation events, rejected transitions, and persistence outcomes.
//
// Observers can be used to:
//
//   - Log navigation and completion transitions
//   - Collect metrics (e.g. rejection counts)
//   - Surface persistence failures that are otherwise swallowed
//
// Ready-made implementations cover structured logging (LoggingObserver),
// in-memory counters (BasicMetrics), fan-out (NewCompositeObserver), and
// silence (NoopObserver).
//
// # Usage
//
// Most applications should start from the passo package, using the
// WizardBuilder and Controller constructors provided there. The api package
// is useful when you need lower-level access, custom composition, or when
// contributing changes to the core engine.
//
// See the passo package documentation and the examples directory for
// end-to-end usage.
package api
