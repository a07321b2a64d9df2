// Package passo provides a lightweight, embeddable wizard navigation
// engine for Go.
//
// Passo is designed for applications that walk users through multi-step
// flows — onboarding, bulk imports, guided configuration — and need the
// step sequencing, gating, and progress rules to live somewhere testable
// instead of scattered across handlers. It runs fully in Go, supports
// multiple persistence backends, and integrates cleanly into existing
// codebases.
//
// # Core Concepts
//
// The passo programming model is intentionally small and idiomatic:
//
//  1. Controller
//  2. WizardBuilder
//  3. Validation rules
//  4. Storage
//  5. Session Manager
//
// These components form a complete wizard system with deterministic
// navigation, durable progress (when using persistent backends), and a
// clear mental model.
//
// # Controller
//
// The Controller is the navigation state machine. It tracks the current
// step, completed and visited steps, and per-step accessibility, and
// decides whether each navigation intent is permitted:
//
//   - forward moves are gated on the current step being satisfied
//     (optional, or required and completed)
//   - backward moves honor the back-navigation switch
//   - a step becomes reachable when its predecessor is completed
//
// Every navigation operation and mutator returns a boolean: true commits
// the change, false rejects it with no state touched. Rejection is a
// normal outcome for the caller to present, not an error.
//
// Controllers can persist progress in different storage systems:
//
//   - In-memory (non-durable, best for tests)
//   - Files (one JSON document per key)
//   - SQLite (embedded durability)
//   - Postgres
//   - Redis
//
// Persistence is best-effort: a failing store degrades durability but
// never blocks navigation. Failures surface through the Observer, which
// logs them via log/slog by default.
//
// # WizardBuilder
//
// WizardBuilder provides the ergonomic, declarative API used to define
// wizards:
//
//	passo.New("ProviderOnboarding").
//	    RequiredStep("organization", "Organization data").
//	    Rule("name", passo.NonEmpty(), "Organization name is required").
//	    RequiredStep("branches", "Branch offices").
//	    Step("review", "Review")
//
// Definitions can also be loaded from YAML or JSON documents via the
// pkg/definition package.
//
// # Validation rules
//
// A rule binds a field to a Validator and a default message. Validators
// are plain functions over the submitted data; the rules helpers
// (NonEmpty, Matches, Tag, and friends) cover the common cases, and
// Tag adapts the full go-playground/validator expression set.
// ValidateCurrentStep aggregates failures without mutating navigation
// state, so validation stays a dry-run until the caller commits a
// completion.
//
// # Storage
//
// Storage is a three-method durable key-value contract (Get, Set,
// Delete). The shipped backends satisfy it, and so can any caller
// implementation; the controller never touches ambient globals.
//
// # Session Manager
//
// pkg/session serves multiple concurrent wizard sessions over one shared
// Storage. The Manager mints session IDs, derives a per-session progress
// key from each, and resumes sessions from the stored snapshot — in the
// same process or after a restart. NewSQLiteBundle wires a Manager and a
// SQLite store over one database handle.
//
// # Summary
//
// Passo's goal is to give Go developers a wizard engine that feels like
// Go: easy to embed, easy to test, deterministic, and without
// operational overhead. Controllers decide navigation, WizardBuilder
// defines flows, rules validate step input, Storage keeps progress
// durable, and the session Manager serves many users at once.
//
// For examples, see the /examples directory or the project README.
package passo
