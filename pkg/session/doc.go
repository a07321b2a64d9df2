// Package session manages wizard controllers for multiple concurrent
// sessions over one shared progress store.
//
// A Controller serves exactly one session and keeps no identity of its
// own; the Manager supplies that identity. It mints a session ID per
// wizard run, derives a per-session progress key from it, and hands out
// the controller bound to that key. Because every controller writes to
// the same Storage under its own key, a session can be resumed later —
// in the same process or after a restart — from the ID alone.
//
// The Manager holds the only lock: controllers stay single-writer, and
// callers must not drive one session's controller from two goroutines.
package session
