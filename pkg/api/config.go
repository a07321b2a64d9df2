package api

// DefaultProgressKey is the storage key used for persisted progress when
// Config.ProgressKey is left empty.
const DefaultProgressKey = "wizard_progress"

// Config carries the navigation options of a controller. The struct is
// copied at construction; changing it afterwards has no effect on a live
// controller.
//
// Callers should start from DefaultConfig and flip individual fields,
// rather than building a Config from scratch: the zero value disables
// behaviors that default to enabled.
type Config struct {
	// AllowSkipOptionalSteps is reserved for future skip logic. It does
	// not currently alter transition decisions beyond the required-step
	// gating that applies regardless.
	AllowSkipOptionalSteps bool

	// AllowBackNavigation permits transitions to an index below the
	// current step. When false, every backward transition is rejected.
	AllowBackNavigation bool

	// ValidateOnStepChange gates forward transitions on the current step:
	// a required, incomplete current step rejects the move. When false,
	// forward transitions bypass the gate entirely.
	ValidateOnStepChange bool

	// PersistProgress mirrors every committed state change to storage
	// under ProgressKey, and restores from it at construction.
	PersistProgress bool

	// ProgressKey is the storage key for persisted progress. An empty key
	// falls back to DefaultProgressKey.
	ProgressKey string
}

// DefaultConfig returns the documented default options: optional steps may
// be skipped, back navigation is allowed, forward gating is on, and
// persistence is off.
func DefaultConfig() Config {
	return Config{
		AllowSkipOptionalSteps: true,
		AllowBackNavigation:    true,
		ValidateOnStepChange:   true,
		PersistProgress:        false,
		ProgressKey:            DefaultProgressKey,
	}
}
