package api

// RejectReason identifies the first precondition that failed for a
// rejected navigation or mutation.
type RejectReason string

const (
	// RejectOutOfRange: the target index lies outside the step registry.
	RejectOutOfRange RejectReason = "out_of_range"

	// RejectNotAccessible: the target step has not been made accessible.
	RejectNotAccessible RejectReason = "not_accessible"

	// RejectBackNavigationDisabled: the move is backward and
	// Config.AllowBackNavigation is off.
	RejectBackNavigationDisabled RejectReason = "back_navigation_disabled"

	// RejectRequiredIncomplete: the move is forward and the current step
	// is required but not completed.
	RejectRequiredIncomplete RejectReason = "required_step_incomplete"
)

// PersistenceOp identifies which storage interaction an observer callback
// refers to.
type PersistenceOp string

const (
	PersistenceSave  PersistenceOp = "save"
	PersistenceLoad  PersistenceOp = "load"
	PersistenceReset PersistenceOp = "reset"
)
