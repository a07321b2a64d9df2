package api

// Step describes one stage of a wizard. Steps are caller-supplied and
// read-only to the controller; all mutable per-step state lives inside the
// controller itself.
type Step struct {
	// ID identifies the step in persisted progress and lookups. IDs should
	// be unique within a wizard by convention; with duplicates, lookups and
	// snapshot restores match the first occurrence in step order.
	ID string

	// Title and Description are display strings, opaque to the engine.
	Title       string
	Description string

	// Required marks a step that blocks forward navigation until it has
	// been marked completed (subject to Config.ValidateOnStepChange).
	Required bool

	// Rules are evaluated in order by Controller.ValidateCurrentStep.
	Rules []ValidationRule
}

// WizardDefinition describes a wizard as an ordered sequence of steps.
type WizardDefinition struct {
	Name  string
	Steps []Step
}

// StepView combines a step descriptor with its live navigation flags.
type StepView struct {
	Step

	// Completed reports whether the step has been marked completed.
	Completed bool

	// Accessible reports whether the step may currently be navigated to.
	Accessible bool
}

// Controller is the wizard navigation state machine.
//
// A controller serves exactly one session and is not safe for concurrent
// use; callers must finish one operation before starting the next. All
// operations are synchronous and return immediately.
//
// Navigation operations and mutators return a boolean: true commits the
// change, false rejects it and leaves every piece of state untouched.
// Rejection is a normal outcome (an inaccessible step, back navigation
// disabled, an incomplete required step, an out-of-range index), not an
// error; callers decide how to present it.
type Controller interface {
	// CurrentStep returns the index of the current step. It is 0 for an
	// empty wizard.
	CurrentStep() int

	// TotalSteps returns the number of steps in the wizard.
	TotalSteps() int

	// Steps returns a snapshot of every step with its live flags, in step
	// order.
	Steps() []StepView

	// CompletedSteps returns the indices of completed steps, sorted
	// ascending.
	CompletedSteps() []int

	// VisitedSteps returns the indices of steps that have been current at
	// some point, sorted ascending. It always contains 0.
	VisitedSteps() []int

	// CanGoNext reports whether GoNext would currently succeed.
	CanGoNext() bool

	// CanGoPrevious reports whether GoPrevious would currently succeed.
	CanGoPrevious() bool

	// IsFirstStep reports whether the current step is index 0.
	IsFirstStep() bool

	// IsLastStep reports whether the current step is the final step. It is
	// false for an empty wizard.
	IsLastStep() bool

	// ProgressPercentage returns the share of completed steps, rounded to
	// the nearest whole percent. It is 0 for an empty wizard.
	ProgressPercentage() int

	// GoToStep navigates to the step at index. The preconditions are
	// checked in order, rejecting on the first failure: index in range,
	// target accessible, back navigation permitted for backward moves, and
	// the current step satisfied for forward moves (required steps must be
	// completed) when Config.ValidateOnStepChange is set.
	GoToStep(index int) bool

	// GoNext navigates to the following step. The forward gate on the
	// current step is checked both here and inside the delegated GoToStep;
	// a transition must pass both.
	GoNext() bool

	// GoPrevious navigates to the preceding step. Moving backward never
	// requires the current step to be completed.
	GoPrevious() bool

	// GoFirst navigates to step 0.
	GoFirst() bool

	// GoLast navigates to the highest accessible step.
	GoLast() bool

	// MarkStepCompleted marks the step at index completed and grants
	// accessibility to the step after it. This is the only automatic
	// accessibility grant; accessibility is never revoked automatically.
	// Marking an already-completed step again is a no-op that reports
	// success.
	MarkStepCompleted(index int) bool

	// MarkStepIncomplete clears the completed flag of the step at index.
	// Accessibility already granted downstream is left in place.
	MarkStepIncomplete(index int) bool

	// UpdateStepAccessibility overrides the accessibility flag of the step
	// at index, with no side effects on other steps.
	UpdateStepAccessibility(index int, accessible bool) bool

	// ValidateCurrentStep evaluates the current step's rules against data.
	// It is read-only: completing a step after successful validation is the
	// caller's call, which keeps dry-run validation possible. A step
	// without rules is always valid, as is the empty wizard.
	ValidateCurrentStep(data map[string]any) ValidationResult

	// StepByIndex returns the step at index with its live flags.
	StepByIndex(index int) (StepView, bool)

	// StepByID returns the first step whose ID matches id.
	StepByID(id string) (StepView, bool)

	// IsStepCompleted reports the completed flag of the step at index, or
	// false when index is out of range.
	IsStepCompleted(index int) bool

	// IsStepAccessible reports the accessibility flag of the step at
	// index, or false when index is out of range.
	IsStepAccessible(index int) bool

	// NextIncompleteStep returns the first index that is required,
	// incomplete, and accessible. Inaccessible required steps are skipped;
	// they cannot be navigated to yet.
	NextIncompleteStep() (int, bool)

	// SaveProgress mirrors the navigation state to storage under
	// Config.ProgressKey. It is a no-op when persistence is disabled.
	// Storage failures are reported to the Observer and swallowed.
	SaveProgress()

	// LoadProgress replaces the navigation state with the stored snapshot,
	// when persistence is enabled and a well-formed snapshot exists. A
	// missing key keeps the current state; a malformed snapshot is
	// reported to the Observer and nothing is applied.
	LoadProgress()

	// ResetProgress restores the default initial state and, when
	// persistence is enabled, deletes the stored key.
	ResetProgress()
}
