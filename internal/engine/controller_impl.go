package engine

import (
	"database/sql"
	"math"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/petrijr/passo/internal/persistence"
	"github.com/petrijr/passo/pkg/api"
)

// controllerImpl is the synchronous, single-session controller
// implementation. All state transitions run to completion within the
// caller's turn; there is no internal goroutine and no locking, because a
// controller has exactly one writer at a time.
type controllerImpl struct {
	def  api.WizardDefinition
	opts api.Config

	current   int
	completed map[int]struct{}
	visited   map[int]struct{}
	flags     []stepFlags

	storage  api.Storage
	observer api.Observer
}

// stepFlags is the mutable per-step state. The descriptors in the wizard
// definition are caller-owned and never written to.
type stepFlags struct {
	completed  bool
	accessible bool
}

// Config describes how to construct a controller. External callers use
// the passo package constructors or a session.Manager instead.
type Config struct {
	Definition api.WizardDefinition
	Options    api.Config
	Storage    api.Storage
	Observer   api.Observer
}

// NewControllerWithConfig creates a new Controller using the given
// configuration. A nil Storage falls back to an in-memory store, a nil
// Observer to structured logging via slog.Default(), and an empty
// ProgressKey to api.DefaultProgressKey. When persistence is enabled, a
// stored snapshot is restored before the controller is returned.
func NewControllerWithConfig(cfg Config) api.Controller {
	obs := cfg.Observer
	if obs == nil {
		obs = api.NewLoggingObserver(nil)
	}
	store := cfg.Storage
	if store == nil {
		store = persistence.NewMemoryStorage()
	}
	opts := cfg.Options
	if opts.ProgressKey == "" {
		opts.ProgressKey = api.DefaultProgressKey
	}

	c := &controllerImpl{
		def:      cfg.Definition,
		opts:     opts,
		storage:  store,
		observer: obs,
	}
	c.resetState()

	if opts.PersistProgress {
		c.LoadProgress()
	}

	return c
}

// NewMemoryController returns a Controller backed by an in-memory store.
// External users access this via passo.NewController.
func NewMemoryController(def api.WizardDefinition, opts api.Config) api.Controller {
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
	})
}

// NewMemoryControllerWithObserver returns an in-memory Controller with the
// given Observer.
func NewMemoryControllerWithObserver(def api.WizardDefinition, opts api.Config, obs api.Observer) api.Controller {
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
		Observer:   obs,
	})
}

// NewFileController returns a Controller that persists progress as one
// document per key under dir.
func NewFileController(def api.WizardDefinition, opts api.Config, dir string) (api.Controller, error) {
	return NewFileControllerWithObserver(def, opts, dir, nil)
}

// NewFileControllerWithObserver returns a file-backed Controller with the
// given Observer.
func NewFileControllerWithObserver(def api.WizardDefinition, opts api.Config, dir string, obs api.Observer) (api.Controller, error) {
	store, err := persistence.NewFileStorage(dir)
	if err != nil {
		return nil, err
	}
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
		Storage:    store,
		Observer:   obs,
	}), nil
}

// NewSQLiteController returns a Controller that persists progress in a
// SQLite database.
func NewSQLiteController(def api.WizardDefinition, opts api.Config, db *sql.DB) (api.Controller, error) {
	return NewSQLiteControllerWithObserver(def, opts, db, nil)
}

// NewSQLiteControllerWithObserver returns a SQLite-backed Controller with
// the given Observer.
func NewSQLiteControllerWithObserver(def api.WizardDefinition, opts api.Config, db *sql.DB, obs api.Observer) (api.Controller, error) {
	store, err := persistence.NewSQLiteStorage(db)
	if err != nil {
		return nil, err
	}
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
		Storage:    store,
		Observer:   obs,
	}), nil
}

// NewPostgresController returns a Controller that persists progress in
// PostgreSQL.
func NewPostgresController(def api.WizardDefinition, opts api.Config, db *sql.DB) (api.Controller, error) {
	return NewPostgresControllerWithObserver(def, opts, db, nil)
}

// NewPostgresControllerWithObserver returns a Postgres-backed Controller
// with the given Observer.
func NewPostgresControllerWithObserver(def api.WizardDefinition, opts api.Config, db *sql.DB, obs api.Observer) (api.Controller, error) {
	store, err := persistence.NewPostgresStorage(db)
	if err != nil {
		return nil, err
	}
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
		Storage:    store,
		Observer:   obs,
	}), nil
}

// NewRedisController returns a Controller that persists progress in Redis.
func NewRedisController(def api.WizardDefinition, opts api.Config, client *redis.Client) api.Controller {
	return NewRedisControllerWithObserver(def, opts, client, nil)
}

// NewRedisControllerWithObserver returns a Redis-backed Controller with
// the given Observer.
func NewRedisControllerWithObserver(def api.WizardDefinition, opts api.Config, client *redis.Client, obs api.Observer) api.Controller {
	return NewControllerWithConfig(Config{
		Definition: def,
		Options:    opts,
		Storage:    persistence.NewRedisStorage(client, ""),
		Observer:   obs,
	})
}

// resetState puts the controller into the default initial state: step 0
// current, visited, and accessible; everything else locked and incomplete.
func (c *controllerImpl) resetState() {
	c.current = 0
	c.completed = make(map[int]struct{})
	c.visited = map[int]struct{}{0: {}}
	c.flags = make([]stepFlags, len(c.def.Steps))
	if len(c.flags) > 0 {
		c.flags[0].accessible = true
	}
}

func (c *controllerImpl) CurrentStep() int {
	return c.current
}

func (c *controllerImpl) TotalSteps() int {
	return len(c.def.Steps)
}

func (c *controllerImpl) Steps() []api.StepView {
	views := make([]api.StepView, len(c.def.Steps))
	for i := range c.def.Steps {
		views[i] = c.view(i)
	}
	return views
}

func (c *controllerImpl) view(index int) api.StepView {
	return api.StepView{
		Step:       c.def.Steps[index],
		Completed:  c.flags[index].completed,
		Accessible: c.flags[index].accessible,
	}
}

func (c *controllerImpl) CompletedSteps() []int {
	return sortedIndices(c.completed)
}

func (c *controllerImpl) VisitedSteps() []int {
	return sortedIndices(c.visited)
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (c *controllerImpl) CanGoNext() bool {
	next := c.current + 1
	if next >= len(c.def.Steps) {
		return false
	}
	if !c.flags[next].accessible {
		return false
	}
	if c.opts.ValidateOnStepChange && !c.currentStepSatisfied() {
		return false
	}
	return true
}

func (c *controllerImpl) CanGoPrevious() bool {
	if !c.opts.AllowBackNavigation || c.current == 0 {
		return false
	}
	return c.flags[c.current-1].accessible
}

func (c *controllerImpl) IsFirstStep() bool {
	return c.current == 0
}

func (c *controllerImpl) IsLastStep() bool {
	return c.current == len(c.def.Steps)-1
}

func (c *controllerImpl) ProgressPercentage() int {
	total := len(c.def.Steps)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(c.completed)) / float64(total)))
}

func (c *controllerImpl) GoToStep(index int) bool {
	return c.goToStep(index)
}

// goToStep is the single transition choke point. Preconditions run in
// order and the first failure rejects the whole move; state changes only
// after every check has passed.
func (c *controllerImpl) goToStep(index int) bool {
	if index < 0 || index >= len(c.def.Steps) {
		return c.reject(index, api.RejectOutOfRange)
	}
	if !c.flags[index].accessible {
		return c.reject(index, api.RejectNotAccessible)
	}
	if index < c.current && !c.opts.AllowBackNavigation {
		return c.reject(index, api.RejectBackNavigationDisabled)
	}
	if index > c.current && c.opts.ValidateOnStepChange && !c.currentStepSatisfied() {
		return c.reject(index, api.RejectRequiredIncomplete)
	}

	from := c.current
	c.current = index
	c.visited[index] = struct{}{}

	c.observer.OnStepChange(c.def.Name, from, index)
	c.persistAfterMutation()
	return true
}

// currentStepSatisfied reports whether the current step permits forward
// navigation: not required, or already marked completed.
func (c *controllerImpl) currentStepSatisfied() bool {
	if c.current >= len(c.def.Steps) {
		return true
	}
	return !c.def.Steps[c.current].Required || c.flags[c.current].completed
}

func (c *controllerImpl) GoNext() bool {
	next := c.current + 1
	if next >= len(c.def.Steps) {
		return c.reject(next, api.RejectOutOfRange)
	}
	// The forward gate runs both here and inside goToStep; a transition
	// must pass both.
	if c.opts.ValidateOnStepChange && !c.currentStepSatisfied() {
		return c.reject(next, api.RejectRequiredIncomplete)
	}
	return c.goToStep(next)
}

func (c *controllerImpl) GoPrevious() bool {
	if !c.opts.AllowBackNavigation {
		return c.reject(c.current-1, api.RejectBackNavigationDisabled)
	}
	if c.current == 0 {
		return c.reject(-1, api.RejectOutOfRange)
	}
	return c.goToStep(c.current - 1)
}

func (c *controllerImpl) GoFirst() bool {
	return c.goToStep(0)
}

func (c *controllerImpl) GoLast() bool {
	for i := len(c.flags) - 1; i >= 0; i-- {
		if c.flags[i].accessible {
			return c.goToStep(i)
		}
	}
	if len(c.flags) == 0 {
		return c.reject(-1, api.RejectOutOfRange)
	}
	// Every step has been explicitly locked.
	return c.reject(-1, api.RejectNotAccessible)
}

func (c *controllerImpl) MarkStepCompleted(index int) bool {
	if index < 0 || index >= len(c.flags) {
		return c.reject(index, api.RejectOutOfRange)
	}

	c.flags[index].completed = true
	c.completed[index] = struct{}{}

	// Completing a step is the only automatic accessibility grant.
	if next := index + 1; next < len(c.flags) {
		c.flags[next].accessible = true
	}

	c.observer.OnStepCompleted(c.def.Name, index)
	c.persistAfterMutation()
	return true
}

func (c *controllerImpl) MarkStepIncomplete(index int) bool {
	if index < 0 || index >= len(c.flags) {
		return c.reject(index, api.RejectOutOfRange)
	}

	c.flags[index].completed = false
	delete(c.completed, index)

	c.observer.OnStepIncomplete(c.def.Name, index)
	c.persistAfterMutation()
	return true
}

func (c *controllerImpl) UpdateStepAccessibility(index int, accessible bool) bool {
	if index < 0 || index >= len(c.flags) {
		return c.reject(index, api.RejectOutOfRange)
	}

	c.flags[index].accessible = accessible
	c.persistAfterMutation()
	return true
}

func (c *controllerImpl) ValidateCurrentStep(data map[string]any) api.ValidationResult {
	if c.current >= len(c.def.Steps) {
		return api.ValidationResult{Valid: true, Errors: map[string]string{}}
	}
	return api.EvaluateRules(c.def.Steps[c.current].Rules, data)
}

func (c *controllerImpl) StepByIndex(index int) (api.StepView, bool) {
	if index < 0 || index >= len(c.def.Steps) {
		return api.StepView{}, false
	}
	return c.view(index), true
}

func (c *controllerImpl) StepByID(id string) (api.StepView, bool) {
	for i := range c.def.Steps {
		if c.def.Steps[i].ID == id {
			return c.view(i), true
		}
	}
	return api.StepView{}, false
}

func (c *controllerImpl) IsStepCompleted(index int) bool {
	if index < 0 || index >= len(c.flags) {
		return false
	}
	return c.flags[index].completed
}

func (c *controllerImpl) IsStepAccessible(index int) bool {
	if index < 0 || index >= len(c.flags) {
		return false
	}
	return c.flags[index].accessible
}

func (c *controllerImpl) NextIncompleteStep() (int, bool) {
	for i := range c.def.Steps {
		// Required steps the user cannot reach yet are skipped; they
		// become candidates once something grants them accessibility.
		if c.def.Steps[i].Required && !c.flags[i].completed && c.flags[i].accessible {
			return i, true
		}
	}
	return 0, false
}

// reject reports a refused transition or mutation to the observer and
// returns false. No state is touched.
func (c *controllerImpl) reject(target int, reason api.RejectReason) bool {
	c.observer.OnTransitionRejected(c.def.Name, target, reason)
	return false
}
