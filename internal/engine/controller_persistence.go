package engine

import (
	"errors"

	"github.com/petrijr/passo/internal/persistence"
	"github.com/petrijr/passo/pkg/api"
)

// persistAfterMutation mirrors the state to storage after a committed
// change. Rejected operations never reach this point.
func (c *controllerImpl) persistAfterMutation() {
	if !c.opts.PersistProgress {
		return
	}
	c.save()
}

func (c *controllerImpl) SaveProgress() {
	if !c.opts.PersistProgress {
		return
	}
	c.save()
}

// save is best-effort: a failing storage degrades persistence for this
// call but never disturbs the in-memory state or the caller.
func (c *controllerImpl) save() {
	value, err := persistence.EncodeSnapshot(c.snapshot())
	if err != nil {
		c.observer.OnPersistenceError(c.def.Name, api.PersistenceSave, c.opts.ProgressKey, err)
		return
	}
	if err := c.storage.Set(c.opts.ProgressKey, value); err != nil {
		c.observer.OnPersistenceError(c.def.Name, api.PersistenceSave, c.opts.ProgressKey, err)
		return
	}
	c.observer.OnProgressPersisted(c.def.Name, api.PersistenceSave, c.opts.ProgressKey)
}

func (c *controllerImpl) snapshot() persistence.Snapshot {
	snap := persistence.Snapshot{
		CurrentStep:    c.current,
		CompletedSteps: sortedIndices(c.completed),
		VisitedSteps:   sortedIndices(c.visited),
		StepsState:     make([]persistence.StepState, len(c.def.Steps)),
	}
	for i := range c.def.Steps {
		snap.StepsState[i] = persistence.StepState{
			ID:         c.def.Steps[i].ID,
			Completed:  c.flags[i].completed,
			Accessible: c.flags[i].accessible,
		}
	}
	return snap
}

func (c *controllerImpl) LoadProgress() {
	if !c.opts.PersistProgress {
		return
	}

	value, err := c.storage.Get(c.opts.ProgressKey)
	if err != nil {
		// A missing key is the normal first-run case, not a failure.
		if errors.Is(err, api.ErrKeyNotFound) {
			return
		}
		c.observer.OnPersistenceError(c.def.Name, api.PersistenceLoad, c.opts.ProgressKey, err)
		return
	}

	snap, err := persistence.DecodeSnapshot(value)
	if err != nil {
		// A corrupt snapshot is never partially applied; the current
		// state stands.
		c.observer.OnPersistenceError(c.def.Name, api.PersistenceLoad, c.opts.ProgressKey, err)
		return
	}

	c.apply(snap)
	c.observer.OnProgressPersisted(c.def.Name, api.PersistenceLoad, c.opts.ProgressKey)
}

// apply replaces the navigation state with a decoded snapshot.
//
// Indices that no longer fit the live wizard are dropped: a stored
// current step beyond the registry means the wizard shrank since the
// save, and step 0 is the only safe landing. Per-step flags are matched
// by ID, first stored occurrence wins; live steps absent from the
// snapshot keep their freshly-initialized defaults.
func (c *controllerImpl) apply(snap persistence.Snapshot) {
	total := len(c.def.Steps)

	current := snap.CurrentStep
	if current < 0 || current >= total {
		current = 0
	}
	c.current = current

	c.completed = make(map[int]struct{})
	for _, i := range snap.CompletedSteps {
		if i >= 0 && i < total {
			c.completed[i] = struct{}{}
		}
	}

	c.visited = make(map[int]struct{})
	for _, i := range snap.VisitedSteps {
		if i >= 0 && i < total {
			c.visited[i] = struct{}{}
		}
	}
	// The visited set always contains the current step, even when the
	// snapshot was written by hand and omits it.
	c.visited[c.current] = struct{}{}

	c.flags = make([]stepFlags, total)
	if total > 0 {
		c.flags[0].accessible = true
	}
	for i := range c.def.Steps {
		for _, ss := range snap.StepsState {
			if ss.ID == c.def.Steps[i].ID {
				c.flags[i] = stepFlags{completed: ss.Completed, accessible: ss.Accessible}
				break
			}
		}
	}
}

func (c *controllerImpl) ResetProgress() {
	c.resetState()

	if !c.opts.PersistProgress {
		return
	}
	if err := c.storage.Delete(c.opts.ProgressKey); err != nil {
		c.observer.OnPersistenceError(c.def.Name, api.PersistenceReset, c.opts.ProgressKey, err)
		return
	}
	c.observer.OnProgressPersisted(c.def.Name, api.PersistenceReset, c.opts.ProgressKey)
}
