package engine

import (
	"testing"

	"github.com/petrijr/passo/pkg/api"
)

type navObserver struct {
	api.NoopObserver

	changes    [][2]int
	rejections []api.RejectReason
	completed  []int
	incomplete []int
}

func (o *navObserver) OnStepChange(wizard string, from, to int) {
	o.changes = append(o.changes, [2]int{from, to})
}

func (o *navObserver) OnTransitionRejected(wizard string, target int, reason api.RejectReason) {
	o.rejections = append(o.rejections, reason)
}

func (o *navObserver) OnStepCompleted(wizard string, index int) {
	o.completed = append(o.completed, index)
}

func (o *navObserver) OnStepIncomplete(wizard string, index int) {
	o.incomplete = append(o.incomplete, index)
}

func TestObserverSeesNavigationEvents(t *testing.T) {
	obs := &navObserver{}
	c := NewControllerWithConfig(Config{
		Definition: onboardingDefinition(),
		Options:    api.DefaultConfig(),
		Observer:   obs,
	})

	c.MarkStepCompleted(0)
	c.GoNext()
	c.GoPrevious()
	c.MarkStepIncomplete(0)

	if len(obs.changes) != 2 || obs.changes[0] != [2]int{0, 1} || obs.changes[1] != [2]int{1, 0} {
		t.Fatalf("unexpected step changes: %v", obs.changes)
	}
	if len(obs.completed) != 1 || obs.completed[0] != 0 {
		t.Fatalf("unexpected completion events: %v", obs.completed)
	}
	if len(obs.incomplete) != 1 || obs.incomplete[0] != 0 {
		t.Fatalf("unexpected incompletion events: %v", obs.incomplete)
	}
}

func TestRejectionsReportFirstFailedPrecondition(t *testing.T) {
	opts := api.DefaultConfig()
	opts.AllowBackNavigation = false

	obs := &navObserver{}
	c := NewControllerWithConfig(Config{
		Definition: onboardingDefinition(),
		Options:    opts,
		Observer:   obs,
	})

	c.GoToStep(7)  // out of range
	c.GoToStep(2)  // locked
	c.GoNext()     // required step 0 incomplete
	c.GoPrevious() // back navigation off

	want := []api.RejectReason{
		api.RejectOutOfRange,
		api.RejectNotAccessible,
		api.RejectRequiredIncomplete,
		api.RejectBackNavigationDisabled,
	}
	if len(obs.rejections) != len(want) {
		t.Fatalf("expected %d rejections, got %v", len(want), obs.rejections)
	}
	for i, reason := range want {
		if obs.rejections[i] != reason {
			t.Fatalf("rejection %d: expected %s, got %s", i, reason, obs.rejections[i])
		}
	}
}

// A rejected GoNext must emit exactly one rejection even though the
// forward gate is checked both in GoNext and inside the delegated
// GoToStep.
func TestRejectedGoNextEmitsSingleEvent(t *testing.T) {
	obs := &navObserver{}
	c := NewControllerWithConfig(Config{
		Definition: onboardingDefinition(),
		Options:    api.DefaultConfig(),
		Observer:   obs,
	})

	if c.GoNext() {
		t.Fatalf("setup: expected GoNext rejected")
	}
	if len(obs.rejections) != 1 {
		t.Fatalf("expected exactly one rejection event, got %v", obs.rejections)
	}
}
