package passo

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestControllerWithObserverAndBasicMetrics verifies that:
//   - NewControllerWithObserver is usable from the public API
//   - BasicMetrics sees expected navigation counts
//   - The builder and controller work end-to-end without any external infra.
func TestControllerWithObserverAndBasicMetrics(t *testing.T) {
	t.Parallel()

	metrics := &BasicMetrics{}

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	observer := NewCompositeObserver(
		NewLoggingObserver(logger),
		metrics,
	)

	def := New("observer-wizard").
		RequiredStep("first", "First").
		RequiredStep("second", "Second").
		Definition()

	ctrl := NewControllerWithObserver(def, DefaultConfig(), nil, observer)

	require.False(t, ctrl.GoNext(), "the required first step gates forward navigation")
	require.True(t, ctrl.MarkStepCompleted(0))
	require.True(t, ctrl.GoNext())
	require.True(t, ctrl.GoPrevious())
	require.True(t, ctrl.MarkStepIncomplete(0))

	snap := metrics.Snapshot()

	require.Equal(t, int64(2), snap.StepChanges, "expected 2 committed moves")
	require.Equal(t, int64(1), snap.TransitionsRejected, "expected 1 rejection")
	require.Equal(t, int64(1), snap.StepsCompleted, "expected 1 completion")
	require.Equal(t, int64(1), snap.StepsIncomplete, "expected 1 incompletion")
	require.Equal(t, int64(0), snap.PersistenceErrors, "expected no persistence errors")
}

// TestControllerWithNilObserver ensures that passing a nil observer is
// safe: the controller falls back to structured logging over
// slog.Default() and navigation behaves identically.
func TestControllerWithNilObserver(t *testing.T) {
	t.Parallel()

	def := New("nil-observer-wizard").
		Step("only", "Only step").
		Definition()

	ctrl := NewControllerWithObserver(def, DefaultConfig(), nil, nil)

	require.True(t, ctrl.IsFirstStep())
	require.True(t, ctrl.IsLastStep())
	require.False(t, ctrl.GoNext())
}
