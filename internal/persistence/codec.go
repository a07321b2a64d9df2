package persistence

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the persisted form of a controller's navigation state.
//
// The wire format is plain JSON: index sets are stored sorted, and the
// per-step flags are keyed by step ID so a snapshot survives steps being
// inserted into or removed from the wizard between sessions.
type Snapshot struct {
	CurrentStep    int         `json:"currentStep"`
	CompletedSteps []int       `json:"completedSteps"`
	VisitedSteps   []int       `json:"visitedSteps"`
	StepsState     []StepState `json:"stepsState"`
}

// StepState carries the persisted flags of a single step, keyed by its ID.
type StepState struct {
	ID         string `json:"id"`
	Completed  bool   `json:"isCompleted"`
	Accessible bool   `json:"isAccessible"`
}

// UnmarshalJSON accepts step IDs stored either as JSON strings or as JSON
// numbers. Snapshots written by other implementations may carry numeric
// IDs; those are coerced to their decimal form so they can be matched
// against live step IDs.
func (s *StepState) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         json.RawMessage `json:"id"`
		Completed  bool            `json:"isCompleted"`
		Accessible bool            `json:"isAccessible"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeStepID(raw.ID)
	if err != nil {
		return err
	}

	s.ID = id
	s.Completed = raw.Completed
	s.Accessible = raw.Accessible
	return nil
}

func decodeStepID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String(), nil
	}

	return "", fmt.Errorf("step id must be a string or a number, got %s", raw)
}

// EncodeSnapshot serializes a snapshot to its JSON wire form. Nil slices
// are written as empty arrays so every stored document carries all four
// fields.
func EncodeSnapshot(snap Snapshot) (string, error) {
	if snap.CompletedSteps == nil {
		snap.CompletedSteps = []int{}
	}
	if snap.VisitedSteps == nil {
		snap.VisitedSteps = []int{}
	}
	if snap.StepsState == nil {
		snap.StepsState = []StepState{}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a stored snapshot. An error means the stored value
// is malformed and must not be applied.
func DecodeSnapshot(value string) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
