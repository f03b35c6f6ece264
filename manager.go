package gretl

import (
	"fmt"
	"io"
)

// DefaultMaxNumStates is a default capacity callers may pass to
// [NewCheckpointManager]. It is not applied automatically:
// NewCheckpointManager always uses the capacity it is given, and a
// zero-value CheckpointManager has MaxNumStates 0.
const DefaultMaxNumStates = 20

// CheckpointManager is a lazily-initialized facade over a
// [CheckpointStrategy], defaulting to [WangCheckpointStrategy]. Its sole
// added value over constructing a strategy directly is deferring
// construction until first use.
//
// MaxNumStates is read once, the first time a method that delegates to the
// strategy is called (Reset, Print and ValidCheckpointIndex do not
// construct it).
// Writes to it after that point are ineffective — this mirrors the
// source CheckpointManager's behavior exactly rather than silently
// changing it (see the Open Question recorded in the design notes): if
// you need a different capacity after first use, construct a new
// [CheckpointManager] or a strategy directly instead of mutating this
// field.
type CheckpointManager struct {
	MaxNumStates int

	strategy CheckpointStrategy
}

// NewCheckpointManager constructs a facade with the given capacity,
// without allocating the underlying strategy yet.
func NewCheckpointManager(maxStates int) *CheckpointManager {
	return &CheckpointManager{MaxNumStates: maxStates}
}

// impl returns the underlying strategy, constructing it on first call.
func (m *CheckpointManager) impl() CheckpointStrategy {
	if m.strategy == nil {
		strategy, err := NewWangCheckpointStrategy(m.MaxNumStates)
		if err != nil {
			panic(err)
		}
		m.strategy = strategy
	}
	return m.strategy
}

// AddCheckpointAndGetIndexToRemove delegates to the underlying strategy.
func (m *CheckpointManager) AddCheckpointAndGetIndexToRemove(step Step, persistent bool) Step {
	return m.impl().AddCheckpointAndGetIndexToRemove(step, persistent)
}

// LastCheckpointStep delegates to the underlying strategy.
func (m *CheckpointManager) LastCheckpointStep() Step { return m.impl().LastCheckpointStep() }

// EraseStep delegates to the underlying strategy.
func (m *CheckpointManager) EraseStep(step Step) bool { return m.impl().EraseStep(step) }

// ContainsStep delegates to the underlying strategy.
func (m *CheckpointManager) ContainsStep(step Step) bool { return m.impl().ContainsStep(step) }

// Reset delegates to the underlying strategy, a no-op if it has not been
// constructed yet.
func (m *CheckpointManager) Reset() {
	if m.strategy != nil {
		m.strategy.Reset()
	}
}

// Capacity delegates to the underlying strategy.
func (m *CheckpointManager) Capacity() int { return m.impl().Capacity() }

// Size delegates to the underlying strategy.
func (m *CheckpointManager) Size() int { return m.impl().Size() }

// Metrics delegates to the underlying strategy.
func (m *CheckpointManager) Metrics() CheckpointMetrics { return m.impl().Metrics() }

// ResetMetrics delegates to the underlying strategy.
func (m *CheckpointManager) ResetMetrics() { m.impl().ResetMetrics() }

// RecordRecomputation delegates to the underlying strategy.
func (m *CheckpointManager) RecordRecomputation() { m.impl().RecordRecomputation() }

// ValidCheckpointIndex reports whether i is not [InvalidStep]. It does
// not require the underlying strategy to have been constructed.
func (m *CheckpointManager) ValidCheckpointIndex(i Step) bool { return ValidCheckpointIndex(i) }

// Print writes a diagnostic dump of the facade. If no strategy has been
// constructed yet, it prints only the declared capacity rather than
// forcing construction just to produce a dump.
func (m *CheckpointManager) Print(out io.Writer) {
	if m.strategy == nil {
		fmt.Fprintf(out, "CHECKPOINTS: capacity = %d\n", m.MaxNumStates)
		return
	}
	m.strategy.Print(out)
}

var _ CheckpointStrategy = (*CheckpointManager)(nil)
