// Package gretl implements an online checkpointing engine for reverse-mode
// sensitivity analysis of a sequential forward computation.
//
// A forward evolution produces a state x_0, x_1, ..., x_N through N
// iterations of an update function. A subsequent reverse sweep needs every
// intermediate state x_i, in decreasing order of i, to drive a reverse
// (adjoint) callback. Storing all N+1 states is often infeasible; this
// package decides, online and under a fixed slot budget, which states to
// keep and which to discard, and replays forward iteration to reconstruct
// states the reverse sweep asks for that are no longer resident.
//
// Two checkpoint-placement strategies are provided, both satisfying the
// same [CheckpointStrategy] contract:
//
//   - [WangCheckpointStrategy]: a level-based dispensability scheme. Each
//     retained step carries a level; the lowest-level step is evicted
//     first, keeping higher-level checkpoints spaced farther apart.
//   - [OnlineR2CheckpointStrategy]: Stumm & Walther's "Online r=2" scheme
//     (SIAM J. Sci. Comput. 32(2), 2010). No levels; the step whose
//     removal would create the smallest merged gap between its neighbors
//     is evicted, keeping retained steps approximately uniformly spaced.
//
// Both are "online": neither needs to know N in advance, which distinguishes
// them from the closed-form binomial offline checkpointing solution for a
// known step count.
//
// Glossary and invariants:
//
//   - Checkpoint
//
//     A retained intermediate state paired with its step index.
//
//   - Persistent slot
//
//     A slot exempt from eviction and excluded from the ordinary slot
//     budget; typically the initial condition at step 0.
//
//   - Dispensability
//
//     A strategy's measure of which slot is least valuable to keep
//     resident.
//
//   - Recomputation
//
//     Replay of forward iterations to reconstruct a state that is no
//     longer stored.
//
//   - Merged gap
//
//     In Online-r=2, the distance between a slot's neighbors if the slot
//     itself were removed.
//
// Operations:
//
//   - Eviction
//
//     When [CheckpointStrategy.AddCheckpointAndGetIndexToRemove] is called
//     at capacity, the most dispensable slot is chosen by the strategy's
//     own rule and its step is returned for the caller to discard.
//
//   - Recomputation
//
//     When the reverse sweep needs a step no longer resident, the driver
//     replays forward from the nearest retained step and calls
//     [CheckpointStrategy.RecordRecomputation] once per replayed step.
//
// Counts and invariants:
//
//   - Size() ≤ Capacity()
//
//     The number of non-persistent slots never exceeds capacity after any
//     [CheckpointStrategy.AddCheckpointAndGetIndexToRemove] call returns.
//
//   - Capacity() = C + P
//
//     Base capacity C plus one for every persistent slot registered so far.
//
//   - Distinct steps
//
//     All stored slots have distinct step indices; step-sorted iteration
//     is always available regardless of backing storage.
//
//   - Metrics
//
//     [CheckpointMetrics] counters are monotonically non-decreasing except
//     across a call to [CheckpointStrategy.ResetMetrics].
//
// [AdvanceAndReverseSteps] drives a complete forward sweep followed by a
// reverse sweep against either strategy (or a caller-supplied one), and is
// the package's one collaborator beyond the strategies themselves.
package gretl
