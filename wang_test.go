package gretl_test

import (
	"strings"
	"testing"

	"github.com/LLNL/gretl"
)

func TestWangCheckpointStrategy(t *testing.T) {
	t.Run("invalid capacity", wangInvalidCapacity)
	t.Run("add and contains", wangAddAndContains)
	t.Run("duplicate add panics", wangDuplicateAddPanics)
	t.Run("last checkpoint step on empty panics", wangEmptyLastPanics)
	t.Run("persistent grows capacity without eviction", wangPersistentGrowsCapacity)
	t.Run("eviction prefers lowest level", wangEvictionPrefersLowestLevel)
	t.Run("erase step on persistent is a no-op", wangErasePersistentNoop)
	t.Run("reset keeps only persistent slots", wangResetKeepsPersistent)
	t.Run("metrics are monotone", wangMetricsMonotone)
	t.Run("print format", wangPrintFormat)
}

func wangInvalidCapacity(t *testing.T) {
	if _, err := gretl.NewWangCheckpointStrategy(-1); err == nil {
		t.Fatal("expected an error for a negative capacity")
	}
}

func newWang(tb testing.TB, capacity int) *gretl.WangCheckpointStrategy {
	tb.Helper()
	s, err := gretl.NewWangCheckpointStrategy(capacity)
	if err != nil {
		tb.Fatalf("unexpected error constructing strategy: %v", err)
	}
	return s
}

func wangAddAndContains(t *testing.T) {
	s := newWang(t, 4)
	s.AddCheckpointAndGetIndexToRemove(0, true)
	s.AddCheckpointAndGetIndexToRemove(1, false)
	if !s.ContainsStep(0) || !s.ContainsStep(1) {
		t.Fatal("expected steps 0 and 1 to be stored")
	}
	if s.ContainsStep(2) {
		t.Fatal("did not expect step 2 to be stored")
	}
}

func wangDuplicateAddPanics(t *testing.T) {
	s := newWang(t, 4)
	s.AddCheckpointAndGetIndexToRemove(5, false)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate add")
		}
	}()
	s.AddCheckpointAndGetIndexToRemove(5, false)
}

func wangEmptyLastPanics(t *testing.T) {
	s := newWang(t, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic calling LastCheckpointStep on an empty strategy")
		}
	}()
	s.LastCheckpointStep()
}

func wangPersistentGrowsCapacity(t *testing.T) {
	s := newWang(t, 2)
	baseCapacity := s.Capacity()
	erased := s.AddCheckpointAndGetIndexToRemove(0, true)
	if gretl.ValidCheckpointIndex(erased) {
		t.Fatal("persistent add must never evict")
	}
	if got, want := s.Capacity(), baseCapacity+1; got != want {
		t.Fatalf("got capacity %d after persistent add, want %d", got, want)
	}
}

func wangEvictionPrefersLowestLevel(t *testing.T) {
	// Capacity 2: fill with steps 1 and 2. Step 2 (even, level >= 1) is
	// less dispensable than step 1 (odd, level 0), so adding a third step
	// should evict step 1.
	s := newWang(t, 2)
	s.AddCheckpointAndGetIndexToRemove(1, false)
	s.AddCheckpointAndGetIndexToRemove(2, false)
	erased := s.AddCheckpointAndGetIndexToRemove(3, false)
	if !gretl.ValidCheckpointIndex(erased) {
		t.Fatal("expected an eviction when adding past capacity")
	}
	if erased != 1 {
		t.Fatalf("got evicted step %d, want 1 (the lowest-level slot)", erased)
	}
	if !s.ContainsStep(2) || !s.ContainsStep(3) {
		t.Fatal("expected steps 2 and 3 to remain stored")
	}
}

func wangErasePersistentNoop(t *testing.T) {
	s := newWang(t, 4)
	s.AddCheckpointAndGetIndexToRemove(0, true)
	if s.EraseStep(0) {
		t.Fatal("expected EraseStep on a persistent slot to return false")
	}
	if !s.ContainsStep(0) {
		t.Fatal("expected persistent slot 0 to remain stored")
	}
}

func wangResetKeepsPersistent(t *testing.T) {
	s := newWang(t, 4)
	s.AddCheckpointAndGetIndexToRemove(0, true)
	s.AddCheckpointAndGetIndexToRemove(1, false)
	s.AddCheckpointAndGetIndexToRemove(2, false)
	s.Reset()
	if s.Size() != 1 {
		t.Fatalf("got size %d after reset, want 1", s.Size())
	}
	if !s.ContainsStep(0) {
		t.Fatal("expected persistent step 0 to survive reset")
	}
}

func wangMetricsMonotone(t *testing.T) {
	s := newWang(t, 1)
	s.AddCheckpointAndGetIndexToRemove(0, true)
	before := s.Metrics()
	s.AddCheckpointAndGetIndexToRemove(1, false)
	s.AddCheckpointAndGetIndexToRemove(2, false)
	s.RecordRecomputation()
	after := s.Metrics()
	if after.Stores < before.Stores {
		t.Fatal("stores counter must not decrease")
	}
	if after.Evictions < before.Evictions {
		t.Fatal("evictions counter must not decrease")
	}
	if after.Recomputations != before.Recomputations+1 {
		t.Fatalf("got recomputations %d, want %d", after.Recomputations, before.Recomputations+1)
	}
	s.ResetMetrics()
	if reset := s.Metrics(); reset != (gretl.CheckpointMetrics{}) {
		t.Fatalf("got %+v after ResetMetrics, want zero value", reset)
	}
}

func wangPrintFormat(t *testing.T) {
	s := newWang(t, 4)
	s.AddCheckpointAndGetIndexToRemove(0, true)
	s.AddCheckpointAndGetIndexToRemove(1, false)
	var buf strings.Builder
	s.Print(&buf)
	out := buf.String()
	if !strings.Contains(out, "CHECKPOINTS (Wang): capacity = 5") {
		t.Fatalf("unexpected header in:\n%s", out)
	}
	if !strings.Contains(out, "step=0 (persistent)") {
		t.Fatalf("expected persistent annotation in:\n%s", out)
	}
	if !strings.Contains(out, "step=1\n") {
		t.Fatalf("expected non-persistent step in:\n%s", out)
	}
}
