// Package slotset provides the sorted-by-step slot storage shared by
// [github.com/LLNL/gretl]'s checkpoint-placement strategies. Both the
// level-based Wang strategy and the uniform-spacing Online-r=2 strategy
// need the same thing: an ordered collection of (step, persistent, aux)
// triples supporting insert-in-sorted-position, step lookup, and
// index-based removal. Per the design's own sizing assumption (capacities
// in the hundreds, not millions), a sorted slice with O(C) scans is
// sufficient; a balanced tree or skip list would be unwarranted
// complexity.
package slotset

import "sort"

// Slot is one stored checkpoint: its step, whether it is exempt from
// eviction, and strategy-private auxiliary data (Wang's level; nothing,
// for Online-r=2).
type Slot[Aux any] struct {
	Step       uint64
	Persistent bool
	Aux        Aux
}

// List is a collection of [Slot] values kept sorted by Step.
type List[Aux any] struct {
	slots []Slot[Aux]
}

// Len returns the number of stored slots.
func (l *List[Aux]) Len() int { return len(l.slots) }

// At returns the slot at the given sorted position.
func (l *List[Aux]) At(i int) Slot[Aux] { return l.slots[i] }

// SetAux updates the auxiliary data of the slot at the given sorted
// position in place.
func (l *List[Aux]) SetAux(i int, aux Aux) { l.slots[i].Aux = aux }

// IndexOf returns the sorted position of step and true, or the position it
// would be inserted at and false if no slot for step exists.
func (l *List[Aux]) IndexOf(step uint64) (int, bool) {
	i := sort.Search(len(l.slots), func(i int) bool { return l.slots[i].Step >= step })
	if i < len(l.slots) && l.slots[i].Step == step {
		return i, true
	}
	return i, false
}

// Contains reports whether a slot for step is stored.
func (l *List[Aux]) Contains(step uint64) bool {
	_, ok := l.IndexOf(step)
	return ok
}

// Insert places a new slot for step in sorted position and returns its
// index. The caller must ensure step is not already present.
func (l *List[Aux]) Insert(step uint64, persistent bool, aux Aux) int {
	i, _ := l.IndexOf(step)
	l.slots = append(l.slots, Slot[Aux]{})
	copy(l.slots[i+1:], l.slots[i:])
	l.slots[i] = Slot[Aux]{Step: step, Persistent: persistent, Aux: aux}
	return i
}

// RemoveAt removes the slot at the given sorted position.
func (l *List[Aux]) RemoveAt(i int) {
	l.slots = append(l.slots[:i], l.slots[i+1:]...)
}

// Remove removes the slot for step iff present and non-persistent, and
// reports whether a removal occurred.
func (l *List[Aux]) Remove(step uint64) bool {
	i, ok := l.IndexOf(step)
	if !ok || l.slots[i].Persistent {
		return false
	}
	l.RemoveAt(i)
	return true
}

// Last returns the slot with the greatest step and true, or the zero
// value and false if the list is empty.
func (l *List[Aux]) Last() (Slot[Aux], bool) {
	if len(l.slots) == 0 {
		return Slot[Aux]{}, false
	}
	return l.slots[len(l.slots)-1], true
}

// RemoveAllNonPersistent removes every non-persistent slot, preserving
// sorted order among the remaining slots.
func (l *List[Aux]) RemoveAllNonPersistent() {
	kept := l.slots[:0]
	for _, s := range l.slots {
		if s.Persistent {
			kept = append(kept, s)
		}
	}
	l.slots = kept
}

// All returns the slots in step-sorted order. The returned slice must not
// be mutated by the caller.
func (l *List[Aux]) All() []Slot[Aux] { return l.slots }
