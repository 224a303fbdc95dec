// Package sequencer computes position assignments for ordered sibling
// collections (task lists in a board, tasks in a task list).
//
// All functions are pure and total: out-of-range indices are clamped and
// identical inputs always yield identical assignments. Positions produced by
// Renumber, ReorderWithinList, MoveAcrossLists and FromOrder are always the
// contiguous range [0, n-1].
package sequencer

import "sort"

// Item is an element of an ordered collection as currently stored.
type Item struct {
	ID       uint64
	Position int
}

// Assignment is the position an element must have after an operation.
type Assignment struct {
	ID       uint64
	Position int
}

// Append returns the position for a new element placed at the end.
func Append(items []Item) int {
	if len(items) == 0 {
		return 0
	}
	highest := items[0].Position
	for _, item := range items[1:] {
		if item.Position > highest {
			highest = item.Position
		}
	}
	return highest + 1
}

// Order returns the ids sorted by position, ties broken by id.
func Order(items []Item) []uint64 {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})

	ids := make([]uint64, len(sorted))
	for i, item := range sorted {
		ids[i] = item.ID
	}
	return ids
}

// Renumber closes gaps: elements keep their relative order and get 0..n-1.
func Renumber(items []Item) []Assignment {
	return FromOrder(Order(items))
}

// FromOrder assigns position = index.
func FromOrder(ids []uint64) []Assignment {
	assignments := make([]Assignment, len(ids))
	for i, id := range ids {
		assignments[i] = Assignment{ID: id, Position: i}
	}
	return assignments
}

// ReorderWithinList removes movingID from ids and reinserts it at newIndex
// (clamped to [0, n-1]). When movingID is not part of ids the current order
// is returned unchanged.
func ReorderWithinList(ids []uint64, movingID uint64, newIndex int) []Assignment {
	from := indexOf(ids, movingID)
	if from < 0 {
		return FromOrder(ids)
	}

	rest := without(ids, movingID)
	return FromOrder(insertAt(rest, movingID, clamp(newIndex, 0, len(rest))))
}

// MoveAcrossLists takes movingID out of source and inserts it into dest at
// newPosition (clamped to [0, len(dest)]). Both results are renumbered from 0.
func MoveAcrossLists(source, dest []uint64, movingID uint64, newPosition int) ([]Assignment, []Assignment) {
	remaining := without(source, movingID)
	target := without(dest, movingID)
	target = insertAt(target, movingID, clamp(newPosition, 0, len(target)))
	return FromOrder(remaining), FromOrder(target)
}

// SameMembers reports whether ids is a permutation of the ids in items:
// same cardinality, no duplicates, no foreign ids.
func SameMembers(items []Item, ids []uint64) bool {
	if len(items) != len(ids) {
		return false
	}
	pending := make(map[uint64]struct{}, len(items))
	for _, item := range items {
		pending[item.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := pending[id]; !ok {
			return false
		}
		delete(pending, id)
	}
	return len(pending) == 0
}

// Changed filters next down to the assignments that differ from current.
// Ids absent from current are always included.
func Changed(current []Item, next []Assignment) []Assignment {
	positions := make(map[uint64]int, len(current))
	for _, item := range current {
		positions[item.ID] = item.Position
	}

	var changed []Assignment
	for _, a := range next {
		if position, ok := positions[a.ID]; ok && position == a.Position {
			continue
		}
		changed = append(changed, a)
	}
	return changed
}

func indexOf(ids []uint64, id uint64) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func without(ids []uint64, id uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}

func insertAt(ids []uint64, id uint64, index int) []uint64 {
	out := make([]uint64, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	return append(out, ids[index:]...)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
