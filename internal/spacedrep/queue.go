package spacedrep

import (
	"sort"
	"time"
)

type itemKey struct {
	typ ItemType
	id  int
}

// Queue holds the review items under spaced repetition. At most one item
// exists per (type, id) pair. Insertion order is preserved for persistence.
type Queue struct {
	items []*Item
	index map[itemKey]*Item
}

// NewQueue creates an empty review queue.
func NewQueue() *Queue {
	return &Queue{index: make(map[itemKey]*Item)}
}

// Len returns the number of items in the queue.
func (q *Queue) Len() int {
	return len(q.items)
}

// Add inserts an item into the queue. Returns false if an item with the
// same (type, id) already exists; the existing item is left untouched.
func (q *Queue) Add(it *Item) bool {
	k := itemKey{it.Type, it.ID}
	if _, ok := q.index[k]; ok {
		return false
	}
	q.items = append(q.items, it)
	q.index[k] = it
	return true
}

// Get returns the item for (typ, id), or nil if not tracked.
func (q *Queue) Get(typ ItemType, id int) *Item {
	return q.index[itemKey{typ, id}]
}

// Remove deletes the item for (typ, id). Returns false if it wasn't present.
func (q *Queue) Remove(typ ItemType, id int) bool {
	k := itemKey{typ, id}
	if _, ok := q.index[k]; !ok {
		return false
	}
	delete(q.index, k)
	for i, it := range q.items {
		if it.Type == typ && it.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the queue contents in insertion order.
func (q *Queue) Items() []*Item {
	out := make([]*Item, len(q.items))
	copy(out, q.items)
	return out
}

// Due returns the items due for review as of now, most overdue first.
// Ties break on (type, id) for a stable order.
func (q *Queue) Due(now time.Time) []*Item {
	var due []*Item
	for _, it := range q.items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		if due[i].Type != due[j].Type {
			return due[i].Type < due[j].Type
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Clone returns a deep copy of the queue.
func (q *Queue) Clone() *Queue {
	out := NewQueue()
	for _, it := range q.items {
		cp := *it
		out.Add(&cp)
	}
	return out
}
