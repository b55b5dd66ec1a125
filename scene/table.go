package scene

import (
	"sync"

	"github.com/vizkit/explorer/geom"
)

// Table is an in-memory actor store with slot reuse and observer support.
// Freed slots go onto a free list and are handed out again by later
// inserts. A mutex guards the slots so a form animation driving updates
// from its own goroutine cannot race the render path.
type Table struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
}

type entry struct {
	obj   *Object
	valid bool
}

// NewTable creates an empty actor table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert stores an actor and returns its handle. The table takes ownership
// of the object. A nil object yields handle 0.
func (t *Table) Insert(obj *Object) Handle {
	if obj == nil {
		return 0
	}

	t.mu.Lock()
	e := entry{obj: obj, valid: true}

	var h Handle
	if n := len(t.freeList); n > 0 {
		h = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
	} else {
		t.entries = append(t.entries, e)
		h = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventAdded, Handle: h, Object: obj})
	return h
}

// Get retrieves an actor by handle.
func (t *Table) Get(h Handle) (*Object, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].obj, true
}

// SetPoints replaces an actor's geometry. When the point count is unchanged
// the stored buffer is overwritten in place; otherwise it is reallocated.
func (t *Table) SetPoints(h Handle, pts geom.Polyline) bool {
	if h == 0 {
		return false
	}

	t.mu.Lock()
	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		t.mu.Unlock()
		return false
	}

	obj := t.entries[idx].obj
	if len(obj.Points) == len(pts) {
		copy(obj.Points, pts)
	} else {
		obj.Points = pts.Clone()
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventUpdated, Handle: h, Object: obj})
	return true
}

// Remove drops an actor and returns it. The slot becomes reusable.
func (t *Table) Remove(h Handle) (*Object, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		t.mu.Unlock()
		return nil, false
	}

	obj := t.entries[idx].obj
	t.entries[idx] = entry{}
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventRemoved, Handle: h, Object: obj})
	return obj, true
}

// Len returns the number of live actors.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over live actors in handle order. The callback returns
// false to stop early. The table lock is held for the duration, so the
// callback must not call back into the table.
func (t *Table) Each(fn func(Handle, *Object) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.obj) {
				break
			}
		}
	}
}

// Clear removes every actor, notifying observers per removal.
func (t *Table) Clear() {
	var handles []Handle
	t.Each(func(h Handle, _ *Object) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Subscribe adds an observer for actor lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnSceneEvent(e)
	}
}
