package Queues

import (
	"golang.org/x/exp/constraints"
)

const (
	// MaxCapacity is the largest number of entries a PriorityQueue can hold.
	MaxCapacity = 0x7FFFFFC7
	minimumGrow = 4
)

// Item is an element paired with its priority.
type Item[P, E any] struct {
	Element  E
	Priority P
}

// entry is what's actually stored. seq is the insertion order, used to break ties between equal priorities.
type entry[P, E any] struct {
	element  E
	priority P
	seq      uint64
}

// PriorityQueue is a min-heap of elements keyed by a separate priority. Elements with equal priorities
// are dequeued in insertion order. The heap is packed in nodes: the children of i are 2i+1 and 2i+2.
// len(nodes) is the capacity, only nodes[:size] are in use.
// It isn't safe for concurrent use.
type PriorityQueue[P, E any] struct {
	nodes   []entry[P, E]
	size    int
	seq     uint64 // next sequence number.
	version uint64 // bumped by every structural change.
	compare func(a, b P) int
}

// natural ordering for ordered types. NaN sorts before everything, same as cmp.Compare.
func natural[P constraints.Ordered](a, b P) int {
	aNaN, bNaN := a != a, b != b
	if aNaN {
		if bNaN {
			return 0
		}
		return -1
	} else if bNaN {
		return 1
	}
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// New creates an empty queue ordered by ascending priority with room for capacity entries.
func New[P constraints.Ordered, E any](capacity int) (*PriorityQueue[P, E], error) {
	return NewFunc[P, E](capacity, natural[P])
}

// NewFunc creates an empty queue ordered by compare, which must be a total order returning a negative
// number when a<b, 0 when a==b and a positive number when a>b. Panics if compare is nil.
func NewFunc[P, E any](capacity int, compare func(a, b P) int) (*PriorityQueue[P, E], error) {
	if compare == nil {
		panic("Queues: nil compare")
	}
	if capacity < 0 {
		return nil, argError("capacity", capacity)
	} else if capacity > MaxCapacity {
		return nil, &Error{Kind: CapacityExceeded, Param: "capacity", Value: capacity}
	}
	return &PriorityQueue[P, E]{nodes: make([]entry[P, E], capacity), compare: compare}, nil
}

// From builds a queue ordered by ascending priority out of items in O(n). items isn't retained.
func From[P constraints.Ordered, E any](items []Item[P, E]) *PriorityQueue[P, E] {
	u, _ := FromFunc(items, natural[P]) // only fails beyond MaxCapacity items.
	return u
}

// FromFunc is From with a custom ordering. Entries that compare equal keep the order they have in items.
func FromFunc[P, E any](items []Item[P, E], compare func(a, b P) int) (*PriorityQueue[P, E], error) {
	u, err := NewFunc[P, E](len(items), compare)
	if err != nil {
		return nil, err
	}
	for i, it := range items {
		u.nodes[i] = entry[P, E]{it.Element, it.Priority, u.seq}
		u.seq++
	}
	u.size = len(items)
	u.heapify()
	return u, nil
}

// Len is the number of entries in the queue.
func (u *PriorityQueue[P, E]) Len() int {
	return u.size
}

// Cap is the number of entries the queue can hold without growing.
func (u *PriorityQueue[P, E]) Cap() int {
	return len(u.nodes)
}

// Enqueue element with priority. O(log n) amortized.
func (u *PriorityQueue[P, E]) Enqueue(element E, priority P) error {
	if u.size == len(u.nodes) {
		if err := u.grow(u.size + 1); err != nil {
			return err
		}
	}
	u.version++
	u.siftUp(u.size, entry[P, E]{element, priority, u.seq})
	u.seq++
	u.size++
	return nil
}

// Peek returns the element with the minimal priority without removing it.
func (u *PriorityQueue[P, E]) Peek() (E, error) {
	if u.size == 0 {
		return *new(E), ErrEmptyCollection
	}
	return u.nodes[0].element, nil
}

// TryPeek is Peek that also returns the priority, and reports an empty queue through ok.
func (u *PriorityQueue[P, E]) TryPeek() (element E, priority P, ok bool) {
	if u.size == 0 {
		return
	}
	return u.nodes[0].element, u.nodes[0].priority, true
}

// Dequeue removes and returns the element with the minimal priority. O(log n).
func (u *PriorityQueue[P, E]) Dequeue() (E, error) {
	if u.size == 0 {
		return *new(E), ErrEmptyCollection
	}
	e := u.nodes[0].element
	u.removeRoot()
	return e, nil
}

// TryDequeue is Dequeue that also returns the priority, and reports an empty queue through ok.
func (u *PriorityQueue[P, E]) TryDequeue() (element E, priority P, ok bool) {
	if u.size == 0 {
		return
	}
	element, priority = u.nodes[0].element, u.nodes[0].priority
	u.removeRoot()
	return element, priority, true
}

// EnqueueDequeue is Enqueue followed by Dequeue, done with a single sift. When the queue is empty or
// element would be dequeued right away, element is returned and the queue is left untouched.
func (u *PriorityQueue[P, E]) EnqueueDequeue(element E, priority P) E {
	if u.size != 0 {
		n := entry[P, E]{element, priority, u.seq}
		if root := u.nodes[0]; u.less(&root, &n) {
			u.version++
			u.seq++
			u.siftDown(0, n)
			return root.element
		}
	}
	return element
}

// EnqueueRange enqueues every item in order, as if by repeated Enqueue. It always counts as a
// modification, even when items is empty.
func (u *PriorityQueue[P, E]) EnqueueRange(items []Item[P, E]) error {
	return u.enqueueRange(len(items), func(i int) (E, P) {
		return items[i].Element, items[i].Priority
	})
}

// EnqueueRangeFixed enqueues every element with the same priority, as if by repeated Enqueue. It always
// counts as a modification, even when elements is empty.
func (u *PriorityQueue[P, E]) EnqueueRangeFixed(elements []E, priority P) error {
	return u.enqueueRange(len(elements), func(i int) (E, P) {
		return elements[i], priority
	})
}

func (u *PriorityQueue[P, E]) enqueueRange(n int, at func(int) (E, P)) error {
	u.version++
	if n == 0 {
		return nil
	}
	if n > MaxCapacity-u.size {
		return &Error{Kind: CapacityExceeded, Param: "count", Value: n}
	} else if len(u.nodes)-u.size < n {
		if err := u.grow(u.size + n); err != nil {
			return err
		}
	}
	if u.size == 0 { //cheaper to heapify everything at once.
		for i := 0; i < n; i++ {
			e, p := at(i)
			u.nodes[i] = entry[P, E]{e, p, u.seq}
			u.seq++
		}
		u.size = n
		u.heapify()
	} else {
		for i := 0; i < n; i++ {
			e, p := at(i)
			u.siftUp(u.size, entry[P, E]{e, p, u.seq})
			u.seq++
			u.size++
		}
	}
	return nil
}

// EnsureCapacity grows the storage to hold at least capacity entries and returns the resulting capacity.
// It always counts as a modification, even when no growth was needed.
func (u *PriorityQueue[P, E]) EnsureCapacity(capacity int) (int, error) {
	if capacity < 0 {
		return len(u.nodes), argError("capacity", capacity)
	}
	if len(u.nodes) < capacity {
		if err := u.grow(capacity); err != nil {
			return len(u.nodes), err
		}
	}
	u.version++
	return len(u.nodes), nil
}

// TrimExcess shrinks the storage to Len if less than 90% of it is in use.
func (u *PriorityQueue[P, E]) TrimExcess() {
	if threshold := int(float64(len(u.nodes)) * 0.9); u.size < threshold {
		u.resize(u.size)
		u.version++
	}
}

// Clear removes all entries, keeping the storage. Stored elements are zeroed so they can be collected.
func (u *PriorityQueue[P, E]) Clear() {
	clear(u.nodes[:u.size])
	u.size = 0
	u.version++
}

// less is the tie-broken order: priority first, then insertion sequence.
func (u *PriorityQueue[P, E]) less(a, b *entry[P, E]) bool {
	if c := u.compare(a.priority, b.priority); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// siftUp places n at i, moving parents down into the hole while they're greater than n.
func (u *PriorityQueue[P, E]) siftUp(i int, n entry[P, E]) {
	for i > 0 {
		parent := (i - 1) >> 1
		if !u.less(&n, &u.nodes[parent]) {
			break
		}
		u.nodes[i] = u.nodes[parent]
		i = parent
	}
	u.nodes[i] = n
}

// siftDown places n at i, moving the smaller child up into the hole while it's less than n.
func (u *PriorityQueue[P, E]) siftDown(i int, n entry[P, E]) {
	for {
		c := i<<1 + 1
		if c >= u.size {
			break
		}
		if r := c + 1; r < u.size && u.less(&u.nodes[r], &u.nodes[c]) {
			c = r
		}
		if !u.less(&u.nodes[c], &n) {
			break
		}
		u.nodes[i] = u.nodes[c]
		i = c
	}
	u.nodes[i] = n
}

// heapify nodes[:size] bottom up.
func (u *PriorityQueue[P, E]) heapify() {
	for i := (u.size - 2) >> 1; i >= 0; i-- {
		u.siftDown(i, u.nodes[i])
	}
}

func (u *PriorityQueue[P, E]) removeRoot() {
	u.version++
	u.size--
	last := u.nodes[u.size]
	u.nodes[u.size] = entry[P, E]{}
	if u.size > 0 {
		u.siftDown(0, last)
	}
}

// grow to at least need, doubling when possible.
func (u *PriorityQueue[P, E]) grow(need int) error {
	if need > MaxCapacity {
		return &Error{Kind: CapacityExceeded, Param: "capacity", Value: need}
	}
	c := len(u.nodes) << 1
	if c < len(u.nodes)+minimumGrow {
		c = len(u.nodes) + minimumGrow
	}
	if c > MaxCapacity {
		c = MaxCapacity
	}
	if c < need {
		c = need
	}
	u.resize(c)
	return nil
}

func (u *PriorityQueue[P, E]) resize(c int) {
	nodes := make([]entry[P, E], c)
	copy(nodes, u.nodes[:u.size])
	u.nodes = nodes
}
