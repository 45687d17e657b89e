package Queues

// UnorderedItems is a live view of the entries of a PriorityQueue in heap order, which isn't sorted.
type UnorderedItems[P, E any] struct {
	q *PriorityQueue[P, E]
}

// UnorderedItems returns a view over the current entries. Iterators obtained from it fail with
// InvalidState once the queue is modified.
func (u *PriorityQueue[P, E]) UnorderedItems() UnorderedItems[P, E] {
	return UnorderedItems[P, E]{u}
}

// Len of the underlying queue.
func (u UnorderedItems[P, E]) Len() int {
	return u.q.size
}

// Iterator starts a new traversal.
func (u UnorderedItems[P, E]) Iterator() *Iterator[P, E] {
	return &Iterator[P, E]{q: u.q, version: u.q.version}
}

// Range calls f on every entry until f returns false. It returns ErrInvalidState if f modifies the queue.
func (u UnorderedItems[P, E]) Range(f func(Item[P, E]) bool) error {
	it := u.Iterator()
	for {
		ok, err := it.Next()
		if err != nil || !ok {
			return err
		}
		if !f(it.cur) {
			return nil
		}
	}
}

// CopyTo copies all entries into dst starting at index.
func (u UnorderedItems[P, E]) CopyTo(dst []Item[P, E], index int) error {
	if index < 0 || index > len(dst) {
		return argError("index", index)
	} else if len(dst)-index < u.q.size {
		return argError("len", len(dst))
	}
	for i, n := range u.q.nodes[:u.q.size] {
		dst[index+i] = Item[P, E]{n.element, n.priority}
	}
	return nil
}

// Iterator walks the storage of a PriorityQueue. The zero value isn't usable.
type Iterator[P, E any] struct {
	q       *PriorityQueue[P, E]
	index   int
	version uint64 // version of q when the traversal started.
	cur     Item[P, E]
}

// Next advances to the next entry, returning false once all entries were visited. It fails with
// ErrInvalidState if the queue was modified since the iterator was created or last reset.
func (u *Iterator[P, E]) Next() (bool, error) {
	if u.version != u.q.version {
		return false, ErrInvalidState
	}
	if u.index < u.q.size {
		n := &u.q.nodes[u.index]
		u.cur = Item[P, E]{n.element, n.priority}
		u.index++
		return true, nil
	}
	u.cur = Item[P, E]{}
	return false, nil
}

// Item is the entry Next last moved to. Undefined before the first Next or after Next returned false.
func (u *Iterator[P, E]) Item() Item[P, E] {
	return u.cur
}

// Reset rewinds the iterator to the beginning. It fails like Next if the queue was modified.
func (u *Iterator[P, E]) Reset() error {
	if u.version != u.q.version {
		return ErrInvalidState
	}
	u.index, u.cur = 0, Item[P, E]{}
	return nil
}
