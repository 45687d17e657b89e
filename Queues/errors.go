package Queues

import "strconv"

// Kind identifies one of the failures a queue can report.
type Kind uint8

const (
	// InvalidArgument is reported for negative or otherwise unusable arguments.
	InvalidArgument Kind = iota + 1
	// EmptyCollection is reported by Peek and Dequeue on an empty queue.
	EmptyCollection
	// InvalidState is reported when an iterator is advanced after the queue was modified.
	InvalidState
	// CapacityExceeded is reported when the storage would need more than MaxCapacity slots.
	CapacityExceeded
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case EmptyCollection:
		return "EmptyCollection"
	case InvalidState:
		return "InvalidState"
	case CapacityExceeded:
		return "CapacityExceeded"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is returned by every failing queue operation. It only carries the kind and the offending
// parameter; the text comes from Messages.
type Error struct {
	Kind  Kind
	Param string // name of the offending argument, empty if none.
	Value int    // value of the offending argument, meaningful only when Param isn't empty.
}

func (e *Error) Error() string {
	msg, ok := Messages[e.Kind]
	if !ok {
		msg = e.Kind.String()
	}
	if e.Param != "" {
		return msg + " (" + e.Param + "=" + strconv.Itoa(e.Value) + ")"
	}
	return msg
}

// Is reports whether target is an *Error of the same Kind, so errors.Is(err, ErrEmptyCollection) works
// regardless of the parameters.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidArgument  = &Error{Kind: InvalidArgument}
	ErrEmptyCollection  = &Error{Kind: EmptyCollection}
	ErrInvalidState     = &Error{Kind: InvalidState}
	ErrCapacityExceeded = &Error{Kind: CapacityExceeded}
)

func argError(param string, value int) error {
	return &Error{Kind: InvalidArgument, Param: param, Value: value}
}
