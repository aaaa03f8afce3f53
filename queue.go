package strq

import (
	"strings"

	"deedles.dev/strq/internal/list"
)

// A Queue holds text values in a singly-linked chain of nodes. Values
// can be inserted at either end but are only removed from the head.
// A zero value Queue is ready to use.
//
// Every method may be called on a nil *Queue, in which case it
// behaves as though the queue were empty and refuses inserts.
//
// A Queue does no locking. Callers that share one between goroutines
// must guard it themselves.
type Queue struct {
	chain list.Single[string]
}

// New returns a new, empty queue.
func New() *Queue {
	return new(Queue)
}

// Free removes every value from the queue. The queue is left empty
// and can still be used afterwards.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	q.chain.Clear()
}

// InsertHead copies s into a new node placed before the current
// head. It returns false if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.chain.Push(own(s))
	return true
}

// InsertTail copies s into a new node placed after the current tail.
// It returns false if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.chain.Enqueue(own(s))
	return true
}

// own returns a private copy of s, cut at the first NUL byte.
func own(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.Clone(s)
}

// RemoveHead removes the head of the queue. It returns false, leaving
// out untouched, if q is nil or empty.
//
// If out is not empty, up to len(out)-1 bytes of the removed value
// are copied into it followed by a NUL byte, and n is the number of
// value bytes copied. A value longer than that is truncated.
func (q *Queue) RemoveHead(out []byte) (n int, ok bool) {
	if q == nil {
		return 0, false
	}

	v, ok := q.chain.Pop()
	if !ok {
		return 0, false
	}

	if len(out) > 0 {
		n = copy(out[:len(out)-1], v)
		out[n] = 0
	}
	return n, true
}

// PopHead removes the head of the queue and returns its whole value.
func (q *Queue) PopHead() (string, bool) {
	if q == nil {
		return "", false
	}
	return q.chain.Pop()
}

// Head returns the value at the head of the queue without removing
// it.
func (q *Queue) Head() (string, bool) {
	if q == nil {
		return "", false
	}
	return q.chain.Peek()
}

// Size returns the number of values in the queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.chain.Len()
}

// Reverse reverses the order of the queue in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.chain.Reverse()
}

// Sort sorts the queue in ascending order using [Compare]. Values
// that compare equal keep their relative order.
func (q *Queue) Sort() {
	if q == nil {
		return
	}
	q.chain.Sort(Compare)
}

// String formats the queue's values from head to tail, such as
// "[a b c]". A nil queue is formatted as "NULL".
func (q *Queue) String() string {
	if q == nil {
		return "NULL"
	}

	var buf strings.Builder
	buf.WriteByte('[')
	for i, v := range q.enumerate() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(v)
	}
	buf.WriteByte(']')
	return buf.String()
}
