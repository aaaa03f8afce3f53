//go:build go1.23

package strq

import "iter"

// All returns an iterator over the values of the queue from head to
// tail. The queue must not be modified during iteration.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for v := range q.chain.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (q *Queue) enumerate() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		var i int
		for v := range q.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
