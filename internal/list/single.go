package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at both ends and removals at the
// head. The tail reference never owns a node: every node is reachable
// from the head, and the tail is only a cache of the last of them.
//
// The zero value is an empty list ready to use.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// Push adds v as a new node at the head of the list.
func (ls *Single[T]) Push(v T) {
	ls.head = &SingleNode[T]{Val: v, next: ls.head}
	if ls.tail == nil {
		ls.tail = ls.head
	}
	ls.len++
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.len++
}

// Peek returns the value of the head node. If the list is empty, it
// returns the zero value and false.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Pop removes the current head node from the list and returns its
// value. It returns false if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	n.next = nil
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--

	return n.Val, true
}

// Clear removes every node from the list, one at a time from the
// head.
func (ls *Single[T]) Clear() {
	for ls.head != nil {
		ls.Pop()
	}
}

// Reverse reverses the order of the list in place. No nodes are
// allocated or released.
func (ls *Single[T]) Reverse() {
	var prev *SingleNode[T]
	cur := ls.head
	ls.tail = ls.head

	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	ls.head = prev
}

// Sort sorts the list in ascending order as determined by cmp, which
// must return a negative number when a < b, a positive number when a
// > b and zero otherwise. The sort is stable and works by relinking
// the existing nodes.
func (ls *Single[T]) Sort(cmp func(a, b T) int) {
	if ls.len < 2 {
		return
	}
	ls.head, ls.tail = mergeSort(ls.head, ls.len, cmp)
}

// mergeSort sorts the n nodes starting at head and returns the first
// and last nodes of the result. The chain must end after n nodes.
func mergeSort[T any](head *SingleNode[T], n int, cmp func(T, T) int) (first, last *SingleNode[T]) {
	if n < 2 {
		return head, head
	}

	rn := n / 2
	ln := n - rn
	rest := split(head, ln)

	lh, lt := mergeSort(head, ln, cmp)
	rh, rt := mergeSort(rest, rn, cmp)
	return merge(lh, lt, rh, rt, cmp)
}

// split cuts the chain after step nodes and returns the remainder.
func split[T any](n *SingleNode[T], step int) *SingleNode[T] {
	for range step - 1 {
		n = n.next
	}
	rest := n.next
	n.next = nil
	return rest
}

// merge joins two sorted, non-empty chains. On ties the node from a
// is taken first.
func merge[T any](a, atail, b, btail *SingleNode[T], cmp func(T, T) int) (head, tail *SingleNode[T]) {
	link := &head
	for a != nil && b != nil {
		if cmp(b.Val, a.Val) < 0 {
			*link = b
			b = b.next
		} else {
			*link = a
			a = a.next
		}
		link = &(*link).next
	}

	if a != nil {
		*link = a
		return head, atail
	}
	*link = b
	return head, btail
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

func (n *SingleNode[T]) insert() *SingleNode[T] {
	if n == nil {
		return new(SingleNode[T])
	}

	n.next = &SingleNode[T]{next: n.next}
	return n.next
}
