// Package strq provides a queue of text values built on a
// singly-linked chain of nodes.
//
// Values are copied into the queue when they are inserted, can be
// inserted at the head or the tail, and are removed from the head.
// The chain can be reversed and sorted in place without allocating
// or releasing any nodes.
package strq
