// Package dlist implements an intrusive doubly linked list over
// integer-addressed arena handles rather than pointers.
//
// Unlike container/list, dlist does not allocate a node per element: the
// sibling links live wherever the caller's arena stores them (typically
// two extra ints embedded in an entry struct). This lets a single entry
// participate in more than one list at once — TLRU's recency list and
// expiry list both reference the same entries — without double
// allocation, and removal is O(1) with no traversal.
package dlist

// Nil marks the absence of a neighbor. Handles are always >= 0.
const Nil = -1

// Linker gives a List read/write access to the sibling links of a
// caller-owned arena. Each distinct list (recency, expiry, per-frequency
// bucket, ...) that can hold the same handle needs its own Linker backed
// by its own pair of link fields.
type Linker interface {
	Prev(handle int) int
	Next(handle int) int
	SetPrev(handle, prev int)
	SetNext(handle, next int)
}

// List is a doubly linked list of arena handles. Obtain an empty list
// from New; the zero value is not empty-ready, since its head and tail
// are 0 rather than Nil.
type List struct {
	head, tail int
	length     int
}

// New returns an empty List.
func New() List {
	return List{head: Nil, tail: Nil}
}

// Len reports the number of handles currently linked.
func (l *List) Len() int { return l.length }

// Front returns the head handle, or Nil if the list is empty.
func (l *List) Front() int { return l.head }

// Back returns the tail handle, or Nil if the list is empty.
func (l *List) Back() int { return l.tail }

// PushFront links handle at the head of the list.
func (l *List) PushFront(lk Linker, handle int) {
	lk.SetPrev(handle, Nil)
	lk.SetNext(handle, l.head)
	if l.head != Nil {
		lk.SetPrev(l.head, handle)
	} else {
		l.tail = handle
	}
	l.head = handle
	l.length++
}

// PushBack links handle at the tail of the list.
func (l *List) PushBack(lk Linker, handle int) {
	lk.SetNext(handle, Nil)
	lk.SetPrev(handle, l.tail)
	if l.tail != Nil {
		lk.SetNext(l.tail, handle)
	} else {
		l.head = handle
	}
	l.tail = handle
	l.length++
}

// InsertAfter links handle immediately after an existing list member
// after. If after is Nil, handle becomes the new head (equivalent to
// PushFront) — used by LFU's frequency chain to create the frequency-1
// node when no node yet precedes it.
func (l *List) InsertAfter(lk Linker, after, handle int) {
	if after == Nil {
		l.PushFront(lk, handle)
		return
	}
	next := lk.Next(after)
	lk.SetNext(after, handle)
	lk.SetPrev(handle, after)
	lk.SetNext(handle, next)
	if next != Nil {
		lk.SetPrev(next, handle)
	} else {
		l.tail = handle
	}
	l.length++
}

// Remove unlinks handle from the list. handle must currently belong to
// this list; behavior is undefined otherwise.
func (l *List) Remove(lk Linker, handle int) {
	prev, next := lk.Prev(handle), lk.Next(handle)
	if prev != Nil {
		lk.SetNext(prev, next)
	} else {
		l.head = next
	}
	if next != Nil {
		lk.SetPrev(next, prev)
	} else {
		l.tail = prev
	}
	lk.SetPrev(handle, Nil)
	lk.SetNext(handle, Nil)
	l.length--
}

// MoveToBack unlinks handle and relinks it at the tail. handle must
// already belong to this list.
func (l *List) MoveToBack(lk Linker, handle int) {
	if l.tail == handle {
		return
	}
	l.Remove(lk, handle)
	l.PushBack(lk, handle)
}

// MoveToFront unlinks handle and relinks it at the head. handle must
// already belong to this list.
func (l *List) MoveToFront(lk Linker, handle int) {
	if l.head == handle {
		return
	}
	l.Remove(lk, handle)
	l.PushFront(lk, handle)
}
