package deque

import (
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// addElem returns p moved by n element slots.
func addElem[T any](p *T, n int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), n*int(unsafe.Sizeof(*p))))
}

// diffElem returns the number of element slots between lo and hi, hi >= lo.
func diffElem[T any](hi, lo *T) int {
	size := unsafe.Sizeof(*hi)
	return int((uintptr(unsafe.Pointer(hi)) - uintptr(unsafe.Pointer(lo))) / size)
}

// addSlot returns the map slot n entries away from p.
func addSlot(p *unsafe.Pointer, n int) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(p), n*int(ptrSize)))
}

// diffSlot returns the number of map slots between lo and hi, hi >= lo.
func diffSlot(hi, lo *unsafe.Pointer) int {
	return int((uintptr(unsafe.Pointer(hi)) - uintptr(unsafe.Pointer(lo))) / ptrSize)
}

// cursor marks one boundary of the live element range. Field order and size
// are part of the reference layout: four machine words, see layout.go.
type cursor[T any] struct {
	current      *T
	begin        *T
	end          *T
	currentArray *unsafe.Pointer
}

// setSegment re-seats the cursor on the segment referenced by slot.
// current is deliberately left untouched: segment contents never move, so a
// position inside a still-live segment stays valid across map changes.
func (c *cursor[T]) setSegment(slot *unsafe.Pointer, segLen int) {
	c.currentArray = slot
	c.begin = (*T)(*slot)
	c.end = addElem(c.begin, segLen)
}

func (c *cursor[T]) compat() CompatIter[T] {
	return CompatIter[T]{
		Current:      c.current,
		Begin:        c.begin,
		End:          c.end,
		CurrentArray: c.currentArray,
	}
}

// CompatIter is the exported form of a deque cursor, matching the reference
// deque's fancy-pointer iterator representation: the element position, the
// bounds of its segment and the map slot owning that segment, four machine
// words in this order.
type CompatIter[T any] struct {
	Current      *T
	Begin        *T
	End          *T
	CurrentArray *unsafe.Pointer
}

// Iterator traverses a deque in both directions, crossing segment boundaries
// transparently. It borrows the deque's storage and never allocates; it is
// invalidated by any mutation of the deque it came from.
type Iterator[T any] struct {
	cur     *T
	curArr  *unsafe.Pointer
	last    *T
	lastArr *unsafe.Pointer
	segLen  int
}

// FromCompat rebuilds an Iterator from an exported (begin, end) cursor pair.
// Both cursors must describe positions inside the same deque, with end not
// before begin.
func FromCompat[T any](begin, end CompatIter[T]) Iterator[T] {
	return Iterator[T]{
		cur:     begin.Current,
		curArr:  begin.CurrentArray,
		last:    end.Current,
		lastArr: end.CurrentArray,
		segLen:  diffElem(begin.End, begin.Begin),
	}
}

// Compat converts the iterator's remaining range back into an exported
// (begin, end) cursor pair. Segment bounds are recomputed from the slots the
// two ends currently occupy.
func (it *Iterator[T]) Compat() (begin, end CompatIter[T]) {
	begin = CompatIter[T]{
		Current:      it.cur,
		Begin:        (*T)(*it.curArr),
		End:          addElem((*T)(*it.curArr), it.segLen),
		CurrentArray: it.curArr,
	}
	end = CompatIter[T]{
		Current:      it.last,
		Begin:        (*T)(*it.lastArr),
		End:          addElem((*T)(*it.lastArr), it.segLen),
		CurrentArray: it.lastArr,
	}
	return begin, end
}

// Next returns a pointer to the next element from the front, or false when
// the two ends of the iterator have met.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.cur == it.last {
		return nil, false
	}

	elem := it.cur
	if it.cur == addElem((*T)(*it.curArr), it.segLen-1) {
		// reached the end of the current segment, advance one map slot
		it.curArr = addSlot(it.curArr, 1)
		it.cur = (*T)(*it.curArr)
	} else {
		it.cur = addElem(it.cur, 1)
	}

	return elem, true
}

// NextBack returns a pointer to the next element from the back, or false
// when the two ends of the iterator have met.
func (it *Iterator[T]) NextBack() (*T, bool) {
	if it.last == it.cur {
		return nil, false
	}

	if it.last == (*T)(*it.lastArr) {
		// reached the start of the current segment, retreat one map slot
		it.lastArr = addSlot(it.lastArr, -1)
		it.last = addElem((*T)(*it.lastArr), it.segLen-1)
	} else {
		it.last = addElem(it.last, -1)
	}

	return it.last, true
}

// skip advances the iterator n elements from the front.
func (it *Iterator[T]) skip(n int) {
	for i := 0; i < n; i++ {
		it.Next()
	}
}

// skipBack advances the iterator n elements from the back.
func (it *Iterator[T]) skipBack(n int) {
	for i := 0; i < n; i++ {
		it.NextBack()
	}
}

// rotate swaps elements pairwise while both iterators yield, walking from
// the front.
func rotate[T any](cur, next *Iterator[T]) {
	for {
		a, ok := cur.Next()
		b, ok2 := next.Next()
		if !ok || !ok2 {
			return
		}
		*a, *b = *b, *a
	}
}

// rotateBack swaps elements pairwise while both iterators yield, walking
// from the back.
func rotateBack[T any](cur, next *Iterator[T]) {
	for {
		a, ok := cur.NextBack()
		b, ok2 := next.NextBack()
		if !ok || !ok2 {
			return
		}
		*a, *b = *b, *a
	}
}
