// Package deque implements a double-ended queue backed by fixed-size
// segments, with an in-memory representation matching the reference native
// deque layout word for word.
//
// Storage is obtained through an injected Allocator and managed manually: a
// growable array of segment pointers (the map) spans the queue, and two
// cursors mark the occupied region. All operations are amortized O(1) at
// both ends. Instances are not safe for concurrent mutation; callers
// synchronize externally.
package deque

import (
	"fmt"
	"strings"
	"unsafe"
)

// initialMapSlots is the segment map capacity a fresh deque starts with.
// The first segment sits near the middle so the queue can grow in either
// direction before the map itself has to.
const initialMapSlots = 8

// segmentLen is the number of elements per segment, fixed per element type.
// Smaller elements get larger segments to amortize allocation bookkeeping;
// larger elements get smaller ones to bound wasted space.
func segmentLen[T any]() int {
	var zero T
	switch size := unsafe.Sizeof(zero); {
	case size <= 4:
		return 64
	case size <= 8:
		return 32
	case size <= 16:
		return 16
	case size <= 32:
		return 8
	default:
		return 4
	}
}

// Deque is a double-ended queue implemented with multiple fixed-size
// segments.
//
// Field order is part of the reference binary layout and must not change:
// map pointer, map capacity, begin cursor, end cursor, allocator. See
// layout.go for the assertions pinning it.
type Deque[T any] struct {
	ptrArray     *unsafe.Pointer
	ptrArraySize uintptr
	begin        cursor[T]
	end          cursor[T]
	alloc        Allocator
}

// New returns an empty deque. Storage is obtained from the heap allocator
// unless OptAllocator supplies another one.
//
// Element types of zero size are not supported and panic here.
func New[T any](opt ...Option) *Deque[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("deque: zero-size element types are not supported")
	}

	options := newOptions(opt)

	d := &Deque[T]{alloc: options.Allocator}
	d.init()

	return d
}

func (d *Deque[T]) init() {
	segLen := segmentLen[T]()

	d.ptrArraySize = initialMapSlots
	d.ptrArray = allocArray[unsafe.Pointer](d.alloc, initialMapSlots)
	for i := 0; i < initialMapSlots; i++ {
		*addSlot(d.ptrArray, i) = nil
	}

	// single pre-allocated segment mid-way through the map
	mid := addSlot(d.ptrArray, (initialMapSlots-1)/2)
	*mid = unsafe.Pointer(allocArray[T](d.alloc, segLen))

	d.begin.setSegment(mid, segLen)
	d.begin.current = d.begin.begin
	d.end.setSegment(mid, segLen)
	d.end.current = d.end.begin
}

// IsEmpty reports whether the deque contains no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.begin.current == d.end.current
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	if d.begin.currentArray == d.end.currentArray {
		return diffElem(d.end.current, d.begin.current)
	}

	// full intervening segments plus the partial offsets at each end
	fullSegments := diffSlot(d.end.currentArray, d.begin.currentArray) * segmentLen[T]()
	beginOffset := diffElem(d.begin.current, d.begin.begin)
	endOffset := diffElem(d.end.current, d.end.begin)

	return fullSegments + endOffset - beginOffset
}

// Front returns the first element without removing it, or false if the
// deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	var zero T

	it := d.Iter()
	p, ok := it.Next()
	if !ok {
		return zero, false
	}

	return *p, true
}

// Back returns the last element without removing it, or false if the deque
// is empty.
func (d *Deque[T]) Back() (T, bool) {
	var zero T

	it := d.Iter()
	p, ok := it.NextBack()
	if !ok {
		return zero, false
	}

	return *p, true
}

// PushBack appends elem at the back of the deque.
func (d *Deque[T]) PushBack(elem T) {
	segLen := segmentLen[T]()

	if d.end.current != addElem(d.end.end, -1) {
		*d.end.current = elem
		d.end.current = addElem(d.end.current, 1)
		return
	}

	// writing the last slot of the segment: make sure a map slot exists
	// behind it, fill the slot with a fresh segment and re-seat the cursor
	if d.end.currentArray == addSlot(d.ptrArray, int(d.ptrArraySize)-1) {
		d.growMap(1, false)
	}

	*d.end.current = elem

	next := addSlot(d.end.currentArray, 1)
	*next = unsafe.Pointer(allocArray[T](d.alloc, segLen))
	d.end.setSegment(next, segLen)
	d.end.current = d.end.begin
}

// PushFront prepends elem at the front of the deque.
func (d *Deque[T]) PushFront(elem T) {
	segLen := segmentLen[T]()

	if d.begin.current != d.begin.begin {
		d.begin.current = addElem(d.begin.current, -1)
	} else {
		if d.begin.currentArray == d.ptrArray {
			d.growMap(1, true)
		}

		// elements grow backwards from the high end of the new segment
		prev := addSlot(d.begin.currentArray, -1)
		*prev = unsafe.Pointer(allocArray[T](d.alloc, segLen))
		d.begin.setSegment(prev, segLen)
		d.begin.current = addElem(d.begin.end, -1)
	}

	*d.begin.current = elem
}

// PopBack removes and returns the last element, or false if the deque is
// empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}

	segLen := segmentLen[T]()

	if d.end.current != d.end.begin {
		// still inside the current segment, no deallocation
		d.end.current = addElem(d.end.current, -1)
		return *d.end.current, true
	}

	// the segment being vacated is empty: free it and retreat one map slot
	vacated := d.end.currentArray
	freeArray(d.alloc, (*T)(*vacated), segLen)
	*vacated = nil

	d.end.setSegment(addSlot(vacated, -1), segLen)
	d.end.current = addElem(d.end.end, -1)

	return *d.end.current, true
}

// PopFront removes and returns the first element, or false if the deque is
// empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.IsEmpty() {
		return zero, false
	}

	segLen := segmentLen[T]()

	if d.begin.current != addElem(d.begin.end, -1) {
		// still inside the current segment, no deallocation
		elem := *d.begin.current
		d.begin.current = addElem(d.begin.current, 1)
		return elem, true
	}

	// leaving the last slot empties the segment: free it and advance one
	// map slot
	elem := *d.begin.current

	vacated := d.begin.currentArray
	freeArray(d.alloc, (*T)(*vacated), segLen)
	*vacated = nil

	d.begin.setSegment(addSlot(vacated, 1), segLen)
	d.begin.current = d.begin.begin

	return elem, true
}

// Remove removes and returns the element at index, counted from the front,
// or false if index is out of range. Whichever end is closer to index is
// shifted to fill the gap, so at most Len()/2 elements move.
func (d *Deque[T]) Remove(index int) (T, bool) {
	var zero T

	length := d.Len()
	if index < 0 || index >= length {
		return zero, false
	}

	if index < length/2 {
		// shift the front half one step toward the back
		cur := d.Iter()
		next := d.Iter()
		cur.skipBack(length - index - 1)
		next.skipBack(length - index)
		rotateBack(&cur, &next)
		return d.PopFront()
	}

	// shift the back half one step toward the front
	cur := d.Iter()
	next := d.Iter()
	cur.skip(index)
	next.skip(index + 1)
	rotate(&cur, &next)
	return d.PopBack()
}

// Iter returns an iterator over the deque, front to back. The iterator is
// invalidated by any mutation of the deque.
func (d *Deque[T]) Iter() Iterator[T] {
	return Iterator[T]{
		cur:     d.begin.current,
		curArr:  d.begin.currentArray,
		last:    d.end.current,
		lastArr: d.end.currentArray,
		segLen:  segmentLen[T](),
	}
}

// CompatRange exports the deque's (begin, end) cursors in the reference
// iterator representation. FromCompat turns such a pair back into an
// Iterator.
func (d *Deque[T]) CompatRange() (begin, end CompatIter[T]) {
	return d.begin.compat(), d.end.compat()
}

// Destroy returns every segment and the map to the allocator. The deque
// must not be used afterwards. Destroying an already destroyed deque is a
// no-op.
func (d *Deque[T]) Destroy() {
	if d.ptrArray == nil {
		return
	}

	segLen := segmentLen[T]()

	// segments before the map, begin slot through end slot inclusive
	for slot := d.begin.currentArray; ; slot = addSlot(slot, 1) {
		freeArray(d.alloc, (*T)(*slot), segLen)
		*slot = nil
		if slot == d.end.currentArray {
			break
		}
	}

	freeArray(d.alloc, d.ptrArray, int(d.ptrArraySize))

	d.ptrArray = nil
	d.ptrArraySize = 0
	d.begin = cursor[T]{}
	d.end = cursor[T]{}
}

// String formats the deque front to back, matching the reference debug
// format: "[ 1, 2, 3 ]".
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")

	it := d.Iter()
	first := true
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", *p)
		first = false
	}

	sb.WriteString(" ]")
	return sb.String()
}

// growMap makes room for additional map slots beyond the current window, on
// the front or back side. If the opposite side of the map has enough unused
// slack the window slides inside the existing map instead of reallocating;
// sustained one-directional use claims extra slack speculatively so that a
// pure FIFO pattern does not slide on every boundary crossing.
func (d *Deque[T]) growMap(additional int, front bool) {
	segLen := segmentLen[T]()

	unusedFront := diffSlot(d.begin.currentArray, d.ptrArray)
	used := diffSlot(d.end.currentArray, d.begin.currentArray) + 1
	unusedBack := int(d.ptrArraySize) - unusedFront - used

	start := unusedFront
	var newStart int

	switch {
	case !front && additional <= unusedFront:
		if additional < (unusedFront+1)/2 {
			additional = (unusedFront + 1) / 2
		}
		newStart = unusedFront - additional
		d.slideWindow(start, used, newStart)

	case front && additional <= unusedBack:
		if additional < unusedBack/2 {
			additional = unusedBack / 2
		}
		newStart = start + additional
		d.slideWindow(start, used, newStart)

	default:
		// at least double, plus headroom
		newSize := int(d.ptrArraySize) + max(int(d.ptrArraySize), additional) + 2

		newArray := allocArray[unsafe.Pointer](d.alloc, newSize)
		for i := 0; i < newSize; i++ {
			*addSlot(newArray, i) = nil
		}

		newStart = unusedFront
		if front {
			newStart += additional
		}
		for i := 0; i < used; i++ {
			*addSlot(newArray, newStart+i) = *addSlot(d.ptrArray, start+i)
		}

		freeArray(d.alloc, d.ptrArray, int(d.ptrArraySize))
		d.ptrArray = newArray
		d.ptrArraySize = uintptr(newSize)
	}

	// re-seat both cursors; element positions inside segments are untouched
	d.begin.setSegment(addSlot(d.ptrArray, newStart), segLen)
	d.end.setSegment(addSlot(d.ptrArray, newStart+used-1), segLen)
}

// slideWindow moves the live slot run from start to newStart within the
// existing map and clears the vacated slots.
func (d *Deque[T]) slideWindow(start, used, newStart int) {
	if newStart < start {
		for i := 0; i < used; i++ {
			*addSlot(d.ptrArray, newStart+i) = *addSlot(d.ptrArray, start+i)
		}
	} else {
		for i := used - 1; i >= 0; i-- {
			*addSlot(d.ptrArray, newStart+i) = *addSlot(d.ptrArray, start+i)
		}
	}

	for i := start; i < start+used; i++ {
		if i < newStart || i >= newStart+used {
			*addSlot(d.ptrArray, i) = nil
		}
	}
}
