package deque

import "unsafe"

// The in-memory representation is a hard interoperability contract: map
// pointer, map capacity, begin cursor (four words), end cursor (four
// words), allocator. The assertions below stop compilation if a field
// moves, using the usual negative-array-length trick to pin each offset
// from both sides.

const wordSize = unsafe.Sizeof(uintptr(0))

var (
	layoutDeque  Deque[uint32]
	layoutCursor cursor[uint32]
	layoutCompat CompatIter[uint32]
	layoutQueue  Queue[uint32]
)

// cursor: four machine words
var (
	_ [unsafe.Offsetof(layoutCursor.current) - 0]struct{}
	_ [unsafe.Offsetof(layoutCursor.begin) - wordSize]struct{}
	_ [wordSize - unsafe.Offsetof(layoutCursor.begin)]struct{}
	_ [unsafe.Offsetof(layoutCursor.end) - 2*wordSize]struct{}
	_ [2*wordSize - unsafe.Offsetof(layoutCursor.end)]struct{}
	_ [unsafe.Offsetof(layoutCursor.currentArray) - 3*wordSize]struct{}
	_ [3*wordSize - unsafe.Offsetof(layoutCursor.currentArray)]struct{}
	_ [unsafe.Sizeof(layoutCursor) - 4*wordSize]struct{}
	_ [4*wordSize - unsafe.Sizeof(layoutCursor)]struct{}
)

// CompatIter mirrors cursor exactly
var (
	_ [unsafe.Offsetof(layoutCompat.Current) - 0]struct{}
	_ [unsafe.Offsetof(layoutCompat.Begin) - wordSize]struct{}
	_ [wordSize - unsafe.Offsetof(layoutCompat.Begin)]struct{}
	_ [unsafe.Offsetof(layoutCompat.End) - 2*wordSize]struct{}
	_ [2*wordSize - unsafe.Offsetof(layoutCompat.End)]struct{}
	_ [unsafe.Offsetof(layoutCompat.CurrentArray) - 3*wordSize]struct{}
	_ [3*wordSize - unsafe.Offsetof(layoutCompat.CurrentArray)]struct{}
	_ [unsafe.Sizeof(layoutCompat) - 4*wordSize]struct{}
	_ [4*wordSize - unsafe.Sizeof(layoutCompat)]struct{}
)

// Deque: ten words plus the two-word allocator interface
var (
	_ [unsafe.Offsetof(layoutDeque.ptrArray) - 0]struct{}
	_ [unsafe.Offsetof(layoutDeque.ptrArraySize) - wordSize]struct{}
	_ [wordSize - unsafe.Offsetof(layoutDeque.ptrArraySize)]struct{}
	_ [unsafe.Offsetof(layoutDeque.begin) - 2*wordSize]struct{}
	_ [2*wordSize - unsafe.Offsetof(layoutDeque.begin)]struct{}
	_ [unsafe.Offsetof(layoutDeque.end) - 6*wordSize]struct{}
	_ [6*wordSize - unsafe.Offsetof(layoutDeque.end)]struct{}
	_ [unsafe.Offsetof(layoutDeque.alloc) - 10*wordSize]struct{}
	_ [10*wordSize - unsafe.Offsetof(layoutDeque.alloc)]struct{}
	_ [unsafe.Sizeof(layoutDeque) - 12*wordSize]struct{}
	_ [12*wordSize - unsafe.Sizeof(layoutDeque)]struct{}
)

// Queue adds no state of its own
var (
	_ [unsafe.Sizeof(layoutQueue) - unsafe.Sizeof(layoutDeque)]struct{}
	_ [unsafe.Sizeof(layoutDeque) - unsafe.Sizeof(layoutQueue)]struct{}
)
