package deque

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Runtime mirrors of the compile-time assertions in layout.go, kept in the
// shape of the reference implementation's offset tests.

func TestLayoutDeque(t *testing.T) {
	t.Parallel()

	var d Deque[uint32]

	assert.Equal(t, uintptr(0), unsafe.Offsetof(d.ptrArray))
	assert.Equal(t, wordSize, unsafe.Offsetof(d.ptrArraySize))
	assert.Equal(t, 2*wordSize, unsafe.Offsetof(d.begin))
	assert.Equal(t, 6*wordSize, unsafe.Offsetof(d.end))
	assert.Equal(t, 10*wordSize, unsafe.Offsetof(d.alloc))
	assert.Equal(t, 12*wordSize, unsafe.Sizeof(d))
}

func TestLayoutCursor(t *testing.T) {
	t.Parallel()

	var c cursor[uint32]

	assert.Equal(t, uintptr(0), unsafe.Offsetof(c.current))
	assert.Equal(t, wordSize, unsafe.Offsetof(c.begin))
	assert.Equal(t, 2*wordSize, unsafe.Offsetof(c.end))
	assert.Equal(t, 3*wordSize, unsafe.Offsetof(c.currentArray))
	assert.Equal(t, 4*wordSize, unsafe.Sizeof(c))
}

func TestLayoutCompatIter(t *testing.T) {
	t.Parallel()

	var ci CompatIter[uint32]

	assert.Equal(t, uintptr(0), unsafe.Offsetof(ci.Current))
	assert.Equal(t, wordSize, unsafe.Offsetof(ci.Begin))
	assert.Equal(t, 2*wordSize, unsafe.Offsetof(ci.End))
	assert.Equal(t, 3*wordSize, unsafe.Offsetof(ci.CurrentArray))
	assert.Equal(t, 4*wordSize, unsafe.Sizeof(ci))
}

func TestLayoutQueue(t *testing.T) {
	t.Parallel()

	var q Queue[uint32]

	assert.Equal(t, unsafe.Sizeof(Deque[uint32]{}), unsafe.Sizeof(q))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(q.deque))
}
