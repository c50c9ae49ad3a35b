package deque

import (
	"sync"
	"unsafe"
)

// Allocator provides raw storage for the deque's segment map and segments.
//
// Allocate is infallible by contract: implementations either return a block
// valid for exactly size bytes at the requested alignment, or abort. The
// deque never checks the returned pointer.
type Allocator interface {
	// Allocate returns a block of size bytes aligned to align.
	// size is always non-zero when called by the deque.
	Allocate(size, align uintptr) unsafe.Pointer

	// Deallocate returns a block previously obtained from Allocate with the
	// same size and alignment.
	Deallocate(p unsafe.Pointer, size, align uintptr)
}

// NewHeapAllocator returns the default Allocator, backed by the Go heap.
//
// Blocks are kept reachable through an internal registry until they are
// deallocated, so the garbage collector never reclaims live segments. The
// memory is not scanned for pointers: element types that contain Go pointers
// must stay reachable through other references while stored in a deque.
func NewHeapAllocator() Allocator {
	return &heapAllocator{live: make(map[unsafe.Pointer][]byte)}
}

type heapAllocator struct {
	mu   sync.Mutex
	live map[unsafe.Pointer][]byte
}

func (a *heapAllocator) Allocate(size, align uintptr) unsafe.Pointer {
	buf := make([]byte, size+align)

	p := unsafe.Pointer(&buf[0])
	if off := uintptr(p) % align; off != 0 {
		p = unsafe.Add(p, align-off)
	}

	a.mu.Lock()
	a.live[p] = buf
	a.mu.Unlock()

	return p
}

func (a *heapAllocator) Deallocate(p unsafe.Pointer, _, _ uintptr) {
	a.mu.Lock()
	delete(a.live, p)
	a.mu.Unlock()
}

func (a *heapAllocator) liveBlocks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// allocArray obtains storage for n elements of type T from a.
func allocArray[T any](a Allocator, n int) *T {
	var zero T
	return (*T)(a.Allocate(uintptr(n)*unsafe.Sizeof(zero), unsafe.Alignof(zero)))
}

// freeArray returns storage for n elements of type T to a.
func freeArray[T any](a Allocator, p *T, n int) {
	var zero T
	a.Deallocate(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(zero), unsafe.Alignof(zero))
}
