package deque

import "unsafe"

const InitialMapSlots = initialMapSlots

func SegmentLen[T any]() int {
	return segmentLen[T]()
}

func (d *Deque[T]) MapCap() int {
	return int(d.ptrArraySize)
}

func (d *Deque[T]) BeginSlot() int {
	return diffSlot(d.begin.currentArray, d.ptrArray)
}

func (d *Deque[T]) EndSlot() int {
	return diffSlot(d.end.currentArray, d.ptrArray)
}

func (d *Deque[T]) MapSlot(i int) unsafe.Pointer {
	return *addSlot(d.ptrArray, i)
}

func HeapLive(a Allocator) int {
	return a.(*heapAllocator).liveBlocks()
}
