package deque_test

import (
	. "github.com/ecl-labs/go-deque/deque"
)

func buildDeque(values ...uint32) *Deque[uint32] {
	d := New[uint32]()
	for _, v := range values {
		d.PushBack(v)
	}

	return d
}

func drainFront[T any](d *Deque[T]) []T {
	out := make([]T, 0, d.Len())
	for {
		v, ok := d.PopFront()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func rangeU32(n uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}

	return out
}
