package deque

// Option configures storage of Deque and Queue instances.
type Option func(o *options)

// OptAllocator sets the Allocator supplying segment and map storage.
// The deque assumes nothing about the implementation beyond the
// infallibility contract documented on Allocator.
func OptAllocator(a Allocator) Option {
	return func(o *options) {
		o.Allocator = a
	}
}

type options struct {
	Allocator Allocator
}

func newOptions(opts []Option) options {
	o := options{
		Allocator: NewHeapAllocator(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
