// Package refcount implements the shared atomic-refcount copy-on-write
// handle used by region.Region and image.Buffer to decide, without a lock,
// whether an in-place mutation needs to detach (copy) its backing storage
// first.
package refcount

import "sync/atomic"

// Handle tracks how many owners currently share a backing block. The zero
// value is not usable; construct one with New.
type Handle struct {
	count int64
}

// New returns a Handle with a single owner.
func New() *Handle {
	return &Handle{count: 1}
}

// Retain adds one owner.
func (h *Handle) Retain() {
	atomic.AddInt64(&h.count, 1)
}

// Release removes one owner and reports whether this call dropped the
// count to zero — the caller held the last reference and may now free the
// backing storage.
func (h *Handle) Release() bool {
	return atomic.AddInt64(&h.count, -1) == 0
}

// Shared reports whether more than one owner holds this handle. A mutator
// must detach (copy the backing block, then start a fresh Handle) before
// writing in place whenever Shared returns true.
func (h *Handle) Shared() bool {
	return atomic.LoadInt64(&h.count) > 1
}
