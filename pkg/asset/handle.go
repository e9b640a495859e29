package asset

import (
	"reflect"
	"sync"
)

// Handle is the identity-stable cache entry for one (source, path) pair.
// Its identity never changes after construction; its payload can be
// replaced at any time by any holder of the handle, which publishes on the
// owning registry's reload bus before Set returns.
//
// A handle only exists once a value exists: sources create handles on the
// first successful load, and a payload can be replaced but never removed.
type Handle struct {
	source *Source
	path   string

	mu    sync.RWMutex
	value any
}

func newHandle(src *Source, path string, value any) *Handle {
	return &Handle{source: src, path: path, value: value}
}

// Source returns the owning source.
func (h *Handle) Source() *Source {
	return h.source
}

// Path returns the normalized source-relative path the handle is cached
// under.
func (h *Handle) Path() string {
	return h.path
}

// Value returns the current payload. It is never nil.
func (h *Handle) Value() any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// Set replaces the payload and fires the registry reload bus synchronously
// on the calling goroutine, after the new value is visible, so a listener
// reading the handle from inside its callback always observes the new
// payload. Setting a value equal to the current one (pointer identity for
// reference kinds, == for comparable value kinds) is a no-op that fires
// nothing.
//
// The returned error aggregates listener failures. A non-nil error does
// not mean the write failed; the payload has already been replaced.
func (h *Handle) Set(value any) error {
	h.mu.Lock()
	if sameValue(h.value, value) {
		h.mu.Unlock()
		return nil
	}
	h.value = value
	h.mu.Unlock()
	return h.source.reg.notifyReload(h)
}

// sameValue reports whether old and new are the same payload. Comparable
// dynamic types use ==, which is pointer identity for pointer kinds. A
// non-comparable payload never equals anything, so Set always replaces it.
func sameValue(old, new any) bool {
	if old == nil || new == nil {
		return old == new
	}
	to, tn := reflect.TypeOf(old), reflect.TypeOf(new)
	if to != tn || !to.Comparable() {
		return false
	}
	return old == new
}
