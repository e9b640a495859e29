package asset

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gladeworks/depot/pkg/bag"
)

// ReloadFunc observes a handle whose payload was just replaced. It runs
// synchronously on the writing goroutine. A non-nil return is collected
// and folded into the aggregate error returned to the writer; it does not
// stop delivery to the remaining listeners.
type ReloadFunc func(*Handle) error

// Subscription identifies one registered reload listener. Unsubscribe
// removes by token, since Go functions are not comparable.
type Subscription struct {
	fn ReloadFunc
}

// Registry is the directory of mounted asset sources. Prefixes map 1:1 to
// sources, and fully-qualified paths route through their prefix to the
// owning source's cache. The registry also hosts the reload bus that every
// handle publishes on.
//
// A Registry is explicitly constructed, never package-level, so tests and
// embedders can run isolated instances with their own lifecycles.
type Registry struct {
	mu        sync.RWMutex
	sources   map[string]*Source
	listeners bag.Bag[*Subscription]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]*Source)}
}

// RegisterSource mounts src under prefix. Registration is all-or-nothing:
// a nil source, an empty prefix, a source already bound elsewhere, or an
// occupied prefix all fail without mutating the registry.
func (r *Registry) RegisterSource(src *Source, prefix string) error {
	if src == nil {
		return ErrNilSource
	}
	if prefix == "" {
		return ErrEmptyPrefix
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	src.mu.Lock()
	defer src.mu.Unlock()

	if src.prefix != "" {
		return fmt.Errorf("%w: %q", ErrSourceBound, src.prefix)
	}
	if _, taken := r.sources[prefix]; taken {
		return fmt.Errorf("%w: %q", ErrPrefixTaken, prefix)
	}

	r.sources[prefix] = src
	src.prefix = prefix
	return nil
}

// UnregisterSource removes src's binding and reports whether one existed.
// A nil or unbound source is a safe no-op.
func (r *Registry) UnregisterSource(src *Source) bool {
	if src == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	src.mu.Lock()
	defer src.mu.Unlock()

	if src.prefix == "" || r.sources[src.prefix] != src {
		return false
	}
	delete(r.sources, src.prefix)
	src.prefix = ""
	return true
}

// SourceFor returns the source registered under prefix. The empty prefix
// goes through the same lookup as any other key; since registration
// rejects it, it is simply never occupied.
func (r *Registry) SourceFor(prefix string) (*Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[prefix]
	return src, ok
}

// Prefixes returns the registered prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sources))
	for prefix := range r.sources {
		out = append(out, prefix)
	}
	slices.Sort(out)
	return out
}

// GetHandle resolves a fully-qualified path to its handle, loading on a
// cache miss. An unknown prefix reports absence, same as a missing asset;
// use Load for a hard unknown-prefix failure.
func (r *Registry) GetHandle(full string) (*Handle, error) {
	prefix, rel := SplitPath(full)
	src, ok := r.SourceFor(prefix)
	if !ok {
		return nil, ErrNotFound
	}
	return src.GetHandle(rel)
}

// Subscribe registers fn on the reload bus and returns its subscription
// token. Fan-out follows the listener bag's current layout; because
// removal reorders the bag, delivery order is not stable across
// subscribe/unsubscribe cycles.
func (r *Registry) Subscribe(fn ReloadFunc) *Subscription {
	sub := &Subscription{fn: fn}
	r.mu.Lock()
	r.listeners.Add(sub)
	r.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription and reports whether it was
// registered. A nil subscription is a safe no-op.
func (r *Registry) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listeners.Remove(sub)
}

// notifyReload fans h out to every listener registered at the time of the
// call. Failures are isolated per listener and joined after the full pass;
// no listener error stops the remaining deliveries.
func (r *Registry) notifyReload(h *Handle) error {
	r.mu.RLock()
	subs := r.listeners.Snapshot()
	r.mu.RUnlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.fn(h); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrListenerFailed, errors.Join(errs...))
}
