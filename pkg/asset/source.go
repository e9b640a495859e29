package asset

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Loader is the single extension point of a Source: produce the value for
// a relative path. The path is already normalized. Returning ErrNotFound
// (or an error wrapping it) signals a clean miss; any other error is
// logged by the owning source and degraded to a miss, and never reaches
// the source's callers.
type Loader interface {
	Load(rel string) (any, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(rel string) (any, error)

// Load calls f.
func (f LoaderFunc) Load(rel string) (any, error) {
	return f(rel)
}

// Source owns the path-to-handle cache for one mounted asset origin. The
// loading strategy is supplied by a Loader; normalization, fill-once
// caching, failure suppression, and the disposal lifecycle are shared.
//
// Cache fills are assumed to be serialized by the caller or confined to
// one goroutine; reads are always safe, and Dispose is safe against
// concurrent and repeated calls.
type Source struct {
	id     string
	reg    *Registry
	loader Loader
	log    *slog.Logger

	disposed atomic.Bool

	mu     sync.RWMutex
	cache  map[string]*Handle
	prefix string // set while registered, empty otherwise; owned by the registry
}

// Option configures a Source.
type Option func(*Source)

// WithLogger routes the source's diagnostics (swallowed loader errors,
// refresh activity) to log instead of slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

// NewSource creates a source backed by loader, publishing reloads through
// reg. The registry must not be nil. The source starts unregistered; mount
// it with reg.RegisterSource.
func NewSource(reg *Registry, loader Loader, opts ...Option) *Source {
	s := &Source{
		id:     newSourceID(),
		reg:    reg,
		loader: loader,
		log:    slog.Default(),
		cache:  make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newSourceID returns a UUID v7 instance ID, falling back to v4 if v7
// generation fails.
func newSourceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ID returns the source's instance ID, used in diagnostics.
func (s *Source) ID() string {
	return s.id
}

// Prefix returns the prefix the source is registered under, or "" when
// unregistered.
func (s *Source) Prefix() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefix
}

// Disposed reports whether Dispose has been called.
func (s *Source) Disposed() bool {
	return s.disposed.Load()
}

// Len returns the number of cached handles.
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// GetHandle resolves path to its cached handle, invoking the loader on a
// miss. Loading the same path twice returns the identical handle. A failed
// load is not cached, so the next call retries. Returns ErrDisposed after
// disposal and ErrNotFound when the loader reports absence or fails
// internally.
func (s *Source) GetHandle(path string) (*Handle, error) {
	if s.disposed.Load() {
		return nil, ErrDisposed
	}
	path = NormalizePath(path)

	s.mu.RLock()
	h, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return h, nil
	}

	value, ok := s.loadValue(path)
	if !ok {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.cache[path]; ok {
		// Lost a fill race; the first handle keeps its identity.
		return cached, nil
	}
	h = newHandle(s, path, value)
	s.cache[path] = h
	return h, nil
}

// loadValue runs the loader and applies the failure-suppression contract:
// internal loader errors are logged and reported as absence.
func (s *Source) loadValue(path string) (any, bool) {
	value, err := s.loader.Load(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("asset load failed", "source", s.id, "path", path, "error", err)
		}
		return nil, false
	}
	if value == nil {
		return nil, false
	}
	return value, true
}

// Refresh re-runs the loader for an already-cached path and replaces the
// handle's payload, firing the reload bus when the value changed. Paths
// that are not cached are ignored, so a watcher event cannot populate the
// cache as a side effect. Absence and loader failure leave the old payload
// in place.
func (s *Source) Refresh(path string) error {
	if s.disposed.Load() {
		return ErrDisposed
	}
	path = NormalizePath(path)

	s.mu.RLock()
	h, ok := s.cache[path]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	value, ok := s.loadValue(path)
	if !ok {
		return nil
	}
	return h.Set(value)
}

// Dispose unregisters the source from its registry and releases the cache.
// The first call claims disposal atomically; every later call, concurrent
// or not, is a no-op.
func (s *Source) Dispose() {
	if !s.disposed.CompareAndSwap(false, true) {
		return
	}
	s.reg.UnregisterSource(s)

	s.mu.Lock()
	s.cache = make(map[string]*Handle)
	s.mu.Unlock()
}
