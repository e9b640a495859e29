package asset

import "errors"

// Lookup and lifecycle errors. Absence (ErrNotFound) is an expected
// outcome; the remaining sentinels signal contract violations by the
// caller. All are matched with errors.Is.
var (
	// ErrNotFound means no cached or loadable value exists at a path.
	// Loaders also return it to signal a clean miss.
	ErrNotFound = errors.New("asset not found")

	// ErrDisposed means an operation was attempted on a disposed source.
	ErrDisposed = errors.New("asset source is disposed")

	// ErrTypeMismatch means a cached value exists but cannot be viewed as
	// the requested type.
	ErrTypeMismatch = errors.New("asset type mismatch")

	// ErrUnknownPrefix means no source is registered under the prefix
	// parsed from a fully-qualified path. Only Load raises it; GetHandle
	// and TryLoad treat an unknown prefix as absence.
	ErrUnknownPrefix = errors.New("no asset source registered for prefix")
)

// Registration errors. A failed registration never mutates registry state.
var (
	ErrNilSource   = errors.New("asset source must not be nil")
	ErrEmptyPrefix = errors.New("asset prefix must not be empty")
	ErrSourceBound = errors.New("asset source is already registered under a prefix")
	ErrPrefixTaken = errors.New("asset prefix is already registered")
)

// ErrListenerFailed wraps the joined errors of reload listeners that
// failed during one notification pass.
var ErrListenerFailed = errors.New("asset reload listener failed")
