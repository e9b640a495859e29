package asset

import (
	"errors"
	"fmt"
)

// Typed accessors. Go methods cannot be generic, so these are package
// functions over a Registry or Source.

// Load resolves a fully-qualified path through reg and returns its payload
// as T. Unlike GetHandle, an unregistered prefix is a hard
// ErrUnknownPrefix. Absence yields ErrNotFound and an incompatible payload
// yields ErrTypeMismatch.
func Load[T any](reg *Registry, full string) (T, error) {
	var zero T
	prefix, rel := SplitPath(full)
	src, ok := reg.SourceFor(prefix)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return LoadFrom[T](src, rel)
}

// TryLoad is the non-failing variant of Load: unknown prefix, absence, and
// type mismatch all report found = false.
func TryLoad[T any](reg *Registry, full string) (T, bool) {
	var zero T
	prefix, rel := SplitPath(full)
	src, ok := reg.SourceFor(prefix)
	if !ok {
		return zero, false
	}
	return TryLoadFrom[T](src, rel)
}

// LoadFrom resolves a source-relative path against src and returns its
// payload as T. Disposal surfaces as ErrDisposed; absence as ErrNotFound;
// an incompatible payload as ErrTypeMismatch.
func LoadFrom[T any](src *Source, path string) (T, error) {
	var zero T
	h, err := src.GetHandle(path)
	if err != nil {
		if errors.Is(err, ErrDisposed) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	value := h.Value()
	v, ok := viewAs[T](value)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T", ErrTypeMismatch, path, value)
	}
	return v, nil
}

// TryLoadFrom is the non-failing variant of LoadFrom: disposal, absence,
// and type mismatch all report found = false.
func TryLoadFrom[T any](src *Source, path string) (T, bool) {
	var zero T
	h, err := src.GetHandle(path)
	if err != nil {
		return zero, false
	}
	v, ok := viewAs[T](h.Value())
	if !ok {
		return zero, false
	}
	return v, true
}

// viewAs casts a payload to T. The one sanctioned cross-kind adapter is
// textureFromSprite; nothing else converts between payload kinds.
func viewAs[T any](value any) (T, bool) {
	if v, ok := value.(T); ok {
		return v, true
	}
	return textureFromSprite[T](value)
}

// textureFromSprite projects the embedded texture out of a sprite payload
// when the caller asked for *Texture: requesting a texture by a sprite's
// path is satisfied by the sprite's texture. It stays an explicit adapter
// rather than a general conversion graph.
func textureFromSprite[T any](value any) (T, bool) {
	var zero T
	spr, ok := value.(*Sprite)
	if !ok || spr.Texture == nil {
		return zero, false
	}
	tex, ok := any(spr.Texture).(T)
	if !ok {
		return zero, false
	}
	return tex, true
}
