package asset

import (
	"errors"
	"testing"
)

func TestRegisterSource(t *testing.T) {
	t.Run("binds a prefix", func(t *testing.T) {
		reg := NewRegistry()
		src := NewSource(reg, newMapLoader())

		if err := reg.RegisterSource(src, "data"); err != nil {
			t.Fatal(err)
		}
		got, ok := reg.SourceFor("data")
		if !ok || got != src {
			t.Fatal("expected source registered under its prefix")
		}
		if src.Prefix() != "data" {
			t.Fatalf("expected prefix recorded on source, got %q", src.Prefix())
		}
	})

	t.Run("nil source", func(t *testing.T) {
		reg := NewRegistry()
		if err := reg.RegisterSource(nil, "data"); !errors.Is(err, ErrNilSource) {
			t.Fatalf("expected ErrNilSource, got %v", err)
		}
	})

	t.Run("empty prefix", func(t *testing.T) {
		reg := NewRegistry()
		src := NewSource(reg, newMapLoader())
		if err := reg.RegisterSource(src, ""); !errors.Is(err, ErrEmptyPrefix) {
			t.Fatalf("expected ErrEmptyPrefix, got %v", err)
		}
	})

	t.Run("occupied prefix keeps the first binding", func(t *testing.T) {
		reg := NewRegistry()
		first := NewSource(reg, newMapLoader())
		second := NewSource(reg, newMapLoader())

		if err := reg.RegisterSource(first, "data"); err != nil {
			t.Fatal(err)
		}
		err := reg.RegisterSource(second, "data")
		if !errors.Is(err, ErrPrefixTaken) {
			t.Fatalf("expected ErrPrefixTaken, got %v", err)
		}

		got, _ := reg.SourceFor("data")
		if got != first {
			t.Fatal("first registration must remain active")
		}
		if second.Prefix() != "" {
			t.Fatal("failed registration must not bind the second source")
		}
	})

	t.Run("already-bound source", func(t *testing.T) {
		reg := NewRegistry()
		src := NewSource(reg, newMapLoader())
		if err := reg.RegisterSource(src, "a"); err != nil {
			t.Fatal(err)
		}
		err := reg.RegisterSource(src, "b")
		if !errors.Is(err, ErrSourceBound) {
			t.Fatalf("expected ErrSourceBound, got %v", err)
		}
		if _, ok := reg.SourceFor("b"); ok {
			t.Fatal("failed registration must not occupy the new prefix")
		}
	})
}

func TestUnregisterSource(t *testing.T) {
	t.Run("removes the binding", func(t *testing.T) {
		reg := NewRegistry()
		src := NewSource(reg, newMapLoader())
		if err := reg.RegisterSource(src, "data"); err != nil {
			t.Fatal(err)
		}

		if !reg.UnregisterSource(src) {
			t.Fatal("expected removal to report true")
		}
		if _, ok := reg.SourceFor("data"); ok {
			t.Fatal("expected prefix free after unregistration")
		}
		if src.Prefix() != "" {
			t.Fatalf("expected prefix cleared, got %q", src.Prefix())
		}
	})

	t.Run("unbound source reports false", func(t *testing.T) {
		reg := NewRegistry()
		src := NewSource(reg, newMapLoader())
		if reg.UnregisterSource(src) {
			t.Fatal("expected false for unbound source")
		}
	})

	t.Run("nil source reports false", func(t *testing.T) {
		reg := NewRegistry()
		if reg.UnregisterSource(nil) {
			t.Fatal("expected false for nil source")
		}
	})
}

func TestRegistryGetHandle(t *testing.T) {
	t.Run("routes through the prefix", func(t *testing.T) {
		reg, _, loader := newTestSource(t)
		loader.values["ui/button"] = "v"

		h, err := reg.GetHandle("test:/ui/button")
		if err != nil {
			t.Fatal(err)
		}
		if h.Value() != "v" {
			t.Fatalf("expected payload, got %v", h.Value())
		}
	})

	t.Run("unknown prefix is absence", func(t *testing.T) {
		reg := NewRegistry()
		_, err := reg.GetHandle("nowhere:/a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("bare path looks up the empty prefix", func(t *testing.T) {
		reg, _, _ := newTestSource(t)
		_, err := reg.GetHandle("/ui/button")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for empty prefix, got %v", err)
		}
	})
}

func TestSubscription(t *testing.T) {
	t.Run("unsubscribed listener no longer fires", func(t *testing.T) {
		reg, src, loader := newTestSource(t)
		loader.values["a"] = "v1"
		h, err := src.GetHandle("a")
		if err != nil {
			t.Fatal(err)
		}

		var fired int
		sub := reg.Subscribe(func(*Handle) error {
			fired++
			return nil
		})

		if err := h.Set("v2"); err != nil {
			t.Fatal(err)
		}
		if !reg.Unsubscribe(sub) {
			t.Fatal("expected unsubscribe to report true")
		}
		if err := h.Set("v3"); err != nil {
			t.Fatal(err)
		}
		if fired != 1 {
			t.Fatalf("expected 1 notification, got %d", fired)
		}
	})

	t.Run("unsubscribe is not repeatable", func(t *testing.T) {
		reg := NewRegistry()
		sub := reg.Subscribe(func(*Handle) error { return nil })
		if !reg.Unsubscribe(sub) {
			t.Fatal("first unsubscribe should succeed")
		}
		if reg.Unsubscribe(sub) {
			t.Fatal("second unsubscribe should report false")
		}
		if reg.Unsubscribe(nil) {
			t.Fatal("nil subscription should report false")
		}
	})

	t.Run("two subscriptions of the same func are distinct", func(t *testing.T) {
		reg, src, loader := newTestSource(t)
		loader.values["a"] = "v1"
		h, err := src.GetHandle("a")
		if err != nil {
			t.Fatal(err)
		}

		var fired int
		fn := func(*Handle) error {
			fired++
			return nil
		}
		sub1 := reg.Subscribe(fn)
		reg.Subscribe(fn)

		reg.Unsubscribe(sub1)
		if err := h.Set("v2"); err != nil {
			t.Fatal(err)
		}
		if fired != 1 {
			t.Fatalf("expected the remaining subscription to fire once, got %d", fired)
		}
	})
}

func TestPrefixes(t *testing.T) {
	reg := NewRegistry()
	for _, prefix := range []string{"zeta", "alpha", "mid"} {
		src := NewSource(reg, newMapLoader())
		if err := reg.RegisterSource(src, prefix); err != nil {
			t.Fatal(err)
		}
	}
	got := reg.Prefixes()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("expected %d prefixes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted prefixes %v, got %v", want, got)
		}
	}
}
