/*
Package asset implements a multi-source asset registry and caching layer.

String paths resolve to typed, lazily-loaded, identity-stable handles. A
Registry multiplexes named Sources under a flat namespace: a path like
"sprites:/ui/button" routes through the "sprites" prefix to the source
mounted there, which caches one Handle per relative path. Loading
strategies are pluggable through the Loader interface; the registry and
sources only know "given a relative path, produce a value or report
absence".

Basic usage:

	reg := asset.NewRegistry()
	src := asset.NewSource(reg, myLoader)
	if err := reg.RegisterSource(src, "sprites"); err != nil {
		return err
	}

	btn, err := asset.Load[*asset.Sprite](reg, "sprites:/ui/button.sprite.json")

Replacing a handle's payload with Handle.Set publishes on the registry's
reload bus before Set returns, so observers subscribed with
Registry.Subscribe always see the new value from inside the callback.

Caching is fill-once per path: a successful load creates the handle that
every later lookup returns. Failed loads are never cached, so a missing
asset that appears later is picked up by the next lookup. There is no
eviction; a source's cache lives until the source is disposed.
*/
package asset
